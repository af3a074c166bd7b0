package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/hostio"
	"github.com/slawlabs/linearcore/text"
)

var fmtPrecision int

func init() {
	cmd := newFormatCmd()
	cmd.Flags().IntVar(&fmtPrecision, "precision", 6, "Fractional digits for float input")
	rootCmd.AddCommand(cmd)
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>...",
		Short: "Format numbers through a heap-resident text buffer",
		Long: `The format command routes numbers through the heap-backed formatter:
each argument is parsed, rendered into heap storage with text.FromInt or
text.FromFloat, and emitted to stdout. Mostly useful for eyeballing the
formatter against strconv.

Example:
  heapctl format 42 -17 3.14159 --precision 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(args)
		},
	}
}

func runFormat(args []string) error {
	h := heap.New(heap.NewFixedRegion(1 << 16))
	out := hostio.WriterOutput{W: os.Stdout}

	for _, arg := range args {
		var msg text.Text
		if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
			msg = text.FromInt(h, i)
		} else if f, err := strconv.ParseFloat(arg, 64); err == nil {
			msg = text.FromFloat(h, f, fmtPrecision)
		} else {
			return fmt.Errorf("not a number: %q", arg)
		}
		if err := hostio.PrintLine(out, &msg); err != nil {
			return err
		}
		msg.Clear()
	}
	return nil
}
