package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/heap/mapped"
)

var dumpEnd uint32

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Uint32Var(&dumpEnd, "end", 0, "Heap end offset override; 0 means the file size")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the block structure of a heap image",
		Long: `The dump command opens a memory-mapped heap image, rebuilds its
free list, validates the structural invariants and prints the physical
block chain. Images written by churn are trimmed to the heap end, so
the file size is the end offset; pass --end for images that were not.

Example:
  heapctl churn --file image.heap --drain=false
  heapctl dump image.heap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	r, err := mapped.Open(path, 0, 0)
	if err != nil {
		return err
	}
	defer r.Close()

	end := dumpEnd
	if end == 0 {
		end = uint32(len(r.Bytes()))
	}

	h, err := heap.Attach(r, end, heap.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	blocks := h.Blocks()
	fmt.Println(styled(headerStyle, fmt.Sprintf("%-10s %-10s %-10s %s", "OFFSET", "PAYLOAD", "PREV", "STATE")))
	for _, b := range blocks {
		prev := "-"
		if b.Prev != heap.NilRef {
			prev = fmt.Sprintf("0x%X", b.Prev)
		}
		line := fmt.Sprintf("0x%-8X %-10d %-10s ", b.Offset, b.Payload, prev)
		if b.Free {
			fmt.Println(line + styled(freeStyle, "free"))
		} else {
			fmt.Println(line + styled(usedStyle, "allocated"))
		}
	}

	u := h.Usage()
	fmt.Println(styled(headerStyle, "totals"))
	fmt.Printf("  heap size     %d bytes\n", u.HeapSize)
	fmt.Printf("  allocated     %d bytes\n", u.AllocatedBytes)
	fmt.Printf("  free+headers  %d bytes\n", u.FreeBytes)
	fmt.Printf("  blocks        %d (%d free)\n", u.Blocks, u.FreeBlocks)
	if u.Blocks == 0 {
		fmt.Println(styled(warnStyle, "  heap is empty"))
	}
	return nil
}
