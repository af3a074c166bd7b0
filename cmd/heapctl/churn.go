package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/heap/mapped"
)

var (
	churnOps     int
	churnMaxSize int
	churnSeed    int64
	churnFile    string
	churnDrain   bool
)

func init() {
	cmd := newChurnCmd()
	cmd.Flags().IntVar(&churnOps, "ops", 10000, "Number of random operations")
	cmd.Flags().IntVar(&churnMaxSize, "max-size", 1024, "Maximum allocation size in bytes")
	cmd.Flags().Int64Var(&churnSeed, "seed", 42, "Workload RNG seed")
	cmd.Flags().StringVar(&churnFile, "file", "", "Back the heap with this memory-mapped file")
	cmd.Flags().BoolVar(&churnDrain, "drain", false, "Free all live blocks at the end")
	rootCmd.AddCommand(cmd)
}

func newChurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "churn",
		Short: "Run a random alloc/free workload",
		Long: `The churn command performs random allocations and frees against a
heap and validates the structural invariants afterwards. With --file the
heap lives in a memory-mapped file that can be inspected later with
"heapctl dump". With --drain every surviving block is freed, which must
walk the heap end back to zero.

Example:
  heapctl churn --ops 100000 --max-size 4096
  heapctl churn --file image.heap --drain=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChurn()
		},
	}
}

// memRegion is a growable in-memory region for file-less runs.
type memRegion struct {
	buf []byte
}

func (r *memRegion) Bytes() []byte { return r.buf }

func (r *memRegion) Grow(min uint32) error {
	n := len(r.buf) * 2
	if n == 0 {
		n = 4096
	}
	for uint64(n) < uint64(min) {
		n *= 2
	}
	nb := make([]byte, n)
	copy(nb, r.buf)
	r.buf = nb
	return nil
}

func runChurn() error {
	log := newLogger()

	var region heap.Region
	if churnFile != "" {
		mr, err := mapped.Open(churnFile, 4096, 0)
		if err != nil {
			return err
		}
		defer mr.Close()
		region = mr
	} else {
		region = &memRegion{}
	}

	h := heap.New(region, heap.WithLogger(log))
	rng := rand.New(rand.NewSource(churnSeed))

	var live []heap.Ref
	for i := 0; i < churnOps; i++ {
		if rng.Intn(2) == 0 || len(live) == 0 {
			ref, _, err := h.Alloc(uint32(1 + rng.Intn(churnMaxSize)))
			if err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
			live = append(live, ref)
		} else {
			j := rng.Intn(len(live))
			if err := h.Free(live[j]); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	if err := h.CheckInvariants(); err != nil {
		return err
	}
	log.Info("workload complete",
		zap.Int("ops", churnOps),
		zap.Int("live", len(live)))

	if churnDrain {
		for _, ref := range live {
			if err := h.Free(ref); err != nil {
				return err
			}
		}
		live = nil
		if err := h.CheckInvariants(); err != nil {
			return err
		}
		if h.End() != 0 {
			return fmt.Errorf("drained heap end = 0x%X, want 0", h.End())
		}
	}

	printStats(h, len(live))

	if mr, ok := region.(*mapped.Region); ok {
		// Trim the page-rounded tail so the file ends where the heap
		// ends and dump can attach without an explicit --end.
		if err := mr.Truncate(h.End()); err != nil {
			return err
		}
		if err := mr.Sync(); err != nil {
			return err
		}
	}
	return nil
}

func printStats(h *heap.Heap, live int) {
	s := h.Stats()
	u := h.Usage()

	fmt.Println(styled(headerStyle, "workload"))
	fmt.Printf("  allocs        %d\n", s.AllocCalls)
	fmt.Printf("  frees         %d\n", s.FreeCalls)
	fmt.Printf("  live blocks   %d\n", live)
	fmt.Println(styled(headerStyle, "allocator paths"))
	fmt.Printf("  reused        %d\n", s.Reused)
	fmt.Printf("  splits        %d\n", s.Splits)
	fmt.Printf("  tail extends  %d\n", s.TailExtends)
	fmt.Printf("  shrinks       %d\n", s.Shrinks)
	fmt.Printf("  coalesces     %d\n", s.Coalesces)
	fmt.Printf("  region grows  %d\n", s.RegionGrows)
	fmt.Println(styled(headerStyle, "heap"))
	fmt.Printf("  end           0x%X\n", h.End())
	fmt.Printf("  allocated     %d bytes\n", u.AllocatedBytes)
	fmt.Printf("  free+headers  %d bytes\n", u.FreeBytes)
	fmt.Printf("  blocks        %d (%d free)\n", u.Blocks, u.FreeBlocks)
}
