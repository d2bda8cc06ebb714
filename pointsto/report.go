package pointsto

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"ptaset/internal/alias"
	"ptaset/internal/config"
	"ptaset/internal/lowir"
)

// NewFromFile constructs an Engine over prog by loading previously saved
// state from path, mirroring LLVMPointsToSet's file-backed constructor
// overload. The engine's oracle provider is still configured from cfg, in
// case later queries reach values outside the loaded state.
func NewFromFile(prog *lowir.Program, path string, cfg config.Config) (*Engine, error) {
	e := &Engine{
		Program:  prog,
		Config:   cfg,
		provider: alias.NewDefaultProvider(cfg.PointerAnalysisType),
		heapSet:  cfg.HeapAllocatingSet(),
		sets:     make(map[lowir.Value]*set),
		analyzed: make(map[*lowir.Function]struct{}),
	}
	if err := e.LoadFile(path); err != nil {
		return nil, err
	}
	return e, nil
}

// Print renders every registered value's points-to set, one block per
// value, in the style of LLVMPointsToSet::print.
func (e *Engine) Print() string {
	var b strings.Builder
	for v, s := range e.sets {
		fmt.Fprintf(&b, "V: %s (size %d)\n", v.String(), e.Size(v))
		for _, p := range s.slice() {
			fmt.Fprintf(&b, "\tpoints to -> %s\n", p.String())
		}
	}
	return b.String()
}

// GetAsJSON is a stub, matching the reference implementation's own
// unimplemented JSON export ("no schema is implied").
func (e *Engine) GetAsJSON() string { return "{}" }

// PrintAsJSON writes nothing, matching the reference implementation's
// stubbed printAsJson.
func (e *Engine) PrintAsJSON(io.Writer) {}

// DistributionReport prints a histogram of points-to set sizes, and, if
// peak > 0, dumps up to peak members of one of the largest sets. Grounded
// on LLVMPointsToSet::drawPointsToSetsDistribution / peakIntoPointsToSet.
func (e *Engine) DistributionReport(w io.Writer, peak int) {
	sizeCounts := map[int]int{}
	for _, s := range e.sets {
		sizeCounts[s.size()]++
	}

	sizes := make([]int, 0, len(sizeCounts))
	for sz := range sizeCounts {
		sizes = append(sizes, sz)
	}
	sort.Ints(sizes)

	total := 0
	for _, sz := range sizes {
		total += sizeCounts[sz]
	}

	fmt.Fprintf(w, "%10s  %-50s %10s\n", "PtS Size", "Distribution", "Number of sets")
	for _, sz := range sizes {
		count := sizeCounts[sz]
		barLen := 0
		if total > 0 {
			barLen = count * 50 / total
		}
		fmt.Fprintf(w, "%10d |%-50s %-10d\n", sz, strings.Repeat("*", barLen), count)
	}
	fmt.Fprintln(w)

	if peak <= 0 || len(sizes) == 0 {
		return
	}
	largest := sizes[len(sizes)-1]
	for _, s := range e.sets {
		if s.size() != largest {
			continue
		}
		fmt.Fprintln(w, "Peak into one of the biggest points sets.")
		members := s.slice()
		fmt.Fprintln(w, "aliases with: {")
		for i, m := range members {
			if i >= peak {
				fmt.Fprintf(w, "... and %d more\n", len(members)-peak)
				break
			}
			fmt.Fprintln(w, m.String())
		}
		fmt.Fprintln(w, "}")
		return
	}
}
