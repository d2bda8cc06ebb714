package pointsto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ptaset/internal/lowir"
)

// Save writes e's state to w in a three-segment text format: a debug-only
// [ValueIds] table, the [AnalyzedFunctions] id list, and one [PointsToSets]
// line per distinct equivalence class (each class printed exactly once,
// tracked by set-handle identity).
func (e *Engine) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	ids := make(map[lowir.Value]int)
	next := 0
	lowir.Walk(e.Program, func(v lowir.Value) {
		ids[v] = next
		next++
	})

	fmt.Fprintln(bw, "[ValueIds]")
	lowir.Walk(e.Program, func(v lowir.Value) {
		fmt.Fprintf(bw, "%d: %s\n", ids[v], v.String())
	})

	fmt.Fprintln(bw, "[AnalyzedFunctions]")
	first := true
	for f := range e.analyzed {
		id, ok := ids[f]
		if !ok {
			continue
		}
		if !first {
			fmt.Fprint(bw, " ")
		}
		fmt.Fprint(bw, id)
		first = false
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "[PointsToSets]")
	printed := make(map[*set]bool)
	for _, s := range e.sets {
		if printed[s] {
			continue
		}
		printed[s] = true
		first = true
		for _, v := range s.slice() {
			id, ok := ids[v]
			if !ok {
				continue
			}
			if !first {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprint(bw, id)
			first = false
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// SaveFile is a path-based convenience wrapper around Save.
func (e *Engine) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.Save(f)
}

// Load replaces e's AnalyzedFunctions and points-to sets with the state
// read from r, recomputing value ids by re-running the canonical traversal
// over e.Program rather than trusting the file's informational [ValueIds]
// segment: id assignment is always recomputed on load from the current IR.
// An id outside the reconstructed id table is treated as a corrupt file.
func (e *Engine) Load(r io.Reader) error {
	var idToValue []lowir.Value
	lowir.Walk(e.Program, func(v lowir.Value) {
		idToValue = append(idToValue, v)
	})

	lookup := func(cell string) (lowir.Value, error) {
		id, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("pointsto: corrupt points-to file: %q is not an id: %w", cell, err)
		}
		if id < 0 || id >= len(idToValue) {
			return nil, fmt.Errorf("pointsto: corrupt points-to file: id %d out of range", id)
		}
		return idToValue[id], nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	// Skip [ValueIds] up through the [AnalyzedFunctions] marker.
	for sc.Scan() {
		if sc.Text() == "[AnalyzedFunctions]" {
			break
		}
	}

	analyzed := make(map[*lowir.Function]struct{})
	if sc.Scan() {
		line := sc.Text()
		if line != "[PointsToSets]" {
			for _, cell := range splitFields(line) {
				v, err := lookup(cell)
				if err != nil {
					return err
				}
				fn, ok := v.(*lowir.Function)
				if !ok {
					return fmt.Errorf("pointsto: corrupt points-to file: id for %q is not a function", cell)
				}
				analyzed[fn] = struct{}{}
			}
		}
	}

	sets := make(map[lowir.Value]*set)
	for sc.Scan() {
		line := sc.Text()
		if line == "[PointsToSets]" || line == "" {
			continue
		}
		s := &set{members: make(map[lowir.Value]struct{})}
		for _, cell := range splitFields(line) {
			v, err := lookup(cell)
			if err != nil {
				return err
			}
			s.members[v] = struct{}{}
			sets[v] = s
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	e.analyzed = analyzed
	e.sets = sets
	return nil
}

// LoadFile is a path-based convenience wrapper around Load.
func (e *Engine) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.Load(f)
}

func splitFields(line string) []string {
	return strings.Fields(line)
}
