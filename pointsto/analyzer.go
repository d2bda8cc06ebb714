package pointsto

import (
	"ptaset/internal/alias"
	"ptaset/internal/lowir"
	"ptaset/internal/telemetry"
)

// computeFunctionsPointsToSet is the per-function analyzer. It enumerates
// f's interesting pointers, seeds a singleton set for each, and runs the
// n^2/2 pairwise alias-oracle disambiguation. f may be nil (a value with no
// enclosing function); analyzed-once is enforced via e.analyzed, and the
// mark is set before any work happens so that a reentrant call triggered
// while iterating a global's users (see driver.go) terminates instead of
// looping.
func (e *Engine) computeFunctionsPointsToSet(f *lowir.Function) {
	if f == nil {
		return
	}
	if _, done := e.analyzed[f]; done {
		return
	}
	e.analyzed[f] = struct{}{}

	telemetry.Log.Debugf("pointsto: analyzing function %s", f.Name())

	oracle := e.provider.Acquire(f)
	layout := f.Module.Layout

	pointers := newOrderedSet()

	for _, arg := range f.Args {
		if lowir.IsPointer(arg) {
			pointers.add(arg)
		}
	}

	for _, in := range f.Instrs {
		if lowir.IsPointer(in) {
			pointers.add(in)
		}

		if st, ok := lowir.IsStore(in); ok {
			e.seedStoreRules(st)
		}

		if call, ok := lowir.IsCallLike(in); ok {
			callee := call.Callee()
			if _, isFn := lowir.IsFunctionValue(callee); !isFn && lowir.IsInterestingPointer(callee) {
				pointers.add(callee)
			}
			for _, arg := range call.Args() {
				if lowir.IsInterestingPointer(arg) {
					pointers.add(arg)
				}
			}
			continue
		}

		for _, op := range in.Operands() {
			if lowir.IsInterestingPointer(op) {
				pointers.add(op)
			}
		}
	}

	for _, g := range f.Module.Globals() {
		pointers.add(g)
	}

	for _, p := range pointers.values {
		e.addSingleton(p)
	}

	if n := len(pointers.values); n > e.Config.LargePointerWarningThreshold {
		telemetry.Log.Warnf(
			"pointsto: large number of pointers detected in %s - O(n^2) disambiguation over %d pointers",
			f.Name(), n)
	}

	e.disambiguate(pointers.values, layout, oracle)

	e.provider.Release(f)
}

// seedStoreRules implements two store-time merge rules, both driven
// independently of the alias oracle: storing a function value into a slot
// models function-pointer assignment, and storing a bitcast constant
// expression links its source, the constant expression itself, and the
// destination pointer.
func (e *Engine) seedStoreRules(st *lowir.StoreInst) {
	if !lowir.IsPointer(st.Val) {
		return
	}
	if _, isFn := lowir.IsFunctionValue(st.Val); isFn {
		e.addSingleton(st.Val)
		e.addSingleton(st.Ptr)
		e.merge(st.Val, st.Ptr)
		return
	}
	if ce, ok := lowir.IsConstantExpr(st.Val); ok && ce.Op == lowir.ConstExprBitCast {
		asInst := ce.AsInstruction()
		defer ce.Release(asInst)
		src := asInst.Src
		e.addSingleton(src)
		e.addSingleton(ce)
		e.addSingleton(st.Ptr)
		e.merge(src, st.Ptr)
		e.merge(ce, st.Ptr)
	}
}

// disambiguate runs the full (n^2)/2 pairwise alias queries over pointers,
// merging on anything but NoAlias.
func (e *Engine) disambiguate(pointers []lowir.Value, layout lowir.DataLayout, oracle alias.Oracle) {
	for i := 0; i < len(pointers); i++ {
		p := pointers[i]
		pSize := layout.StoreSize(p.Type().ElementType())
		for j := 0; j < i; j++ {
			q := pointers[j]
			qSize := layout.StoreSize(q.Type().ElementType())
			switch oracle.Alias(p, pSize, q, qSize) {
			case alias.NoAlias:
				// nothing to do
			case alias.MayAlias, alias.PartialAlias, alias.MustAlias:
				e.merge(p, q)
			}
		}
	}
}

// orderedSet is a tiny insertion-ordered set of lowir.Value, standing in
// for llvm::SetVector in the reference implementation: the pairwise
// disambiguation loop's result must not depend on Go's randomized map
// iteration order.
type orderedSet struct {
	values []lowir.Value
	seen   map[lowir.Value]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[lowir.Value]struct{})}
}

func (s *orderedSet) add(v lowir.Value) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
