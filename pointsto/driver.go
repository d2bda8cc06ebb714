package pointsto

import "ptaset/internal/lowir"

// computeValuesPointsToSet is the per-value driver. It ensures v has a
// singleton set, then, for a global object, walks every
// instruction user of v across every function that touches it - bridging
// the cross-function equivalence a single global requires - or, for a
// function-local value, simply triggers analysis of v's own function.
func (e *Engine) computeValuesPointsToSet(v lowir.Value) {
	if !lowir.IsInterestingPointer(v) {
		return
	}
	e.addSingleton(v)

	if g, ok := lowir.IsGlobalObject(v); ok {
		_, vIsVariable := lowir.IsGlobalVariable(v)
		for _, user := range g.Users() {
			inst, ok := user.(lowir.Instruction)
			if !ok || inst.Block() == nil {
				// No corresponding function, e.g. used from a vtable-like
				// constant expression with no home basic block.
				continue
			}
			e.computeFunctionsPointsToSet(inst.Function())

			if vIsVariable && lowir.IsInterestingPointer(user) {
				e.merge(user, v)
			} else if st, ok := lowir.IsStore(user); ok {
				if lowir.IsInterestingPointer(st.Val) {
					e.merge(st.Val, st.Ptr)
				}
			}
		}
		return
	}

	e.computeFunctionsPointsToSet(lowir.RetrieveFunction(v))
}
