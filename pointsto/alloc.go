package pointsto

import "ptaset/internal/lowir"

// isHeapAllocatingCall reports whether p is a call-like instruction whose
// statically-known callee is in the engine's configured heap-allocating
// function set.
func (e *Engine) isHeapAllocatingCall(p lowir.Value) bool {
	call, ok := lowir.IsCallLike(p)
	if !ok {
		return false
	}
	fn, ok := lowir.IsFunctionValue(call.Callee())
	if !ok {
		return false
	}
	_, isHeap := e.heapSet[fn.Name()]
	return isHeap
}

// interReachable is the interprocedural allocation-site predicate: p is an
// allocation site regardless of which function it lives in.
func (e *Engine) interReachable(v, p lowir.Value) bool {
	if _, ok := lowir.IsAlloca(p); ok {
		return true
	}
	return e.isHeapAllocatingCall(p)
}

// intraReachable is the intraprocedural variant: p additionally must live
// in v's own function, or v must be a global object (in which case any
// function-local allocation site still counts, since a global's users span
// every function that touches it).
func (e *Engine) intraReachable(v, p lowir.Value, vFun *lowir.Function, vGlobal lowir.GlobalObject) bool {
	if alloca, ok := lowir.IsAlloca(p); ok {
		if vFun != nil && vFun == alloca.Function() {
			return true
		}
		return vGlobal != nil
	}
	if call, ok := lowir.IsCallLike(p); ok {
		fn, ok := lowir.IsFunctionValue(call.Callee())
		if !ok {
			return false
		}
		if _, isHeap := e.heapSet[fn.Name()]; !isHeap {
			return false
		}
		inst := p.(lowir.Instruction)
		if vFun != nil && vFun == inst.Function() {
			return true
		}
		return vGlobal != nil
	}
	return false
}

// ReachableAllocationSites returns the subset of v's points-to set that
// are allocation sites, per the inter/intra-procedural predicate selected
// by intraOnly.
func (e *Engine) ReachableAllocationSites(v lowir.Value, intraOnly bool) []lowir.Value {
	if !lowir.IsInterestingPointer(v) {
		return nil
	}
	e.computeValuesPointsToSet(v)

	s, ok := e.sets[v]
	if !ok {
		return nil
	}

	var vFun *lowir.Function
	var vGlobal lowir.GlobalObject
	if intraOnly {
		vFun = lowir.RetrieveFunction(v)
		vGlobal, _ = lowir.IsGlobalObject(v)
	}

	var out []lowir.Value
	for p := range s.members {
		if intraOnly {
			if e.intraReachable(v, p, vFun, vGlobal) {
				out = append(out, p)
			}
		} else if e.interReachable(v, p) {
			out = append(out, p)
		}
	}
	return out
}

// IsInReachableAllocationSites is the single-element form of
// ReachableAllocationSites: true iff candidate both satisfies the
// allocation-site predicate and is a member of v's points-to set.
func (e *Engine) IsInReachableAllocationSites(v, candidate lowir.Value, intraOnly bool) bool {
	if !lowir.IsInterestingPointer(v) {
		return false
	}
	e.computeValuesPointsToSet(v)

	var qualifies bool
	if intraOnly {
		vFun := lowir.RetrieveFunction(v)
		vGlobal, _ := lowir.IsGlobalObject(v)
		qualifies = e.intraReachable(v, candidate, vFun, vGlobal)
	} else {
		qualifies = e.interReachable(v, candidate)
	}
	if !qualifies {
		return false
	}

	s, ok := e.sets[v]
	return ok && s.has(candidate)
}
