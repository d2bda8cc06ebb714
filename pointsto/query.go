package pointsto

import (
	"ptaset/internal/alias"
	"ptaset/internal/lowir"
)

// Alias answers a two-valued alias query: MustAlias iff v1 and v2's
// points-to sets are identity-equal, NoAlias otherwise (including when
// either value is uninteresting). This is an intentional projection
// of the underlying oracle's four-valued MayAlias/PartialAlias/MustAlias
// distinctions - callers that need finer granularity must consult the
// alias package's Oracle directly.
func (e *Engine) Alias(v1, v2 lowir.Value) alias.Result {
	if !lowir.IsInterestingPointer(v1) || !lowir.IsInterestingPointer(v2) {
		return alias.NoAlias
	}
	e.computeValuesPointsToSet(v1)
	e.computeValuesPointsToSet(v2)
	if e.sameSet(v1, v2) {
		return alias.MustAlias
	}
	return alias.NoAlias
}

// PointsToSet returns v's equivalence class, computing it on demand.
// Uninteresting values always yield an empty set.
func (e *Engine) PointsToSet(v lowir.Value) []lowir.Value {
	if !lowir.IsInterestingPointer(v) {
		return nil
	}
	e.computeValuesPointsToSet(v)
	s, ok := e.sets[v]
	if !ok {
		return nil
	}
	return s.slice()
}

// IntroduceAlias drives computation for v1 and v2 and then merges their
// sets unconditionally - a convenience for callers (e.g. a downstream
// dataflow analysis) that has independently established that two values
// must be treated as aliasing, bypassing the oracle entirely. It is a
// no-op if either value is uninteresting.
func (e *Engine) IntroduceAlias(v1, v2 lowir.Value) {
	if !lowir.IsInterestingPointer(v1) || !lowir.IsInterestingPointer(v2) {
		return
	}
	e.computeValuesPointsToSet(v1)
	e.computeValuesPointsToSet(v2)
	e.merge(v1, v2)
}
