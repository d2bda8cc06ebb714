package alias

import "ptaset/internal/lowir"

// DefaultProvider constructs one Oracle per function on Acquire, sharing
// the same PATy across every function. It has no per-function state to
// reclaim, so Release is a no-op; the type still exists so callers follow
// the acquire/release discipline, and so a future, heavier oracle (e.g.
// one that caches BDD-backed constraints per function) can be swapped in
// without changing call sites.
type DefaultProvider struct {
	PATy Type
}

// NewDefaultProvider returns a Provider that always yields the oracle
// selected by paTy.
func NewDefaultProvider(paTy Type) *DefaultProvider {
	return &DefaultProvider{PATy: paTy}
}

func (p *DefaultProvider) Acquire(f *lowir.Function) Oracle {
	return NewOracle(p.PATy)
}

func (p *DefaultProvider) Release(f *lowir.Function) {}

// ScriptedOracle is a test double whose answers are pre-programmed per
// unordered pair of values, falling back to NoAlias for any pair it wasn't
// told about, so a test can pin down exactly what the oracle answers
// without parsing real source into hand-built fixtures.
type ScriptedOracle struct {
	answers map[pairKey]Result
}

type pairKey struct {
	a, b lowir.Value
}

// NewScriptedOracle constructs an empty scripted oracle; use Set to
// program responses.
func NewScriptedOracle() *ScriptedOracle {
	return &ScriptedOracle{answers: make(map[pairKey]Result)}
}

// Set programs the oracle to answer r for the unordered pair (p1, p2).
func (s *ScriptedOracle) Set(p1, p2 lowir.Value, r Result) {
	s.answers[pairKey{p1, p2}] = r
	s.answers[pairKey{p2, p1}] = r
}

func (s *ScriptedOracle) Alias(p1 lowir.Value, _ uint64, p2 lowir.Value, _ uint64) Result {
	if p1 == p2 {
		return MustAlias
	}
	if r, ok := s.answers[pairKey{p1, p2}]; ok {
		return r
	}
	return NoAlias
}

// ScriptedProvider always hands out the same ScriptedOracle regardless of
// function, so a test can program one script and drive analysis across an
// entire program.
type ScriptedProvider struct {
	Oracle *ScriptedOracle
}

// NewScriptedProvider wraps o in a Provider.
func NewScriptedProvider(o *ScriptedOracle) *ScriptedProvider {
	return &ScriptedProvider{Oracle: o}
}

func (p *ScriptedProvider) Acquire(*lowir.Function) Oracle { return p.Oracle }
func (p *ScriptedProvider) Release(*lowir.Function)        {}
