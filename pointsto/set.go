package pointsto

import "ptaset/internal/lowir"

// set is the concrete points-to set / equivalence class: an arena node
// shared by pointer identity among every value in the same class. Sharing
// by identity is what makes Engine.sameSet an O(1) pointer comparison
// instead of a set-equality check.
type set struct {
	members map[lowir.Value]struct{}
}

func newSet(v lowir.Value) *set {
	return &set{members: map[lowir.Value]struct{}{v: {}}}
}

func (s *set) size() int { return len(s.members) }

// Size returns the cardinality of v's points-to set, or 0 if v has not been
// registered. Print uses this to label each value's block.
func (e *Engine) Size(v lowir.Value) int {
	s, ok := e.sets[v]
	if !ok {
		return 0
	}
	return s.size()
}

// Reset discards every registered set and analyzed-function marker,
// leaving the engine bound to the same program, config, and oracle
// provider. It exists so a test can rebuild the engine's analysis state
// from scratch without reconstructing the underlying IR.
func (e *Engine) Reset() {
	e.sets = make(map[lowir.Value]*set)
	e.analyzed = make(map[*lowir.Function]struct{})
}

func (s *set) has(v lowir.Value) bool {
	_, ok := s.members[v]
	return ok
}

// slice returns s's members in unspecified order.
func (s *set) slice() []lowir.Value {
	out := make([]lowir.Value, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	return out
}

// addSingleton ensures v has a set of its own, creating a fresh one-element
// set if v is unregistered, or making sure v is a member of its existing
// set otherwise. Idempotent: calling it again for an already-registered
// value is a no-op.
func (e *Engine) addSingleton(v lowir.Value) {
	if s, ok := e.sets[v]; ok {
		s.members[v] = struct{}{}
		return
	}
	e.sets[v] = newSet(v)
}

// find returns v's set handle. It panics if v has not been introduced: a
// merge against an unregistered value is a programmer error, not a
// recoverable condition.
func (e *Engine) find(v lowir.Value) *set {
	s, ok := e.sets[v]
	if !ok {
		panic("pointsto: find of unregistered value " + v.String())
	}
	return s
}

// sameSet reports whether v1 and v2 currently belong to the same
// equivalence class.
func (e *Engine) sameSet(v1, v2 lowir.Value) bool {
	s1, ok1 := e.sets[v1]
	s2, ok2 := e.sets[v2]
	return ok1 && ok2 && s1 == s2
}

// merge unions v1's and v2's sets, using weighted union: the smaller set's
// members are reinserted into the larger set and rebound in e.sets, and
// the smaller set is emptied. Requires both values already registered.
func (e *Engine) merge(v1, v2 lowir.Value) {
	s1 := e.find(v1)
	s2 := e.find(v2)
	if s1 == s2 {
		return
	}
	small, large := s1, s2
	if s1.size() > s2.size() {
		small, large = s2, s1
	}
	for v := range small.members {
		large.members[v] = struct{}{}
		e.sets[v] = large
	}
	small.members = map[lowir.Value]struct{}{}
}
