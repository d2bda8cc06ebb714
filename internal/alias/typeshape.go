package alias

import "ptaset/internal/lowir"

// TypeShapeOracle is a small type-based alias analysis in the style of a
// compiler's TBAA pass: identical value implies MustAlias, identical
// static pointee type implies MayAlias (the types could denote the same
// storage), and mismatched pointee type implies NoAlias. It is unsound in
// the presence of type punning, which is exactly the tradeoff a fast
// default oracle is expected to make.
type TypeShapeOracle struct{}

// NewTypeShapeOracle constructs the default oracle.
func NewTypeShapeOracle() *TypeShapeOracle { return &TypeShapeOracle{} }

func (TypeShapeOracle) Alias(p1 lowir.Value, size1 uint64, p2 lowir.Value, size2 uint64) Result {
	if p1 == p2 {
		return MustAlias
	}
	t1, t2 := p1.Type(), p2.Type()
	if !t1.IsPointer() || !t2.IsPointer() {
		return NoAlias
	}
	e1, e2 := t1.ElementType(), t2.ElementType()
	if e1.String() != e2.String() {
		return NoAlias
	}
	if size1 != size2 {
		// Same element type but the caller computed different store
		// sizes (one side unsized): fall back to MayAlias rather than
		// asserting a stronger relationship we can't justify.
		return MayAlias
	}
	return MayAlias
}

// ConservativeOracle assumes every pair of distinct interesting pointers
// may alias. Useful as a maximally-imprecise baseline for testing that the
// engine's set-merging machinery is correct independent of oracle quality.
type ConservativeOracle struct{}

func NewConservativeOracle() *ConservativeOracle { return &ConservativeOracle{} }

func (ConservativeOracle) Alias(p1 lowir.Value, _ uint64, p2 lowir.Value, _ uint64) Result {
	if p1 == p2 {
		return MustAlias
	}
	return MayAlias
}

// NewOracle constructs the oracle selected by typ.
func NewOracle(typ Type) Oracle {
	switch typ {
	case Conservative:
		return NewConservativeOracle()
	default:
		return NewTypeShapeOracle()
	}
}
