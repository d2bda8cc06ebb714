// Package lowir is a minimal, from-scratch model of a low-level typed SSA
// intermediate representation. It plays the role that github.com/llir/llvm
// or golang.org/x/tools/go/ssa play for other analyses in this codebase's
// lineage: a concrete, walkable IR that the points-to engine treats as
// read-only.
package lowir

import "math"

// UnknownSize is the sentinel returned by DataLayout.StoreSize for types
// whose size cannot be determined statically (unsized types), mirroring
// LLVM's MemoryLocation::UnknownSize.
const UnknownSize = math.MaxUint64

// Type is the minimal type surface the points-to engine needs: whether a
// value of this type is a pointer, and, if so, what it points to.
type Type interface {
	String() string
	IsPointer() bool
	// ElementType returns the pointee type. It panics if !IsPointer().
	ElementType() Type
	// IsSized reports whether the type has a statically known store size.
	IsSized() bool
}

// scalarType is a fixed-size, non-pointer, non-aggregate type (i32, i64,
// float, and so on).
type scalarType struct {
	name string
	size uint64
	sized bool
}

func (t *scalarType) String() string     { return t.name }
func (t *scalarType) IsPointer() bool    { return false }
func (t *scalarType) ElementType() Type  { panic("lowir: ElementType of non-pointer type " + t.name) }
func (t *scalarType) IsSized() bool      { return t.sized }

// NewScalarType constructs a fixed-size scalar type such as "i32" or "i64".
func NewScalarType(name string, size uint64) Type {
	return &scalarType{name: name, size: size, sized: true}
}

// NewOpaqueType constructs a type with no statically known size, such as an
// opaque struct forward-declared in another translation unit.
func NewOpaqueType(name string) Type {
	return &scalarType{name: name, sized: false}
}

// PointerType is a pointer to some element type.
type PointerType struct {
	Elem Type
}

func (t *PointerType) String() string    { return t.Elem.String() + "*" }
func (t *PointerType) IsPointer() bool   { return true }
func (t *PointerType) ElementType() Type { return t.Elem }
func (t *PointerType) IsSized() bool     { return true }

// NewPointerType returns the pointer-to-elem type.
func NewPointerType(elem Type) *PointerType { return &PointerType{Elem: elem} }

// DataLayout answers store-size queries the way llvm::DataLayout does for a
// module. It is intentionally tiny: this repo's oracle only ever needs the
// store size of a pointer's element type.
type DataLayout struct {
	// PointerSize is the store size, in bytes, of a pointer value itself.
	PointerSize uint64
}

// DefaultDataLayout is a 64-bit little-endian layout, used when a module
// does not specify one explicitly.
var DefaultDataLayout = DataLayout{PointerSize: 8}

// StoreSize returns the number of bytes t occupies in memory, or
// UnknownSize if t has no statically known size.
func (dl DataLayout) StoreSize(t Type) uint64 {
	if !t.IsSized() {
		return UnknownSize
	}
	if pt, ok := t.(*PointerType); ok {
		_ = pt
		return dl.PointerSize
	}
	if st, ok := t.(*scalarType); ok {
		return st.size
	}
	return UnknownSize
}
