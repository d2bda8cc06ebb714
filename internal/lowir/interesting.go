package lowir

// UndefConstant and NullConstant are the two IR-specific "trivially
// uninteresting" pointer forms IsInterestingPointer excludes: they never
// denote a real memory object, so tracking them in a points-to set would
// only pollute it.
type UndefConstant struct{ value }
type NullConstant struct{ value }

// NewUndef and NewNull construct the uninteresting sentinel values of a
// given pointer type.
func NewUndef(typ Type) *UndefConstant { return &UndefConstant{value{name: "undef", typ: typ}} }
func NewNull(typ Type) *NullConstant   { return &NullConstant{value{name: "null", typ: typ}} }

// IsInterestingPointer reports whether v is a pointer-typed value the
// engine should track: excludes non-pointers, null, and undef.
func IsInterestingPointer(v Value) bool {
	if v == nil || !IsPointer(v) {
		return false
	}
	switch v.(type) {
	case *UndefConstant, *NullConstant:
		return false
	default:
		return true
	}
}

// RetrieveFunction returns the function v syntactically belongs to, or nil
// if v has no enclosing function (a Function itself, a GlobalVariable, a
// detached materialized instruction, or a bare ConstantExpr).
func RetrieveFunction(v Value) *Function {
	switch t := v.(type) {
	case *Argument:
		return t.Parent
	case Instruction:
		return t.Function()
	default:
		return nil
	}
}

// Downcast predicates the points-to engine uses instead of type-asserting
// on concrete IR types directly.

func IsGlobalObject(v Value) (GlobalObject, bool) {
	g, ok := v.(GlobalObject)
	return g, ok
}

func IsGlobalVariable(v Value) (*GlobalVariable, bool) {
	g, ok := v.(*GlobalVariable)
	return g, ok
}

func IsFunctionValue(v Value) (*Function, bool) {
	f, ok := v.(*Function)
	return f, ok
}

func IsStore(v Value) (*StoreInst, bool) {
	s, ok := v.(*StoreInst)
	return s, ok
}

func IsCallLike(v Value) (CallLike, bool) {
	c, ok := v.(CallLike)
	return c, ok
}

func IsAlloca(v Value) (*AllocaInst, bool) {
	a, ok := v.(*AllocaInst)
	return a, ok
}

func IsBitCast(v Value) (*BitCastInst, bool) {
	b, ok := v.(*BitCastInst)
	return b, ok
}

func IsConstantExpr(v Value) (*ConstantExpr, bool) {
	ce, ok := v.(*ConstantExpr)
	return ce, ok
}
