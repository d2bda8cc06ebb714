package lowir

// Value is any entity in the IR that can be a pointer's operand or result:
// an instruction, an argument, a global object, or a constant expression.
// Identity is Go pointer identity of the concrete implementation - two
// Values are the same IR entity iff they compare == as interface values.
type Value interface {
	// Name is a short, human-readable label used in diagnostics and the
	// serialized form (e.g. "%v3", "@g", "foo").
	Name() string
	// Type is the value's static type.
	Type() Type
	// String renders the value the way the engine's textual dumps expect.
	String() string
}

// value is the embeddable base every concrete Value implementation uses to
// avoid repeating Name/Type/String boilerplate.
type value struct {
	name string
	typ  Type
}

func (v *value) Name() string { return v.name }
func (v *value) Type() Type   { return v.typ }
func (v *value) String() string {
	if v.typ != nil {
		return v.typ.String() + " " + v.name
	}
	return v.name
}

// IsPointer reports whether v's static type is a pointer type. This is the
// type-level half of isInterestingPointer; the other half lives in
// interesting.go and additionally excludes null/undef-like forms.
func IsPointer(v Value) bool {
	t := v.Type()
	return t != nil && t.IsPointer()
}
