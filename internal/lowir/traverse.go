package lowir

// Walk performs the canonical traversal of prog that both the serializer
// and deserializer use to assign stable value ids: modules in insertion
// order; within each module, globals first, then for each function: the
// function itself, its pointer-typed arguments, then its instructions in
// instruction-iteration order. Both save and load must call Walk
// identically for the id spaces to line up.
func Walk(prog *Program, visit func(Value)) {
	for _, m := range prog.Modules() {
		for _, g := range m.Globals() {
			visit(g)
		}
		for _, f := range m.Functions() {
			visit(f)
			for _, a := range f.Args {
				if a.Type().IsPointer() {
					visit(a)
				}
			}
			for _, inst := range f.Instrs {
				visit(inst)
			}
		}
	}
}
