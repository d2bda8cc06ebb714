package lowir

// Module is one translation unit: an ordered set of global variables and
// functions plus a data layout. A Program is an ordered set of Modules.
type Module struct {
	Name       string
	Layout     DataLayout
	globalVars []*GlobalVariable
	functions  []*Function
}

// NewModule creates an empty module with the default data layout.
func NewModule(name string) *Module {
	return &Module{Name: name, Layout: DefaultDataLayout}
}

// AddGlobal appends a global variable to m, in insertion order.
func (m *Module) AddGlobal(g *GlobalVariable) *GlobalVariable {
	g.Module = m
	m.globalVars = append(m.globalVars, g)
	return g
}

// AddFunction appends a function to m, in insertion order.
func (m *Module) AddFunction(f *Function) *Function {
	f.Module = m
	m.functions = append(m.functions, f)
	return f
}

// Globals returns m's global variables in insertion order.
func (m *Module) Globals() []*GlobalVariable { return m.globalVars }

// Functions returns m's functions in insertion order.
func (m *Module) Functions() []*Function { return m.functions }

// Program is the top-level collection of modules the engine analyzes,
// standing in for phasar's ProjectIRDB.
type Program struct {
	modules []*Module
}

// NewProgram wraps a set of modules in the order they should be traversed.
func NewProgram(modules ...*Module) *Program { return &Program{modules: modules} }

// Modules returns the program's modules in insertion order.
func (p *Program) Modules() []*Module { return p.modules }

// AddModule appends m to the program.
func (p *Program) AddModule(m *Module) { p.modules = append(p.modules, m) }
