package lowir

// Instruction is any Value produced or consumed within a function body.
// Instruction.Block returns nil for a materialized-but-detached instruction
// form (see ConstantExpr.AsInstruction): a global referenced only from such
// a constant expression, e.g. a vtable entry, has no corresponding
// function to attribute the use to.
type Instruction interface {
	Value
	Block() *BasicBlock
	Function() *Function
	Operands() []Value
	setBlock(b *BasicBlock)
}

// instr is the embeddable base for every concrete instruction kind.
type instr struct {
	value
	block *BasicBlock
}

func (i *instr) Block() *BasicBlock { return i.block }

func (i *instr) Function() *Function {
	if i.block == nil {
		return nil
	}
	return i.block.Parent
}

func (i *instr) setBlock(b *BasicBlock) { i.block = b }

func setParent(inst Instruction, b *BasicBlock) { inst.setBlock(b) }

// AllocaInst reserves stack storage for one value of Elem and yields a
// pointer to it. Every AllocaInst is an allocation site.
type AllocaInst struct {
	instr
	Elem Type
}

func NewAlloca(name string, elem Type) *AllocaInst {
	return &AllocaInst{instr: instr{value: value{name: name, typ: NewPointerType(elem)}}, Elem: elem}
}

func (a *AllocaInst) Operands() []Value { return nil }

// LoadInst reads the value pointed to by Ptr.
type LoadInst struct {
	instr
	Ptr Value
}

func NewLoad(name string, typ Type, ptr Value) *LoadInst {
	return &LoadInst{instr: instr{value: value{name: name, typ: typ}}, Ptr: ptr}
}

func (l *LoadInst) Operands() []Value { return []Value{l.Ptr} }

// StoreInst writes Val to the memory addressed by Ptr. Store instructions
// have no result value of interest (void type) but participate in two
// special-cased merge rules in the per-function analyzer: storing a
// function value, and storing a bitcast constant expression.
type StoreInst struct {
	instr
	Val Value
	Ptr Value
}

func NewStore(val, ptr Value) *StoreInst {
	return &StoreInst{instr: instr{value: value{name: "", typ: NewOpaqueType("void")}}, Val: val, Ptr: ptr}
}

func (s *StoreInst) Operands() []Value { return []Value{s.Val, s.Ptr} }

// BitCastInst reinterprets Src as a different pointer type without changing
// the bit pattern. It is the only cast form this IR models, matching the
// spec's constant-expression-bitcast rule.
type BitCastInst struct {
	instr
	Src Value
}

func NewBitCast(name string, typ Type, src Value) *BitCastInst {
	return &BitCastInst{instr: instr{value: value{name: name, typ: typ}}, Src: src}
}

func (b *BitCastInst) Operands() []Value { return []Value{b.Src} }

// CallLike is implemented by instructions that invoke a callee: direct and
// indirect calls. The spec treats them uniformly ("call-like instruction").
type CallLike interface {
	Instruction
	Callee() Value
	Args() []Value
}

// CallInst invokes Callee with Args. Callee may be a *Function (direct
// call) or any other interesting pointer (indirect call through a function
// pointer).
type CallInst struct {
	instr
	callee Value
	args   []Value
}

func NewCall(name string, typ Type, callee Value, args []Value) *CallInst {
	return &CallInst{instr: instr{value: value{name: name, typ: typ}}, callee: callee, args: args}
}

func (c *CallInst) Callee() Value  { return c.callee }
func (c *CallInst) Args() []Value  { return c.args }
func (c *CallInst) Operands() []Value {
	ops := make([]Value, 0, 1+len(c.args))
	ops = append(ops, c.callee)
	ops = append(ops, c.args...)
	return ops
}

// GenericInst models any instruction the engine doesn't need to special
// case (binary operators, comparisons, geps, casts other than bitcast,
// returns, branches, ...). Only its Operands matter to the pairwise
// disambiguation loop.
type GenericInst struct {
	instr
	Ops []Value
}

func NewGeneric(name string, typ Type, ops []Value) *GenericInst {
	return &GenericInst{instr: instr{value: value{name: name, typ: typ}}, Ops: ops}
}

func (g *GenericInst) Operands() []Value { return g.Ops }
