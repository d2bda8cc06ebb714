package main

import "ptaset/internal/lowir"

// buildDemoProgram assembles a single synthetic module exercising every
// points-to scenario the engine handles, since this repo carries no real
// IR loader (no LLVM binding exists anywhere in the surrounding stack).
// It stands in for "load a module from disk" in the CLI's analyze/save/
// load/distribution subcommands.
func buildDemoProgram() *lowir.Program {
	i8 := lowir.NewScalarType("i8", 1)
	i32 := lowir.NewScalarType("i32", 4)
	i64 := lowir.NewScalarType("i64", 8)
	voidTy := lowir.NewOpaqueType("void")

	m := lowir.NewModule("demo")

	g := m.AddGlobal(lowir.NewGlobalVariable("g", i32))

	foo := m.AddFunction(lowir.NewFunction("foo", lowir.NewPointerType(voidTy)))
	malloc := m.AddFunction(lowir.NewFunction("malloc", lowir.NewPointerType(i8)))

	main := m.AddFunction(lowir.NewFunction("main", voidTy))
	b := main.NewBlock()

	p := lowir.NewAlloca("p", i32)
	b.Emit(p)
	q := lowir.NewAlloca("q", i32)
	b.Emit(q)

	bc := lowir.NewBitCast("bc", lowir.NewPointerType(i8), p)
	b.Emit(bc)

	load := lowir.NewLoad("gval", i32, g)
	b.Emit(load)

	fnSlot := lowir.NewAlloca("fnSlot", lowir.NewPointerType(voidTy))
	b.Emit(fnSlot)
	b.Emit(lowir.NewStore(foo, fnSlot))

	ceSlot := lowir.NewAlloca("ceSlot", lowir.NewPointerType(i8))
	b.Emit(ceSlot)
	ce := lowir.NewBitCastConstExpr(lowir.NewPointerType(i8), g)
	b.Emit(lowir.NewStore(ce, ceSlot))

	size := lowir.NewGeneric("sz", i64, nil)
	b.Emit(size)
	heap := lowir.NewCall("heap", lowir.NewPointerType(i8), malloc, []lowir.Value{size})
	b.Emit(heap)

	return lowir.NewProgram(m)
}

// byName indexes every value in prog reachable from the canonical walk by
// its Name(), for the CLI's --query name lookups. Later values with a
// name collision overwrite earlier ones; the demo module never collides.
func byName(prog *lowir.Program) map[string]lowir.Value {
	index := make(map[string]lowir.Value)
	lowir.Walk(prog, func(v lowir.Value) {
		if v.Name() != "" {
			index[v.Name()] = v
		}
	})
	return index
}
