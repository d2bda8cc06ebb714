package pointsto_test

import (
	"ptaset/internal/alias"
	"ptaset/internal/config"
	"ptaset/internal/lowir"
	"ptaset/pointsto"
)

// lazyConfig is config.Default() with lazy evaluation turned on: the
// engine then analyzes at construction only the functions that use a
// global object, and every other function when a query first reaches it.
// The tests in this package currently all use config.Default() instead.
func lazyConfig() config.Config {
	cfg := config.Default()
	cfg.UseLazyEvaluation = true
	return cfg
}

// newEngine builds an engine over prog with a scripted oracle already
// programmed by the caller. Callers must call o.Set(...) BEFORE calling
// newEngine whenever prog contains a global object, since even lazy
// engines eagerly seed global objects' cross-function points-to sets at
// construction time.
func newEngine(prog *lowir.Program, cfg config.Config, o *alias.ScriptedOracle) *pointsto.Engine {
	return pointsto.NewWithProvider(prog, cfg, alias.NewScriptedProvider(o))
}

// twoAllocasModule builds:
//
//	define void @f() {
//	  %p = alloca i32
//	  %q = alloca i32
//	}
func twoAllocasModule() (*lowir.Program, *lowir.AllocaInst, *lowir.AllocaInst) {
	i32 := lowir.NewScalarType("i32", 4)
	m := lowir.NewModule("m")
	f := m.AddFunction(lowir.NewFunction("f", lowir.NewOpaqueType("void")))
	b := f.NewBlock()

	p := lowir.NewAlloca("p", i32)
	q := lowir.NewAlloca("q", i32)
	b.Emit(p)
	b.Emit(q)

	return lowir.NewProgram(m), p, q
}

// allocaBitcastModule builds:
//
//	define void @f() {
//	  %p = alloca i32
//	  %q = bitcast i32* %p to i8*
//	}
func allocaBitcastModule() (*lowir.Program, *lowir.AllocaInst, *lowir.BitCastInst) {
	i32 := lowir.NewScalarType("i32", 4)
	i8 := lowir.NewScalarType("i8", 1)
	m := lowir.NewModule("m")
	f := m.AddFunction(lowir.NewFunction("f", lowir.NewOpaqueType("void")))
	b := f.NewBlock()

	p := lowir.NewAlloca("p", i32)
	b.Emit(p)
	q := lowir.NewBitCast("q", lowir.NewPointerType(i8), p)
	b.Emit(q)

	return lowir.NewProgram(m), p, q
}

// globalLoadModule builds:
//
//	@g = global i32 0
//	define void @f() {
//	  %v = load i32, i32* @g
//	}
func globalLoadModule() (*lowir.Program, *lowir.GlobalVariable, *lowir.LoadInst) {
	i32 := lowir.NewScalarType("i32", 4)
	m := lowir.NewModule("m")
	g := m.AddGlobal(lowir.NewGlobalVariable("g", i32))
	f := m.AddFunction(lowir.NewFunction("f", lowir.NewOpaqueType("void")))
	b := f.NewBlock()
	v := lowir.NewLoad("v", i32, g)
	b.Emit(v)
	return lowir.NewProgram(m), g, v
}

// functionPointerStoreModule builds:
//
//	declare void @foo()
//	define void @f() {
//	  %slot = alloca void()*
//	  store void()* @foo, void()** %slot
//	}
func functionPointerStoreModule() (*lowir.Program, *lowir.Function, *lowir.AllocaInst) {
	voidTy := lowir.NewOpaqueType("void")
	m := lowir.NewModule("m")
	foo := m.AddFunction(lowir.NewFunction("foo", lowir.NewPointerType(voidTy)))
	f := m.AddFunction(lowir.NewFunction("f", voidTy))
	b := f.NewBlock()

	slot := lowir.NewAlloca("slot", lowir.NewPointerType(voidTy))
	b.Emit(slot)
	st := lowir.NewStore(foo, slot)
	b.Emit(st)

	return lowir.NewProgram(m), foo, slot
}

// bitcastConstExprStoreModule builds:
//
//	@g = global i32 0
//	define void @f() {
//	  %slot = alloca i8*
//	  store i8* bitcast(i32* @g to i8*), i8** %slot
//	}
func bitcastConstExprStoreModule() (*lowir.Program, *lowir.GlobalVariable, *lowir.AllocaInst) {
	i32 := lowir.NewScalarType("i32", 4)
	i8 := lowir.NewScalarType("i8", 1)
	m := lowir.NewModule("m")
	g := m.AddGlobal(lowir.NewGlobalVariable("g", i32))
	f := m.AddFunction(lowir.NewFunction("f", lowir.NewOpaqueType("void")))
	b := f.NewBlock()

	slot := lowir.NewAlloca("slot", lowir.NewPointerType(i8))
	b.Emit(slot)
	ce := lowir.NewBitCastConstExpr(lowir.NewPointerType(i8), g)
	st := lowir.NewStore(ce, slot)
	b.Emit(st)

	return lowir.NewProgram(m), g, slot
}

// mallocModule builds:
//
//	define i8* @malloc(i64)
//	define void @f() {
//	  %h = call i8* @malloc(i64 16)
//	}
func mallocModule() (*lowir.Program, *lowir.CallInst) {
	i8 := lowir.NewScalarType("i8", 1)
	i64 := lowir.NewScalarType("i64", 8)
	m := lowir.NewModule("m")
	malloc := m.AddFunction(lowir.NewFunction("malloc", lowir.NewPointerType(i8)))
	f := m.AddFunction(lowir.NewFunction("f", lowir.NewOpaqueType("void")))
	b := f.NewBlock()

	size := lowir.NewGeneric("sz", i64, nil)
	h := lowir.NewCall("h", lowir.NewPointerType(i8), malloc, []lowir.Value{size})
	b.Emit(h)

	return lowir.NewProgram(m), h
}
