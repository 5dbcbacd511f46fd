package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import "unsafe"

// cursor is the insertion point of a builder: new instructions are inserted
// before `before` or, if it is not set, at the end of `block`.
type cursor struct {
	block  BasicBlock
	before Value
}

// Builder represents an LLVM IR builder.  A builder has exactly one insertion
// point which every positioning method replaces as a whole.
type Builder struct {
	c    C.LLVMBuilderRef
	ctx  *Context
	life *lifetime

	pos        cursor
	positioned bool
}

// NewBuilder creates a new IR builder in the given context.
func (c *Context) NewBuilder() *Builder {
	c.life.check()

	b := &Builder{
		c:    mustBuilder(C.LLVMCreateBuilderInContext(c.c)),
		ctx:  c,
		life: c.life.child("builder"),
	}

	c.takeOwnership(b)
	return b
}

// Dispose disposes of the builder.  The builder may not be used afterwards.
func (b *Builder) Dispose() {
	b.life.check()
	b.dispose()
}

func (b *Builder) dispose() {
	C.LLVMDisposeBuilder(b.c)
	b.life.end()
	b.positioned = false
}

func (b *Builder) alive() bool {
	return b.life.alive()
}

// -----------------------------------------------------------------------------

// InsertBlock returns the basic block the builder is positioned in if it is
// positioned at all.
func (b *Builder) InsertBlock() (BasicBlock, bool) {
	b.life.check()

	if !b.positioned {
		return BasicBlock{}, false
	}

	return b.pos.block, true
}

// Position moves the builder before instr in bb.  If instr is the zero Value,
// the builder is moved to the end of bb.
func (b *Builder) Position(bb BasicBlock, instr Value) {
	b.life.check()
	b.life.sameRoot(bb.life)

	if !instr.IsValid() {
		b.PositionAtEnd(bb)
		return
	}

	b.life.sameRoot(instr.life)
	if !instr.Parent().Equal(bb) {
		panic("llvm: instruction is not in the given block")
	}

	C.LLVMPositionBuilder(b.c, bb.c, instr.c)
	b.pos = cursor{block: bb, before: instr}
	b.positioned = true
}

// PositionBefore moves the builder before instr.
func (b *Builder) PositionBefore(instr Value) {
	b.life.check()
	b.life.sameRoot(instr.life)

	bb := instr.Parent()
	C.LLVMPositionBuilderBefore(b.c, instr.c)
	b.pos = cursor{block: bb, before: instr}
	b.positioned = true
}

// PositionAtEnd moves the builder to the end of bb.
func (b *Builder) PositionAtEnd(bb BasicBlock) {
	b.life.check()
	b.life.sameRoot(bb.life)

	C.LLVMPositionBuilderAtEnd(b.c, bb.c)
	b.pos = cursor{block: bb}
	b.positioned = true
}

// PositionAtStart moves the builder to the start of bb.
func (b *Builder) PositionAtStart(bb BasicBlock) {
	if first, ok := bb.First(); ok {
		b.Position(bb, first)
	} else {
		b.PositionAtEnd(bb)
	}
}

// ClearPosition unpositions the builder.  Building an instruction while the
// builder is not positioned panics.
func (b *Builder) ClearPosition() {
	b.life.check()

	C.LLVMClearInsertionPosition(b.c)
	b.pos = cursor{}
	b.positioned = false
}

// ready checks that the builder can insert an instruction using operands.
func (b *Builder) ready(operands ...Value) {
	b.life.check()

	if !b.positioned {
		panic("llvm: builder is not positioned")
	}
	b.pos.block.life.check()

	for _, op := range operands {
		b.life.sameRoot(op.life)
	}
}

// readyTypes checks that the given types can be used in an instruction.
func (b *Builder) readyTypes(types ...Type) {
	for _, t := range types {
		b.life.sameRoot(t.life)
	}
}

// emit wraps an instruction returned by LLVM.  LLVM folds operations over
// constants into constants which live as long as the context.  A no-op cast or
// a folded select may hand back a global: it keeps the lifetime of its module.
func (b *Builder) emit(v C.LLVMValueRef) Value {
	mustValue(v)

	if C.LLVMIsAGlobalValue(v) != nil {
		return b.ctx.module(C.LLVMGetGlobalParent(v)).global(v)
	} else if C.LLVMIsAConstant(v) != nil {
		return Value{c: v, life: b.ctx.life}
	}

	return Value{c: v, life: b.pos.block.life}
}

// cname converts an instruction name for LLVM.  The returned function frees
// it.
func cname(name string) (*C.char, func()) {
	if name == "" {
		return noName, func() {}
	}

	cs := C.CString(name)
	return cs, func() { C.free(unsafe.Pointer(cs)) }
}

// -----------------------------------------------------------------------------

// ConstInt creates an integer constant: see Context.ConstInt.
func (b *Builder) ConstInt(intType Type, n uint64, signExtend bool) Value {
	b.life.check()
	return b.ctx.ConstInt(intType, n, signExtend)
}

// BuildRet builds a `ret` instruction returning v.
func (b *Builder) BuildRet(v Value) Value {
	b.ready(v)
	return b.emit(C.LLVMBuildRet(b.c, v.c))
}

// BuildRetVoid builds a `ret void` instruction.
func (b *Builder) BuildRetVoid() Value {
	b.ready()
	return b.emit(C.LLVMBuildRetVoid(b.c))
}

// BuildAggregateRet builds a `ret` instruction returning multiple values as a
// single aggregate.
func (b *Builder) BuildAggregateRet(values ...Value) Value {
	b.ready(values...)

	refs, n := valueRefs(values)
	return b.emit(C.LLVMBuildAggregateRet(b.c, refs, n))
}

// BuildBr builds an unconditional `br` instruction.
func (b *Builder) BuildBr(dest BasicBlock) Value {
	b.ready()
	b.life.sameRoot(dest.life)
	return b.emit(C.LLVMBuildBr(b.c, dest.c))
}

// BuildCondBr builds a conditional `br` instruction.
func (b *Builder) BuildCondBr(cond Value, thenBlock, elseBlock BasicBlock) Value {
	b.ready(cond)
	b.life.sameRoot(thenBlock.life)
	b.life.sameRoot(elseBlock.life)
	return b.emit(C.LLVMBuildCondBr(b.c, cond.c, thenBlock.c, elseBlock.c))
}

// BuildSwitch builds a `switch` instruction.  Cases are added with AddCase.
func (b *Builder) BuildSwitch(v Value, defaultBlock BasicBlock, expectedNumCases int) Value {
	b.ready(v)
	b.life.sameRoot(defaultBlock.life)
	return b.emit(C.LLVMBuildSwitch(b.c, v.c, defaultBlock.c, cuint(expectedNumCases)))
}

// AddCase adds a case to a `switch` instruction.
func (v Value) AddCase(caseVal Value, dest BasicBlock) {
	if op, ok := v.Opcode(); !ok || op != SwitchOpcode {
		panic("llvm: value is not a switch")
	}

	v.life.sameRoot(caseVal.life)
	v.life.sameRoot(dest.life)
	C.LLVMAddCase(v.c, caseVal.c, dest.c)
}

// BuildUnreachable builds an `unreachable` instruction.
func (b *Builder) BuildUnreachable() Value {
	b.ready()
	return b.emit(C.LLVMBuildUnreachable(b.c))
}

// -----------------------------------------------------------------------------

// BuildAlloca builds an `alloca` instruction allocating a value of typ.
func (b *Builder) BuildAlloca(typ Type, name string) Value {
	b.ready()
	b.readyTypes(typ)

	cs, free := cname(name)
	defer free()
	return b.emit(C.LLVMBuildAlloca(b.c, typ.c, cs))
}

// BuildLoad builds a `load` instruction reading a value of loadedType.
func (b *Builder) BuildLoad(loadedType Type, ptr Value) Value {
	b.ready(ptr)
	b.readyTypes(loadedType)
	return b.emit(C.LLVMBuildLoad2(b.c, loadedType.c, ptr.c, noName))
}

// BuildStore builds a `store` instruction.
func (b *Builder) BuildStore(val, ptr Value) Value {
	b.ready(val, ptr)
	return b.emit(C.LLVMBuildStore(b.c, val.c, ptr.c))
}

// BuildGEP builds a `getelementptr` instruction.
func (b *Builder) BuildGEP(pointeeType Type, ptr Value, indices ...Value) Value {
	b.ready(append([]Value{ptr}, indices...)...)
	b.readyTypes(pointeeType)

	refs, n := valueRefs(indices)
	return b.emit(C.LLVMBuildGEP2(b.c, pointeeType.c, ptr.c, refs, n, noName))
}

// BuildInBoundsGEP builds a `getelementptr inbounds` instruction.
func (b *Builder) BuildInBoundsGEP(pointeeType Type, ptr Value, indices ...Value) Value {
	b.ready(append([]Value{ptr}, indices...)...)
	b.readyTypes(pointeeType)

	refs, n := valueRefs(indices)
	return b.emit(C.LLVMBuildInBoundsGEP2(b.c, pointeeType.c, ptr.c, refs, n, noName))
}

// BuildStructGEP builds a `getelementptr` instruction addressing the field at
// ndx of a struct of type structType.
func (b *Builder) BuildStructGEP(structType Type, ptr Value, ndx int) Value {
	b.ready(ptr)
	b.readyTypes(structType)
	return b.emit(C.LLVMBuildStructGEP2(b.c, structType.c, ptr.c, cuint(ndx), noName))
}

// -----------------------------------------------------------------------------

// BuildCall builds a `call` instruction.  fnType is the signature of fn.  name
// is ignored for calls to functions returning void since such calls cannot be
// named.
func (b *Builder) BuildCall(fnType Type, fn Value, args []Value, name string) Value {
	b.ready(append([]Value{fn}, args...)...)
	b.readyTypes(fnType)

	if fnType.ReturnType().Kind() == VoidTypeKind {
		name = ""
	}

	cs, free := cname(name)
	defer free()

	refs, n := valueRefs(args)
	return b.emit(C.LLVMBuildCall2(b.c, fnType.c, fn.c, refs, n, cs))
}

// BuildPhi builds an empty `phi` node of type typ.  Incoming values are added
// with AddIncoming.
func (b *Builder) BuildPhi(typ Type, name string) Value {
	b.ready()
	b.readyTypes(typ)

	cs, free := cname(name)
	defer free()
	return b.emit(C.LLVMBuildPhi(b.c, typ.c, cs))
}

// BuildSelect builds a `select` instruction.
func (b *Builder) BuildSelect(cond, then, els Value) Value {
	b.ready(cond, then, els)
	return b.emit(C.LLVMBuildSelect(b.c, cond.c, then.c, els.c, noName))
}

// BuildExtractValue builds an `extractvalue` instruction.
func (b *Builder) BuildExtractValue(agg Value, ndx int) Value {
	b.ready(agg)
	return b.emit(C.LLVMBuildExtractValue(b.c, agg.c, cuint(ndx), noName))
}

// BuildInsertValue builds an `insertvalue` instruction.
func (b *Builder) BuildInsertValue(agg, elem Value, ndx int) Value {
	b.ready(agg, elem)
	return b.emit(C.LLVMBuildInsertValue(b.c, agg.c, elem.c, cuint(ndx), noName))
}
