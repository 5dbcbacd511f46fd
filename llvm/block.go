package llvm

/*
#include "llvm-c/Core.h"
*/
import "C"

import "unsafe"

// BasicBlock represents an LLVM basic block.  Each block has its own lifetime
// nested in the lifetime of its function: the instructions of the block share
// it.
type BasicBlock struct {
	c    C.LLVMBasicBlockRef
	life *lifetime
}

// block wraps a block handle of the function whose lifetime is fnLife.
func block(fnLife *lifetime, bb C.LLVMBasicBlockRef) BasicBlock {
	mustBlock(bb)
	return BasicBlock{c: bb, life: fnLife.nested(unsafe.Pointer(bb), "basic block")}
}

// Name returns the name of the basic block.
func (bb BasicBlock) Name() string {
	bb.life.check()
	return C.GoString(C.LLVMGetBasicBlockName(bb.c))
}

// Equal reports whether bb and o refer to the same block.
func (bb BasicBlock) Equal(o BasicBlock) bool {
	return bb.c == o.c
}

// IsValid reports whether bb refers to a block at all.
func (bb BasicBlock) IsValid() bool {
	return bb.c != nil
}

// Terminator returns the terminator of the basic block if it has one.
func (bb BasicBlock) Terminator() (Value, bool) {
	bb.life.check()

	term := C.LLVMGetBasicBlockTerminator(bb.c)
	if term == nil {
		return Value{}, false
	}

	return Value{c: term, life: bb.life}, true
}

// Parent returns the function containing the basic block.
func (bb BasicBlock) Parent() Value {
	bb.life.check()
	return Value{c: mustValue(C.LLVMGetBasicBlockParent(bb.c)), life: bb.life.parent}
}

// AsValue returns the block as a value usable as an operand.
func (bb BasicBlock) AsValue() Value {
	bb.life.check()
	return Value{c: mustValue(C.LLVMBasicBlockAsValue(bb.c)), life: bb.life}
}

// First returns the first instruction of the block if it has any.
func (bb BasicBlock) First() (Value, bool) {
	bb.life.check()

	if instr := C.LLVMGetFirstInstruction(bb.c); instr != nil {
		return Value{c: instr, life: bb.life}, true
	}

	return Value{}, false
}

// Last returns the last instruction of the block if it has any.
func (bb BasicBlock) Last() (Value, bool) {
	bb.life.check()

	if instr := C.LLVMGetLastInstruction(bb.c); instr != nil {
		return Value{c: instr, life: bb.life}, true
	}

	return Value{}, false
}

// instrIter is an iterator over the instructions in a basic block.
type instrIter struct {
	life       *lifetime
	curr, next C.LLVMValueRef
}

func (it *instrIter) Item() Value {
	return Value{c: it.curr, life: it.life}
}

func (it *instrIter) Next() bool {
	it.life.check()

	it.curr = it.next
	if it.curr != nil {
		it.next = C.LLVMGetNextInstruction(it.curr)
	}

	return it.curr != nil
}

// Instructions returns an iterator over the instructions in the block.
func (bb BasicBlock) Instructions() Iterator[Value] {
	bb.life.check()
	return &instrIter{life: bb.life, next: C.LLVMGetFirstInstruction(bb.c)}
}

// MoveAfter moves bb to come directly after other in the function body.
func (bb BasicBlock) MoveAfter(other BasicBlock) {
	bb.life.check()
	bb.life.sameRoot(other.life)

	if bb.life.parent != other.life.parent {
		panic("llvm: blocks belong to different functions")
	}

	C.LLVMMoveBasicBlockAfter(bb.c, other.c)
}

// Delete removes the block from its function and deletes it along with its
// instructions.  The block, its instructions and any builder positioned in it
// may not be used afterwards.
func (bb BasicBlock) Delete() {
	bb.life.check()
	C.LLVMDeleteBasicBlock(bb.c)
	bb.life.end()
}
