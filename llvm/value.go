package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
#include "llvm-c/Analysis.h"
*/
import "C"

import "unsafe"

// Value represents an LLVM value: a function, a parameter, an instruction or a
// constant.  Values are never disposed on their own; they are reclaimed with
// the module (functions, parameters, instructions) or the context (constants)
// that owns them.
type Value struct {
	c    C.LLVMValueRef
	life *lifetime
}

// Type returns the type of the value.
func (v Value) Type() Type {
	v.life.check()
	return Type{c: mustType(C.LLVMTypeOf(v.c)), life: v.life.root}
}

// Name returns the name of the value.
func (v Value) Name() string {
	v.life.check()

	var strlen C.size_t
	cname := C.LLVMGetValueName2(v.c, &strlen)
	return C.GoStringN(cname, C.int(strlen))
}

// SetName sets the name of the value to name.
func (v Value) SetName(name string) {
	v.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.LLVMSetValueName2(v.c, cname, C.size_t(len(name)))
}

// Equal reports whether v and o refer to the same LLVM value.
func (v Value) Equal(o Value) bool {
	return v.c == o.c
}

// IsValid reports whether v refers to a value at all: the zero Value does not.
func (v Value) IsValid() bool {
	return v.c != nil
}

// IsConstant returns whether the value is constant.
func (v Value) IsConstant() bool {
	v.life.check()
	return C.LLVMIsConstant(v.c) == 1
}

// IsFunction returns whether the value is a function.
func (v Value) IsFunction() bool {
	v.life.check()
	return C.LLVMIsAFunction(v.c) != nil
}

// IsInstruction returns whether the value is an instruction.
func (v Value) IsInstruction() bool {
	v.life.check()
	return C.LLVMIsAInstruction(v.c) != nil
}

// IsTerminator returns whether the value is a terminator instruction.
func (v Value) IsTerminator() bool {
	v.life.check()
	return C.LLVMIsATerminatorInst(v.c) != nil
}

// Opcode returns the opcode of an instruction or constant expression.
func (v Value) Opcode() (Opcode, bool) {
	v.life.check()

	if C.LLVMIsAInstruction(v.c) != nil {
		return opcodes.fromNative(C.LLVMGetInstructionOpcode(v.c)), true
	} else if C.LLVMIsAConstantExpr(v.c) != nil {
		return opcodes.fromNative(C.LLVMGetConstOpcode(v.c)), true
	}

	return 0, false
}

// Parent returns the basic block containing the instruction.
func (v Value) Parent() BasicBlock {
	v.mustBeInstruction()
	return BasicBlock{c: mustBlock(C.LLVMGetInstructionParent(v.c)), life: v.life}
}

// String returns the textual IR of the value.
func (v Value) String() string {
	v.life.check()
	return takeMessage(C.LLVMPrintValueToString(v.c))
}

// Dump prints the value to standard error.
func (v Value) Dump() {
	v.life.check()
	C.LLVMDumpValue(v.c)
}

func (v Value) mustBeFunction() {
	if !v.IsFunction() {
		panic("llvm: value is not a function")
	}
}

func (v Value) mustBeInstruction() {
	if !v.IsInstruction() {
		panic("llvm: value is not an instruction")
	}
}

// -----------------------------------------------------------------------------
// Constants.

// ConstInt creates a new integer constant of type intType with value n.  If
// signExtend is set, n is sign extended to the width of intType.
func (c *Context) ConstInt(intType Type, n uint64, signExtend bool) Value {
	c.ownType(intType)
	return Value{
		c:    mustValue(C.LLVMConstInt(intType.c, C.ulonglong(n), llvmBool(signExtend))),
		life: c.life,
	}
}

// ConstReal creates a new floating point constant of type floatType.
func (c *Context) ConstReal(floatType Type, n float64) Value {
	c.ownType(floatType)
	return Value{c: mustValue(C.LLVMConstReal(floatType.c, C.double(n))), life: c.life}
}

// ConstNull creates the null (zero) value of typ.
func (c *Context) ConstNull(typ Type) Value {
	c.ownType(typ)
	return Value{c: mustValue(C.LLVMConstNull(typ.c)), life: c.life}
}

// Undef creates an `undef` value of typ.
func (c *Context) Undef(typ Type) Value {
	c.ownType(typ)
	return Value{c: mustValue(C.LLVMGetUndef(typ.c)), life: c.life}
}

// ZExtValue returns the zero extended value of an integer constant.
func (v Value) ZExtValue() uint64 {
	v.life.check()
	if C.LLVMIsAConstantInt(v.c) == nil {
		panic("llvm: value is not an integer constant")
	}

	return uint64(C.LLVMConstIntGetZExtValue(v.c))
}

// -----------------------------------------------------------------------------

// Linkage represents an LLVM linkage.
type Linkage int

// Enumeration of the different linkages.
const (
	ExternalLinkage Linkage = iota
	AvailableExternallyLinkage
	LinkOnceAnyLinkage
	LinkOnceODRLinkage
	WeakAnyLinkage
	WeakODRLinkage
	AppendingLinkage
	InternalLinkage
	PrivateLinkage
	ExternalWeakLinkage
	CommonLinkage
)

var linkages = newEnumTable[Linkage, C.LLVMLinkage]("linkage",
	entry[C.LLVMLinkage]{"external", C.LLVMExternalLinkage},
	entry[C.LLVMLinkage]{"available_externally", C.LLVMAvailableExternallyLinkage},
	entry[C.LLVMLinkage]{"linkonce", C.LLVMLinkOnceAnyLinkage},
	entry[C.LLVMLinkage]{"linkonce_odr", C.LLVMLinkOnceODRLinkage},
	entry[C.LLVMLinkage]{"weak", C.LLVMWeakAnyLinkage},
	entry[C.LLVMLinkage]{"weak_odr", C.LLVMWeakODRLinkage},
	entry[C.LLVMLinkage]{"appending", C.LLVMAppendingLinkage},
	entry[C.LLVMLinkage]{"internal", C.LLVMInternalLinkage},
	entry[C.LLVMLinkage]{"private", C.LLVMPrivateLinkage},
	entry[C.LLVMLinkage]{"extern_weak", C.LLVMExternalWeakLinkage},
	entry[C.LLVMLinkage]{"common", C.LLVMCommonLinkage},
)

func (l Linkage) String() string {
	return linkages.str(l)
}

// VerifierFailureAction selects what happens when verification fails.
type VerifierFailureAction int

// Enumeration of verifier failure actions.
const (
	// AbortProcessAction prints a diagnostic and aborts the process.
	AbortProcessAction VerifierFailureAction = iota

	// PrintMessageAction prints a diagnostic to standard error.
	PrintMessageAction

	// ReturnStatusAction only reports the result.
	ReturnStatusAction
)

var verifierActions = newEnumTable[VerifierFailureAction, C.LLVMVerifierFailureAction]("verifier action",
	entry[C.LLVMVerifierFailureAction]{"abort", C.LLVMAbortProcessAction},
	entry[C.LLVMVerifierFailureAction]{"print", C.LLVMPrintMessageAction},
	entry[C.LLVMVerifierFailureAction]{"return", C.LLVMReturnStatusAction},
)

func (a VerifierFailureAction) String() string {
	return verifierActions.str(a)
}

// -----------------------------------------------------------------------------
// Functions.

// NumParams returns the number of parameters of the function.
func (v Value) NumParams() int {
	v.mustBeFunction()
	return int(C.LLVMCountParams(v.c))
}

// Param returns the function parameter at index ndx.
func (v Value) Param(ndx int) Value {
	if ndx < 0 || ndx >= v.NumParams() {
		panic("llvm: parameter index out of bounds")
	}

	return Value{c: mustValue(C.LLVMGetParam(v.c, cuint(ndx))), life: v.life}
}

// Params returns all the parameters of the function.
func (v Value) Params() []Value {
	params := make([]Value, v.NumParams())
	for i := range params {
		params[i] = v.Param(i)
	}

	return params
}

// Linkage returns the linkage of the global value.
func (v Value) Linkage() Linkage {
	v.life.check()
	return linkages.fromNative(C.LLVMGetLinkage(v.c))
}

// SetLinkage sets the linkage of the global value to linkage.
func (v Value) SetLinkage(linkage Linkage) {
	v.life.check()
	C.LLVMSetLinkage(v.c, linkages.native(linkage))
}

// IsDeclaration returns whether the function has no body.
func (v Value) IsDeclaration() bool {
	v.life.check()
	return C.LLVMIsDeclaration(v.c) == 1
}

// FunctionType returns the signature of the function.
func (v Value) FunctionType() Type {
	v.mustBeFunction()
	return Type{c: mustType(C.LLVMGlobalGetValueType(v.c)), life: v.life.root}
}

// VerifyFunction checks the structure of the function and returns true if it
// is well-formed.  action selects what else happens when it is not.
func (v Value) VerifyFunction(action VerifierFailureAction) bool {
	v.mustBeFunction()
	return C.LLVMVerifyFunction(v.c, verifierActions.native(action)) == 0
}

// DeleteFunction removes the function from its module.  The function, its
// parameters, blocks and instructions may not be used afterwards.
func (v Value) DeleteFunction() {
	v.mustBeFunction()
	if v.life.kind != "function" {
		panic("llvm: function is not tracked by a module")
	}

	C.LLVMDeleteFunction(v.c)
	v.life.end()
}

// NumBlocks returns the number of basic blocks in the function body.
func (v Value) NumBlocks() int {
	v.mustBeFunction()
	return int(C.LLVMCountBasicBlocks(v.c))
}

// EntryBlock returns the entry block of the function if it has a body.
func (v Value) EntryBlock() (BasicBlock, bool) {
	if v.NumBlocks() == 0 {
		return BasicBlock{}, false
	}

	return block(v.life, C.LLVMGetEntryBasicBlock(v.c)), true
}

// blockIter is an iterator over the body of a function.  life is the lifetime
// of the function.
type blockIter struct {
	life       *lifetime
	curr, next C.LLVMBasicBlockRef
}

func (it *blockIter) Item() BasicBlock {
	return block(it.life, it.curr)
}

func (it *blockIter) Next() bool {
	it.life.check()

	it.curr = it.next
	if it.curr != nil {
		it.next = C.LLVMGetNextBasicBlock(it.curr)
	}

	return it.curr != nil
}

// Blocks returns an iterator over the blocks of a function body.
func (v Value) Blocks() Iterator[BasicBlock] {
	v.mustBeFunction()
	return &blockIter{life: v.life, next: C.LLVMGetFirstBasicBlock(v.c)}
}

// -----------------------------------------------------------------------------
// PHI nodes.

// AddIncoming adds incoming values to a `phi` instruction: values[i] flows in
// from blocks[i].
func (v Value) AddIncoming(values []Value, blocks []BasicBlock) {
	v.life.check()
	if C.LLVMIsAPHINode(v.c) == nil {
		panic("llvm: value is not a phi node")
	}

	if len(values) != len(blocks) {
		panic("llvm: mismatched phi incoming values and blocks")
	} else if len(values) == 0 {
		return
	}

	blockArr := make([]C.LLVMBasicBlockRef, len(blocks))
	for i, bb := range blocks {
		v.life.sameRoot(values[i].life)
		v.life.sameRoot(bb.life)
		blockArr[i] = bb.c
	}

	valueArr, n := valueRefs(values)
	C.LLVMAddIncoming(v.c, valueArr, &blockArr[0], n)
}

// NumIncoming returns the number of incoming edges of a `phi` instruction.
func (v Value) NumIncoming() int {
	v.life.check()
	return int(C.LLVMCountIncoming(v.c))
}

// -----------------------------------------------------------------------------

// NumArgs returns the number of arguments passed by a `call` instruction.
func (v Value) NumArgs() int {
	v.life.check()
	if C.LLVMIsACallInst(v.c) == nil {
		panic("llvm: value is not a call instruction")
	}

	return int(C.LLVMGetNumArgOperands(v.c))
}

// SetTailCall marks a `call` instruction as a tail call.
func (v Value) SetTailCall(tc bool) {
	v.life.check()
	if C.LLVMIsACallInst(v.c) == nil {
		panic("llvm: value is not a call instruction")
	}

	C.LLVMSetTailCall(v.c, llvmBool(tc))
}

// IsTailCall returns whether a `call` instruction is a tail call.
func (v Value) IsTailCall() bool {
	v.life.check()
	return C.LLVMIsTailCall(v.c) == 1
}
