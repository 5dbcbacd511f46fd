package llvm

/*
#include "llvm-c/Core.h"
*/
import "C"

// Opcode represents an LLVM instruction opcode.
type Opcode int

// Enumeration of different LLVM opcodes.
const (
	RetOpcode Opcode = iota
	BrOpcode
	SwitchOpcode
	IndirectBrOpcode
	InvokeOpcode
	UnreachableOpcode
	CallBrOpcode
	FNegOpcode
	AddOpcode
	FAddOpcode
	SubOpcode
	FSubOpcode
	MulOpcode
	FMulOpcode
	UDivOpcode
	SDivOpcode
	FDivOpcode
	URemOpcode
	SRemOpcode
	FRemOpcode
	ShlOpcode
	LShrOpcode
	AShrOpcode
	AndOpcode
	OrOpcode
	XorOpcode
	AllocaOpcode
	LoadOpcode
	StoreOpcode
	GetElementPtrOpcode
	TruncOpcode
	ZExtOpcode
	SExtOpcode
	FPToUIOpcode
	FPToSIOpcode
	UIToFPOpcode
	SIToFPOpcode
	FPTruncOpcode
	FPExtOpcode
	PtrToIntOpcode
	IntToPtrOpcode
	BitCastOpcode
	AddrSpaceCastOpcode
	ICmpOpcode
	FCmpOpcode
	PHIOpcode
	CallOpcode
	SelectOpcode
	UserOp1Opcode
	UserOp2Opcode
	VAArgOpcode
	ExtractElementOpcode
	InsertElementOpcode
	ShuffleVectorOpcode
	ExtractValueOpcode
	InsertValueOpcode
	FreezeOpcode
	FenceOpcode
	AtomicCmpXchgOpcode
	AtomicRMWOpcode
	ResumeOpcode
	LandingPadOpcode
	CleanupRetOpcode
	CatchRetOpcode
	CatchPadOpcode
	CleanupPadOpcode
	CatchSwitchOpcode
)

type opEntry = entry[C.LLVMOpcode]

var opcodes = newEnumTable[Opcode, C.LLVMOpcode]("opcode",
	opEntry{"ret", C.LLVMRet},
	opEntry{"br", C.LLVMBr},
	opEntry{"switch", C.LLVMSwitch},
	opEntry{"indirectbr", C.LLVMIndirectBr},
	opEntry{"invoke", C.LLVMInvoke},
	opEntry{"unreachable", C.LLVMUnreachable},
	opEntry{"callbr", C.LLVMCallBr},
	opEntry{"fneg", C.LLVMFNeg},
	opEntry{"add", C.LLVMAdd},
	opEntry{"fadd", C.LLVMFAdd},
	opEntry{"sub", C.LLVMSub},
	opEntry{"fsub", C.LLVMFSub},
	opEntry{"mul", C.LLVMMul},
	opEntry{"fmul", C.LLVMFMul},
	opEntry{"udiv", C.LLVMUDiv},
	opEntry{"sdiv", C.LLVMSDiv},
	opEntry{"fdiv", C.LLVMFDiv},
	opEntry{"urem", C.LLVMURem},
	opEntry{"srem", C.LLVMSRem},
	opEntry{"frem", C.LLVMFRem},
	opEntry{"shl", C.LLVMShl},
	opEntry{"lshr", C.LLVMLShr},
	opEntry{"ashr", C.LLVMAShr},
	opEntry{"and", C.LLVMAnd},
	opEntry{"or", C.LLVMOr},
	opEntry{"xor", C.LLVMXor},
	opEntry{"alloca", C.LLVMAlloca},
	opEntry{"load", C.LLVMLoad},
	opEntry{"store", C.LLVMStore},
	opEntry{"getelementptr", C.LLVMGetElementPtr},
	opEntry{"trunc", C.LLVMTrunc},
	opEntry{"zext", C.LLVMZExt},
	opEntry{"sext", C.LLVMSExt},
	opEntry{"fptoui", C.LLVMFPToUI},
	opEntry{"fptosi", C.LLVMFPToSI},
	opEntry{"uitofp", C.LLVMUIToFP},
	opEntry{"sitofp", C.LLVMSIToFP},
	opEntry{"fptrunc", C.LLVMFPTrunc},
	opEntry{"fpext", C.LLVMFPExt},
	opEntry{"ptrtoint", C.LLVMPtrToInt},
	opEntry{"inttoptr", C.LLVMIntToPtr},
	opEntry{"bitcast", C.LLVMBitCast},
	opEntry{"addrspacecast", C.LLVMAddrSpaceCast},
	opEntry{"icmp", C.LLVMICmp},
	opEntry{"fcmp", C.LLVMFCmp},
	opEntry{"phi", C.LLVMPHI},
	opEntry{"call", C.LLVMCall},
	opEntry{"select", C.LLVMSelect},
	opEntry{"userop1", C.LLVMUserOp1},
	opEntry{"userop2", C.LLVMUserOp2},
	opEntry{"va_arg", C.LLVMVAArg},
	opEntry{"extractelement", C.LLVMExtractElement},
	opEntry{"insertelement", C.LLVMInsertElement},
	opEntry{"shufflevector", C.LLVMShuffleVector},
	opEntry{"extractvalue", C.LLVMExtractValue},
	opEntry{"insertvalue", C.LLVMInsertValue},
	opEntry{"freeze", C.LLVMFreeze},
	opEntry{"fence", C.LLVMFence},
	opEntry{"cmpxchg", C.LLVMAtomicCmpXchg},
	opEntry{"atomicrmw", C.LLVMAtomicRMW},
	opEntry{"resume", C.LLVMResume},
	opEntry{"landingpad", C.LLVMLandingPad},
	opEntry{"cleanupret", C.LLVMCleanupRet},
	opEntry{"catchret", C.LLVMCatchRet},
	opEntry{"catchpad", C.LLVMCatchPad},
	opEntry{"cleanuppad", C.LLVMCleanupPad},
	opEntry{"catchswitch", C.LLVMCatchSwitch},
)

func (op Opcode) String() string {
	return opcodes.str(op)
}

// IsCast returns whether the opcode is one of the conversion operations.
func (op Opcode) IsCast() bool {
	return TruncOpcode <= op && op <= AddrSpaceCastOpcode
}

// -----------------------------------------------------------------------------

// IntPredicate represents the predicate of an `icmp` instruction.
type IntPredicate int

// Enumeration of valid int predicates.
const (
	IntEQ IntPredicate = iota
	IntNE
	IntUGT
	IntUGE
	IntULT
	IntULE
	IntSGT
	IntSGE
	IntSLT
	IntSLE
)

var intPredicates = newEnumTable[IntPredicate, C.LLVMIntPredicate]("int predicate",
	entry[C.LLVMIntPredicate]{"eq", C.LLVMIntEQ},
	entry[C.LLVMIntPredicate]{"ne", C.LLVMIntNE},
	entry[C.LLVMIntPredicate]{"ugt", C.LLVMIntUGT},
	entry[C.LLVMIntPredicate]{"uge", C.LLVMIntUGE},
	entry[C.LLVMIntPredicate]{"ult", C.LLVMIntULT},
	entry[C.LLVMIntPredicate]{"ule", C.LLVMIntULE},
	entry[C.LLVMIntPredicate]{"sgt", C.LLVMIntSGT},
	entry[C.LLVMIntPredicate]{"sge", C.LLVMIntSGE},
	entry[C.LLVMIntPredicate]{"slt", C.LLVMIntSLT},
	entry[C.LLVMIntPredicate]{"sle", C.LLVMIntSLE},
)

func (p IntPredicate) String() string {
	return intPredicates.str(p)
}

// IntPredicate returns the predicate of an `icmp` instruction.
func (v Value) IntPredicate() IntPredicate {
	if op, ok := v.Opcode(); !ok || op != ICmpOpcode {
		panic("llvm: value is not an icmp")
	}

	return intPredicates.fromNative(C.LLVMGetICmpPredicate(v.c))
}

// RealPredicate represents the predicate of an `fcmp` instruction.
type RealPredicate int

// Enumeration of different real predicates.
const (
	RealFalse RealPredicate = iota
	RealOEQ
	RealOGT
	RealOGE
	RealOLT
	RealOLE
	RealONE
	RealORD
	RealUNO
	RealUEQ
	RealUGT
	RealUGE
	RealULT
	RealULE
	RealUNE
	RealTrue
)

var realPredicates = newEnumTable[RealPredicate, C.LLVMRealPredicate]("real predicate",
	entry[C.LLVMRealPredicate]{"false", C.LLVMRealPredicateFalse},
	entry[C.LLVMRealPredicate]{"oeq", C.LLVMRealOEQ},
	entry[C.LLVMRealPredicate]{"ogt", C.LLVMRealOGT},
	entry[C.LLVMRealPredicate]{"oge", C.LLVMRealOGE},
	entry[C.LLVMRealPredicate]{"olt", C.LLVMRealOLT},
	entry[C.LLVMRealPredicate]{"ole", C.LLVMRealOLE},
	entry[C.LLVMRealPredicate]{"one", C.LLVMRealONE},
	entry[C.LLVMRealPredicate]{"ord", C.LLVMRealORD},
	entry[C.LLVMRealPredicate]{"uno", C.LLVMRealUNO},
	entry[C.LLVMRealPredicate]{"ueq", C.LLVMRealUEQ},
	entry[C.LLVMRealPredicate]{"ugt", C.LLVMRealUGT},
	entry[C.LLVMRealPredicate]{"uge", C.LLVMRealUGE},
	entry[C.LLVMRealPredicate]{"ult", C.LLVMRealULT},
	entry[C.LLVMRealPredicate]{"ule", C.LLVMRealULE},
	entry[C.LLVMRealPredicate]{"une", C.LLVMRealUNE},
	entry[C.LLVMRealPredicate]{"true", C.LLVMRealPredicateTrue},
)

func (p RealPredicate) String() string {
	return realPredicates.str(p)
}

// RealPredicate returns the predicate of an `fcmp` instruction.
func (v Value) RealPredicate() RealPredicate {
	if op, ok := v.Opcode(); !ok || op != FCmpOpcode {
		panic("llvm: value is not an fcmp")
	}

	return realPredicates.fromNative(C.LLVMGetFCmpPredicate(v.c))
}
