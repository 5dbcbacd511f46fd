package llvm

/*
#include "llvm-c/Core.h"
*/
import "C"

// BuildAdd builds an `add` instruction.
func (b *Builder) BuildAdd(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildAdd(b.c, lhs.c, rhs.c, noName))
}

// BuildNSWAdd builds an `add nsw` instruction.
func (b *Builder) BuildNSWAdd(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNSWAdd(b.c, lhs.c, rhs.c, noName))
}

// BuildNUWAdd builds an `add nuw` instruction.
func (b *Builder) BuildNUWAdd(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNUWAdd(b.c, lhs.c, rhs.c, noName))
}

// BuildFAdd builds an `fadd` instruction.
func (b *Builder) BuildFAdd(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFAdd(b.c, lhs.c, rhs.c, noName))
}

// BuildSub builds a `sub` instruction.
func (b *Builder) BuildSub(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildSub(b.c, lhs.c, rhs.c, noName))
}

// BuildNSWSub builds a `sub nsw` instruction.
func (b *Builder) BuildNSWSub(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNSWSub(b.c, lhs.c, rhs.c, noName))
}

// BuildNUWSub builds a `sub nuw` instruction.
func (b *Builder) BuildNUWSub(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNUWSub(b.c, lhs.c, rhs.c, noName))
}

// BuildFSub builds an `fsub` instruction.
func (b *Builder) BuildFSub(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFSub(b.c, lhs.c, rhs.c, noName))
}

// BuildMul builds a `mul` instruction.
func (b *Builder) BuildMul(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildMul(b.c, lhs.c, rhs.c, noName))
}

// BuildNSWMul builds a `mul nsw` instruction.
func (b *Builder) BuildNSWMul(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNSWMul(b.c, lhs.c, rhs.c, noName))
}

// BuildNUWMul builds a `mul nuw` instruction.
func (b *Builder) BuildNUWMul(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildNUWMul(b.c, lhs.c, rhs.c, noName))
}

// BuildFMul builds an `fmul` instruction.
func (b *Builder) BuildFMul(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFMul(b.c, lhs.c, rhs.c, noName))
}

// BuildUDiv builds an `udiv` instruction.
func (b *Builder) BuildUDiv(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildUDiv(b.c, lhs.c, rhs.c, noName))
}

// BuildSDiv builds a `sdiv` instruction.
func (b *Builder) BuildSDiv(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildSDiv(b.c, lhs.c, rhs.c, noName))
}

// BuildExactUDiv builds an `udiv exact` instruction.
func (b *Builder) BuildExactUDiv(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildExactUDiv(b.c, lhs.c, rhs.c, noName))
}

// BuildExactSDiv builds a `sdiv exact` instruction.
func (b *Builder) BuildExactSDiv(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildExactSDiv(b.c, lhs.c, rhs.c, noName))
}

// BuildFDiv builds an `fdiv` instruction.
func (b *Builder) BuildFDiv(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFDiv(b.c, lhs.c, rhs.c, noName))
}

// BuildURem builds an `urem` instruction.
func (b *Builder) BuildURem(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildURem(b.c, lhs.c, rhs.c, noName))
}

// BuildSRem builds a `srem` instruction.
func (b *Builder) BuildSRem(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildSRem(b.c, lhs.c, rhs.c, noName))
}

// BuildFRem builds an `frem` instruction.
func (b *Builder) BuildFRem(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFRem(b.c, lhs.c, rhs.c, noName))
}

// BuildShl builds a `shl` instruction.
func (b *Builder) BuildShl(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildShl(b.c, lhs.c, rhs.c, noName))
}

// BuildLShr builds a `lshr` instruction.
func (b *Builder) BuildLShr(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildLShr(b.c, lhs.c, rhs.c, noName))
}

// BuildAShr builds an `ashr` instruction.
func (b *Builder) BuildAShr(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildAShr(b.c, lhs.c, rhs.c, noName))
}

// BuildAnd builds an `and` instruction.
func (b *Builder) BuildAnd(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildAnd(b.c, lhs.c, rhs.c, noName))
}

// BuildOr builds an `or` instruction.
func (b *Builder) BuildOr(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildOr(b.c, lhs.c, rhs.c, noName))
}

// BuildXor builds a `xor` instruction.
func (b *Builder) BuildXor(lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildXor(b.c, lhs.c, rhs.c, noName))
}

// -----------------------------------------------------------------------------

// BuildNeg builds a negation: `sub 0, v`.
func (b *Builder) BuildNeg(v Value) Value {
	b.ready(v)
	return b.emit(C.LLVMBuildNeg(b.c, v.c, noName))
}

// BuildNSWNeg builds a negation: `sub nsw 0, v`.
func (b *Builder) BuildNSWNeg(v Value) Value {
	b.ready(v)
	return b.emit(C.LLVMBuildNSWNeg(b.c, v.c, noName))
}

// BuildFNeg builds an `fneg` instruction.
func (b *Builder) BuildFNeg(v Value) Value {
	b.ready(v)
	return b.emit(C.LLVMBuildFNeg(b.c, v.c, noName))
}

// BuildNot builds a bitwise complement: `xor v, -1`.
func (b *Builder) BuildNot(v Value) Value {
	b.ready(v)
	return b.emit(C.LLVMBuildNot(b.c, v.c, noName))
}

// -----------------------------------------------------------------------------

// BuildICmp builds an `icmp` instruction.
func (b *Builder) BuildICmp(pred IntPredicate, lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildICmp(b.c, intPredicates.native(pred), lhs.c, rhs.c, noName))
}

// BuildFCmp builds an `fcmp` instruction.
func (b *Builder) BuildFCmp(pred RealPredicate, lhs, rhs Value) Value {
	b.ready(lhs, rhs)
	return b.emit(C.LLVMBuildFCmp(b.c, realPredicates.native(pred), lhs.c, rhs.c, noName))
}
