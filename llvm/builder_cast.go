package llvm

/*
#include "llvm-c/Core.h"
*/
import "C"

// BuildTrunc builds a `trunc` instruction converting src to dest.
func (b *Builder) BuildTrunc(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildTrunc(b.c, src.c, dest.c, noName))
}

// BuildZExt builds a `zext` instruction converting src to dest.
func (b *Builder) BuildZExt(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildZExt(b.c, src.c, dest.c, noName))
}

// BuildSExt builds a `sext` instruction converting src to dest.
func (b *Builder) BuildSExt(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildSExt(b.c, src.c, dest.c, noName))
}

// BuildFPToUI builds an `fptoui` instruction converting src to dest.
func (b *Builder) BuildFPToUI(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildFPToUI(b.c, src.c, dest.c, noName))
}

// BuildFPToSI builds an `fptosi` instruction converting src to dest.
func (b *Builder) BuildFPToSI(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildFPToSI(b.c, src.c, dest.c, noName))
}

// BuildUIToFP builds an `uitofp` instruction converting src to dest.
func (b *Builder) BuildUIToFP(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildUIToFP(b.c, src.c, dest.c, noName))
}

// BuildSIToFP builds a `sitofp` instruction converting src to dest.
func (b *Builder) BuildSIToFP(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildSIToFP(b.c, src.c, dest.c, noName))
}

// BuildFPTrunc builds an `fptrunc` instruction converting src to dest.
func (b *Builder) BuildFPTrunc(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildFPTrunc(b.c, src.c, dest.c, noName))
}

// BuildFPExt builds an `fpext` instruction converting src to dest.
func (b *Builder) BuildFPExt(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildFPExt(b.c, src.c, dest.c, noName))
}

// BuildPtrToInt builds a `ptrtoint` instruction converting src to dest.
func (b *Builder) BuildPtrToInt(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildPtrToInt(b.c, src.c, dest.c, noName))
}

// BuildIntToPtr builds an `inttoptr` instruction converting src to dest.
func (b *Builder) BuildIntToPtr(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildIntToPtr(b.c, src.c, dest.c, noName))
}

// BuildBitCast builds a `bitcast` instruction converting src to dest.
func (b *Builder) BuildBitCast(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildBitCast(b.c, src.c, dest.c, noName))
}

// BuildAddrSpaceCast builds an `addrspacecast` instruction converting src to dest.
func (b *Builder) BuildAddrSpaceCast(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildAddrSpaceCast(b.c, src.c, dest.c, noName))
}

// BuildFPCast builds whichever of `fpext`, `fptrunc` or `bitcast` converts the
// floating point value src to dest.
func (b *Builder) BuildFPCast(src Value, dest Type) Value {
	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildFPCast(b.c, src.c, dest.c, noName))
}

// BuildCast builds the conversion instruction identified by op.  op must be
// one of the cast opcodes.
func (b *Builder) BuildCast(op Opcode, src Value, dest Type) Value {
	if !op.IsCast() {
		panic("llvm: " + op.String() + " is not a cast")
	}

	b.ready(src)
	b.readyTypes(dest)
	return b.emit(C.LLVMBuildCast(b.c, opcodes.native(op), src.c, dest.c, noName))
}
