package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// TypeKind identifies a specific kind of LLVM type.
type TypeKind int

// Enumeration of different possible type kinds.
const (
	VoidTypeKind TypeKind = iota
	HalfTypeKind
	FloatTypeKind
	DoubleTypeKind
	X86FP80TypeKind
	FP128TypeKind
	PPCFP128TypeKind
	LabelTypeKind
	IntegerTypeKind
	FunctionTypeKind
	StructTypeKind
	ArrayTypeKind
	PointerTypeKind
	VectorTypeKind
	MetadataTypeKind
	X86MMXTypeKind
	TokenTypeKind
	ScalableVectorTypeKind
	BFloatTypeKind
	X86AMXTypeKind
	TargetExtTypeKind
)

// The native values are spelled out because some of the enumerators have been
// dropped from newer headers while their values remain reserved.
var typeKinds = newEnumTable[TypeKind, C.LLVMTypeKind]("type kind",
	entry[C.LLVMTypeKind]{"void", 0},
	entry[C.LLVMTypeKind]{"half", 1},
	entry[C.LLVMTypeKind]{"float", 2},
	entry[C.LLVMTypeKind]{"double", 3},
	entry[C.LLVMTypeKind]{"x86_fp80", 4},
	entry[C.LLVMTypeKind]{"fp128", 5},
	entry[C.LLVMTypeKind]{"ppc_fp128", 6},
	entry[C.LLVMTypeKind]{"label", 7},
	entry[C.LLVMTypeKind]{"integer", 8},
	entry[C.LLVMTypeKind]{"function", 9},
	entry[C.LLVMTypeKind]{"struct", 10},
	entry[C.LLVMTypeKind]{"array", 11},
	entry[C.LLVMTypeKind]{"pointer", 12},
	entry[C.LLVMTypeKind]{"vector", 13},
	entry[C.LLVMTypeKind]{"metadata", 14},
	entry[C.LLVMTypeKind]{"x86_mmx", 15},
	entry[C.LLVMTypeKind]{"token", 16},
	entry[C.LLVMTypeKind]{"scalable vector", 17},
	entry[C.LLVMTypeKind]{"bfloat", 18},
	entry[C.LLVMTypeKind]{"x86_amx", 19},
	entry[C.LLVMTypeKind]{"target extension", 20},
)

func (k TypeKind) String() string {
	return typeKinds.str(k)
}

// AddressSpace is the address space tag of a pointer type.  The named values
// follow the NVPTX numbering; any other value may be used as is.
type AddressSpace uint32

// Enumeration of common address spaces.
const (
	GenericAddrSpace AddressSpace = 0
	GlobalAddrSpace  AddressSpace = 1
	SharedAddrSpace  AddressSpace = 3
	ConstAddrSpace   AddressSpace = 4
	LocalAddrSpace   AddressSpace = 5
	ParamAddrSpace   AddressSpace = 101
)

// -----------------------------------------------------------------------------

// Type represents an LLVM type.  Types are uniqued by and owned by their
// context: they are never disposed on their own.
type Type struct {
	c    C.LLVMTypeRef
	life *lifetime
}

// Kind returns the type's type kind.
func (t Type) Kind() TypeKind {
	t.life.check()
	return typeKinds.fromNative(C.LLVMGetTypeKind(t.c))
}

// Sized returns whether or not the type is sized.
func (t Type) Sized() bool {
	t.life.check()
	return C.LLVMTypeIsSized(t.c) == 1
}

// Equal reports whether t and o are the same type.  Types are uniqued so this
// is handle identity.
func (t Type) Equal(o Type) bool {
	return t.c == o.c
}

// IsValid reports whether t refers to a type at all: the zero Type does not.
func (t Type) IsValid() bool {
	return t.c != nil
}

// String returns the textual IR of the type.
func (t Type) String() string {
	t.life.check()
	return takeMessage(C.LLVMPrintTypeToString(t.c))
}

// Dump prints the type to standard error.
func (t Type) Dump() {
	t.life.check()
	C.LLVMDumpType(t.c)
}

func (t Type) derived(c C.LLVMTypeRef) Type {
	return Type{c: mustType(c), life: t.life}
}

// -----------------------------------------------------------------------------
// Integer types.

// BitWidth returns the bit width of the integer type.
func (t Type) BitWidth() uint {
	t.life.check()
	return uint(C.LLVMGetIntTypeWidth(t.c))
}

// Int1Type returns the `i1` type in the context: the boolean type.
func (c *Context) Int1Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt1TypeInContext(c.c))
}

// Int8Type returns the `i8` type in the context.
func (c *Context) Int8Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt8TypeInContext(c.c))
}

// Int16Type returns the `i16` type in the context.
func (c *Context) Int16Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt16TypeInContext(c.c))
}

// Int32Type returns the `i32` type in the context.
func (c *Context) Int32Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt32TypeInContext(c.c))
}

// Int64Type returns the `i64` type in the context.
func (c *Context) Int64Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt64TypeInContext(c.c))
}

// Int128Type returns the `i128` type in the context.
func (c *Context) Int128Type() Type {
	c.life.check()
	return c.newType(C.LLVMInt128TypeInContext(c.c))
}

// MaxIntBits is the widest integer type LLVM supports.
const MaxIntBits = 1<<23 - 1

// IntType returns the integer type of the given bit width in the context.  The
// width must be between 1 and MaxIntBits.
func (c *Context) IntType(bits uint) Type {
	c.life.check()

	if bits == 0 || bits > MaxIntBits {
		panic(fmt.Sprintf("llvm: integer width %d out of range", bits))
	}

	return c.newType(C.LLVMIntTypeInContext(c.c, cuint(bits)))
}

// -----------------------------------------------------------------------------
// Floating point and other primitive types.

// BFloatType returns the 16-bit brain float type.
func (c *Context) BFloatType() Type {
	c.life.check()
	return c.newType(C.LLVMBFloatTypeInContext(c.c))
}

// HalfType returns the 16-bit IEEE float type.
func (c *Context) HalfType() Type {
	c.life.check()
	return c.newType(C.LLVMHalfTypeInContext(c.c))
}

// FloatType returns the 32-bit IEEE float type.
func (c *Context) FloatType() Type {
	c.life.check()
	return c.newType(C.LLVMFloatTypeInContext(c.c))
}

// DoubleType returns the 64-bit IEEE float type.
func (c *Context) DoubleType() Type {
	c.life.check()
	return c.newType(C.LLVMDoubleTypeInContext(c.c))
}

// X86FP80Type returns the 80-bit x87 extended precision type.
func (c *Context) X86FP80Type() Type {
	c.life.check()
	return c.newType(C.LLVMX86FP80TypeInContext(c.c))
}

// FP128Type returns the 128-bit IEEE float type.
func (c *Context) FP128Type() Type {
	c.life.check()
	return c.newType(C.LLVMFP128TypeInContext(c.c))
}

// PPCFP128Type returns the 128-bit PowerPC float type made of two doubles.
func (c *Context) PPCFP128Type() Type {
	c.life.check()
	return c.newType(C.LLVMPPCFP128TypeInContext(c.c))
}

// VoidType returns the `void` type.
func (c *Context) VoidType() Type {
	c.life.check()
	return c.newType(C.LLVMVoidTypeInContext(c.c))
}

// LabelType returns the `label` type.
func (c *Context) LabelType() Type {
	c.life.check()
	return c.newType(C.LLVMLabelTypeInContext(c.c))
}

// MetadataType returns the `metadata` type.
func (c *Context) MetadataType() Type {
	c.life.check()
	return c.newType(C.LLVMMetadataTypeInContext(c.c))
}

// TokenType returns the `token` type.
func (c *Context) TokenType() Type {
	c.life.check()
	return c.newType(C.LLVMTokenTypeInContext(c.c))
}

// -----------------------------------------------------------------------------
// Pointer types.

// PointerType returns the opaque pointer type in the given address space.
func (c *Context) PointerType(addrSpace AddressSpace) Type {
	c.life.check()
	return c.newType(C.LLVMPointerTypeInContext(c.c, C.uint(addrSpace)))
}

// AddrSpace returns the address space of the pointer type.
func (t Type) AddrSpace() AddressSpace {
	t.life.check()
	return AddressSpace(C.LLVMGetPointerAddressSpace(t.c))
}

// IsOpaquePointer returns whether the pointer type carries no element type.
func (t Type) IsOpaquePointer() bool {
	t.life.check()
	return C.LLVMPointerTypeIsOpaque(t.c) == 1
}

// -----------------------------------------------------------------------------
// Function types.

// FunctionType returns the function type with the given return and parameter
// types.
func (c *Context) FunctionType(returnType Type, paramTypes []Type, variadic bool) Type {
	c.ownType(returnType)
	for _, pt := range paramTypes {
		c.ownType(pt)
	}

	params, n := typeRefs(paramTypes)
	return c.newType(C.LLVMFunctionType(returnType.c, params, n, llvmBool(variadic)))
}

// IsVarArg returns whether or not the function type is variadic.
func (t Type) IsVarArg() bool {
	t.life.check()
	return C.LLVMIsFunctionVarArg(t.c) == 1
}

// ReturnType returns the return type of the function type.
func (t Type) ReturnType() Type {
	t.life.check()
	return t.derived(C.LLVMGetReturnType(t.c))
}

// NumParams returns the number of parameters of the function type.
func (t Type) NumParams() int {
	t.life.check()
	return int(C.LLVMCountParamTypes(t.c))
}

// Params returns the parameter types of the function type.
func (t Type) Params() []Type {
	numParams := t.NumParams()
	if numParams == 0 {
		return nil
	}

	paramArr := make([]C.LLVMTypeRef, numParams)
	C.LLVMGetParamTypes(t.c, &paramArr[0])

	params := make([]Type, numParams)
	for i, p := range paramArr {
		params[i] = t.derived(p)
	}

	return params
}

// -----------------------------------------------------------------------------
// Sequential types.

// ArrayType returns the array type of length elements of elemType.
func (c *Context) ArrayType(elemType Type, length uint64) Type {
	c.ownType(elemType)
	return c.newType(C.LLVMArrayType2(elemType.c, C.uint64_t(length)))
}

// VectorType returns the fixed vector type of count elements of elemType.
func (c *Context) VectorType(elemType Type, count uint) Type {
	c.ownType(elemType)
	return c.newType(C.LLVMVectorType(elemType.c, cuint(count)))
}

// ArrayLength returns the length of the array type.
func (t Type) ArrayLength() uint64 {
	t.life.check()
	return uint64(C.LLVMGetArrayLength2(t.c))
}

// ElemType returns the element type of an array or vector type.  Pointers are
// opaque and have no element type, nor do any other kinds of types.
func (t Type) ElemType() (Type, bool) {
	switch t.Kind() {
	case ArrayTypeKind, VectorTypeKind, ScalableVectorTypeKind:
		return t.derived(C.LLVMGetElementType(t.c)), true
	}

	return Type{}, false
}

// -----------------------------------------------------------------------------
// Struct types.

// StructType returns the literal (unnamed) struct type with the given fields.
func (c *Context) StructType(elemTypes []Type, packed bool) Type {
	for _, et := range elemTypes {
		c.ownType(et)
	}

	elems, n := typeRefs(elemTypes)
	return c.newType(C.LLVMStructTypeInContext(c.c, elems, n, llvmBool(packed)))
}

// NamedStructType creates a new named struct type.  The struct is opaque until
// its body is set with SetBody.
func (c *Context) NamedStructType(name string) Type {
	c.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return c.newType(C.LLVMStructCreateNamed(c.c, cname))
}

// SetBody sets the fields of an opaque named struct type.
func (t Type) SetBody(elemTypes []Type, packed bool) {
	t.life.check()
	for _, et := range elemTypes {
		t.life.sameRoot(et.life)
	}

	elems, n := typeRefs(elemTypes)
	C.LLVMStructSetBody(t.c, elems, n, llvmBool(packed))
}

// StructName returns the name of the struct type.  Literal structs have no
// name and return an empty string.
func (t Type) StructName() string {
	t.life.check()

	// The name is owned by the type.
	if cname := C.LLVMGetStructName(t.c); cname != nil {
		return C.GoString(cname)
	}

	return ""
}

// NumFields returns the number of fields of the struct type.
func (t Type) NumFields() int {
	t.life.check()
	return int(C.LLVMCountStructElementTypes(t.c))
}

// Fields returns the field types of the struct type in order.
func (t Type) Fields() []Type {
	n := t.NumFields()
	if n == 0 {
		return nil
	}

	fieldArr := make([]C.LLVMTypeRef, n)
	C.LLVMGetStructElementTypes(t.c, &fieldArr[0])

	fields := make([]Type, n)
	for i, f := range fieldArr {
		fields[i] = t.derived(f)
	}

	return fields
}

// Field returns the type of the struct field at ndx if it exists.
func (t Type) Field(ndx int) (Type, bool) {
	if ndx < 0 || ndx >= t.NumFields() {
		return Type{}, false
	}

	return t.derived(C.LLVMStructGetTypeAtIndex(t.c, cuint(ndx))), true
}

// IsPacked returns whether the struct type is packed.
func (t Type) IsPacked() bool {
	t.life.check()
	return C.LLVMIsPackedStruct(t.c) == 1
}

// IsOpaque returns whether the struct type has no body yet.
func (t Type) IsOpaque() bool {
	t.life.check()
	return C.LLVMIsOpaqueStruct(t.c) == 1
}

// IsLiteral returns whether the struct type is a literal (unnamed) struct.
func (t Type) IsLiteral() bool {
	t.life.check()
	return C.LLVMIsLiteralStruct(t.c) == 1
}
