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

// Attribute represents an LLVM attribute attached to a function, one of its
// parameters or its return value.
type Attribute struct {
	c    C.LLVMAttributeRef
	life *lifetime
}

// AttributeVariant indicates what kind of attribute we are dealing with.
type AttributeVariant int

// Enumeration of the different attribute variants.
const (
	EnumAttr AttributeVariant = iota
	TypeAttr
	StringAttr
)

// Variant returns the variant of the attribute.
func (a Attribute) Variant() AttributeVariant {
	a.life.check()

	switch {
	case C.LLVMIsEnumAttribute(a.c) == 1:
		return EnumAttr
	case C.LLVMIsTypeAttribute(a.c) == 1:
		return TypeAttr
	default:
		return StringAttr
	}
}

// attrKindForName looks up the enum kind of an attribute by its IR spelling:
// eg. `noinline` or `nounwind`.  Kind numbers vary between LLVM releases so
// they are never hard-coded.
func attrKindForName(name string) (C.uint, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	kind := C.LLVMGetEnumAttributeKindForName(cname, C.size_t(len(name)))
	if kind == 0 {
		return 0, fmt.Errorf("unknown attribute `%s`", name)
	}

	return kind, nil
}

// EnumAttribute creates a new enum attribute named name with value val.
func (c *Context) EnumAttribute(name string, val uint64) (Attribute, error) {
	c.life.check()

	kind, err := attrKindForName(name)
	if err != nil {
		return Attribute{}, err
	}

	return Attribute{
		c:    C.LLVMCreateEnumAttribute(c.c, kind, C.uint64_t(val)),
		life: c.life,
	}, nil
}

// TypeAttribute creates a new type attribute such as `sret` or `byval`.
func (c *Context) TypeAttribute(name string, typ Type) (Attribute, error) {
	c.ownType(typ)

	kind, err := attrKindForName(name)
	if err != nil {
		return Attribute{}, err
	}

	return Attribute{
		c:    C.LLVMCreateTypeAttribute(c.c, kind, typ.c),
		life: c.life,
	}, nil
}

// StringAttribute creates a new string attribute `"kind"="value"`.
func (c *Context) StringAttribute(kind, value string) Attribute {
	c.life.check()

	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))

	return Attribute{
		c:    C.LLVMCreateStringAttribute(c.c, ckind, cuint(len(kind)), cvalue, cuint(len(value))),
		life: c.life,
	}
}

// EnumValue returns the integer value of an enum attribute.
func (a Attribute) EnumValue() uint64 {
	a.life.check()
	return uint64(C.LLVMGetEnumAttributeValue(a.c))
}

// StringKind returns the kind of a string attribute.
func (a Attribute) StringKind() string {
	a.life.check()

	var strlen C.uint
	ckind := C.LLVMGetStringAttributeKind(a.c, &strlen)
	return C.GoStringN(ckind, C.int(strlen))
}

// StringValue returns the value of a string attribute.
func (a Attribute) StringValue() string {
	a.life.check()

	var strlen C.uint
	cvalue := C.LLVMGetStringAttributeValue(a.c, &strlen)
	return C.GoStringN(cvalue, C.int(strlen))
}

// -----------------------------------------------------------------------------

// AttributeSet is used to access the attributes at one position of a
// function: the function itself, its return value or one of its parameters.
type AttributeSet struct {
	fn   Value
	ndx  C.LLVMAttributeIndex
	call bool
}

// Attrs returns the attribute set of the function itself.
func (v Value) Attrs() AttributeSet {
	v.mustBeFunction()
	return AttributeSet{fn: v, ndx: C.LLVMAttributeFunctionIndex}
}

// ReturnAttrs returns the attribute set of the return value of the function.
func (v Value) ReturnAttrs() AttributeSet {
	v.mustBeFunction()
	return AttributeSet{fn: v, ndx: C.LLVMAttributeReturnIndex}
}

// ParamAttrs returns the attribute set of the parameter at ndx.
func (v Value) ParamAttrs(ndx int) AttributeSet {
	if ndx < 0 || ndx >= v.NumParams() {
		panic("llvm: parameter index out of bounds")
	}

	return AttributeSet{fn: v, ndx: C.LLVMAttributeIndex(ndx + 1)}
}

// CallAttrs returns the call site attribute set of a `call` instruction.
func (v Value) CallAttrs() AttributeSet {
	v.life.check()
	if C.LLVMIsACallInst(v.c) == nil {
		panic("llvm: value is not a call instruction")
	}

	return AttributeSet{fn: v, ndx: C.LLVMAttributeFunctionIndex, call: true}
}

// Len returns the number of attributes in the set.
func (as AttributeSet) Len() int {
	as.fn.life.check()

	if as.call {
		return int(C.LLVMGetCallSiteAttributeCount(as.fn.c, as.ndx))
	}

	return int(C.LLVMGetAttributeCountAtIndex(as.fn.c, as.ndx))
}

// Add adds attr to the set, replacing any attribute of the same kind.
func (as AttributeSet) Add(attr Attribute) {
	as.fn.life.check()
	as.fn.life.sameRoot(attr.life)

	if as.call {
		C.LLVMAddCallSiteAttribute(as.fn.c, as.ndx, attr.c)
	} else {
		C.LLVMAddAttributeAtIndex(as.fn.c, as.ndx, attr.c)
	}
}

// Get gets an enum or type attribute by its name.
func (as AttributeSet) Get(name string) (Attribute, bool) {
	as.fn.life.check()

	kind, err := attrKindForName(name)
	if err != nil {
		return Attribute{}, false
	}

	var attr C.LLVMAttributeRef
	if as.call {
		attr = C.LLVMGetCallSiteEnumAttribute(as.fn.c, as.ndx, kind)
	} else {
		attr = C.LLVMGetEnumAttributeAtIndex(as.fn.c, as.ndx, kind)
	}

	if attr == nil {
		return Attribute{}, false
	}

	return Attribute{c: attr, life: as.fn.life.root}, true
}

// GetString gets a string attribute by its kind.
func (as AttributeSet) GetString(kind string) (Attribute, bool) {
	as.fn.life.check()

	ckind := C.CString(kind)
	defer C.free(unsafe.Pointer(ckind))

	var attr C.LLVMAttributeRef
	if as.call {
		attr = C.LLVMGetCallSiteStringAttribute(as.fn.c, as.ndx, ckind, cuint(len(kind)))
	} else {
		attr = C.LLVMGetStringAttributeAtIndex(as.fn.c, as.ndx, ckind, cuint(len(kind)))
	}

	if attr == nil {
		return Attribute{}, false
	}

	return Attribute{c: attr, life: as.fn.life.root}, true
}

// Remove deletes an enum or type attribute by its name.
func (as AttributeSet) Remove(name string) {
	as.fn.life.check()

	kind, err := attrKindForName(name)
	if err != nil {
		return
	}

	if as.call {
		C.LLVMRemoveCallSiteEnumAttribute(as.fn.c, as.ndx, kind)
	} else {
		C.LLVMRemoveEnumAttributeAtIndex(as.fn.c, as.ndx, kind)
	}
}

// -----------------------------------------------------------------------------

// CallConv represents an LLVM calling convention.
type CallConv int

// Enumeration of the commonly used calling conventions.
const (
	CCallConv CallConv = iota
	FastCallConv
	ColdCallConv
	GHCCallConv
	PreserveMostCallConv
	PreserveAllCallConv
	SwiftCallConv
	X86StdcallCallConv
	X86FastcallCallConv
	X86VectorCallCallConv
	X8664SysVCallConv
	Win64CallConv
	ARMAAPCSCallConv
	ARMAAPCSVFPCallConv
)

var callConvs = newEnumTable[CallConv, C.LLVMCallConv]("calling convention",
	entry[C.LLVMCallConv]{"ccc", C.LLVMCCallConv},
	entry[C.LLVMCallConv]{"fastcc", C.LLVMFastCallConv},
	entry[C.LLVMCallConv]{"coldcc", C.LLVMColdCallConv},
	entry[C.LLVMCallConv]{"ghccc", C.LLVMGHCCallConv},
	entry[C.LLVMCallConv]{"preserve_mostcc", C.LLVMPreserveMostCallConv},
	entry[C.LLVMCallConv]{"preserve_allcc", C.LLVMPreserveAllCallConv},
	entry[C.LLVMCallConv]{"swiftcc", C.LLVMSwiftCallConv},
	entry[C.LLVMCallConv]{"x86_stdcallcc", C.LLVMX86StdcallCallConv},
	entry[C.LLVMCallConv]{"x86_fastcallcc", C.LLVMX86FastcallCallConv},
	entry[C.LLVMCallConv]{"x86_vectorcallcc", C.LLVMX86VectorCallCallConv},
	entry[C.LLVMCallConv]{"x86_64_sysvcc", C.LLVMX8664SysVCallConv},
	entry[C.LLVMCallConv]{"win64cc", C.LLVMWin64CallConv},
	entry[C.LLVMCallConv]{"arm_aapcscc", C.LLVMARMAAPCSCallConv},
	entry[C.LLVMCallConv]{"arm_aapcs_vfpcc", C.LLVMARMAAPCSVFPCallConv},
)

func (cc CallConv) String() string {
	return callConvs.str(cc)
}

// ParseCallConv finds a calling convention by its IR spelling.
func ParseCallConv(s string) (CallConv, error) {
	return callConvs.parse(s)
}

// CallConv returns the calling convention of a function or a `call`
// instruction.
func (v Value) CallConv() CallConv {
	v.life.check()

	if C.LLVMIsAFunction(v.c) != nil {
		return callConvs.fromNative(C.LLVMCallConv(C.LLVMGetFunctionCallConv(v.c)))
	}

	return callConvs.fromNative(C.LLVMCallConv(C.LLVMGetInstructionCallConv(v.c)))
}

// SetCallConv sets the calling convention of a function or a `call`
// instruction to cc.
func (v Value) SetCallConv(cc CallConv) {
	v.life.check()

	native := C.uint(callConvs.native(cc))
	if C.LLVMIsAFunction(v.c) != nil {
		C.LLVMSetFunctionCallConv(v.c, native)
	} else {
		C.LLVMSetInstructionCallConv(v.c, native)
	}
}
