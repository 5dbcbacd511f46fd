package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
#include "llvm-c/Analysis.h"
#include "llvm-c/BitWriter.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Module represents an LLVM module.
type Module struct {
	c    C.LLVMModuleRef
	ctx  *Context
	life *lifetime
}

// NewModule creates a new module with the given name in the context.
func (c *Context) NewModule(name string) *Module {
	c.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	m := &Module{
		c:    mustModule(C.LLVMModuleCreateWithNameInContext(cname, c.c)),
		ctx:  c,
		life: c.life.child("module"),
	}

	c.takeOwnership(m)
	return m
}

// Dispose disposes of the module along with all its functions.
func (m *Module) Dispose() {
	m.life.check()
	m.dispose()
}

func (m *Module) dispose() {
	C.LLVMDisposeModule(m.c)
	m.life.end()
}

func (m *Module) alive() bool {
	return m.life.alive()
}

// function wraps a function handle of this module.  Each function gets its own
// lifetime so that deleting it invalidates its blocks and instructions.
func (m *Module) function(fn C.LLVMValueRef) Value {
	mustValue(fn)
	return Value{c: fn, life: m.life.nested(unsafe.Pointer(fn), "function")}
}

// global wraps a global value of this module.  Globals other than functions
// live as long as the module.
func (m *Module) global(v C.LLVMValueRef) Value {
	if C.LLVMIsAFunction(v) != nil {
		return m.function(v)
	}

	return Value{c: v, life: m.life}
}

// -----------------------------------------------------------------------------

// Name returns the name of the module.
func (m *Module) Name() string {
	m.life.check()

	var strlen C.size_t
	str := C.LLVMGetModuleIdentifier(m.c, &strlen)
	return C.GoStringN(str, C.int(strlen))
}

// SetName sets the name of the module.
func (m *Module) SetName(name string) {
	m.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.LLVMSetModuleIdentifier(m.c, cname, C.size_t(len(name)))
}

// SourceFileName returns the source file name of the module.
func (m *Module) SourceFileName() string {
	m.life.check()

	var strlen C.size_t
	cname := C.LLVMGetSourceFileName(m.c, &strlen)
	return C.GoStringN(cname, C.int(strlen))
}

// SetSourceFileName sets the source file name of the module to name.
func (m *Module) SetSourceFileName(name string) {
	m.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.LLVMSetSourceFileName(m.c, cname, C.size_t(len(name)))
}

// DataLayout returns the data layout string of the module.
func (m *Module) DataLayout() string {
	m.life.check()
	return C.GoString(C.LLVMGetDataLayoutStr(m.c))
}

// SetDataLayout sets the data layout string of the module.
func (m *Module) SetDataLayout(layout string) {
	m.life.check()

	clayout := C.CString(layout)
	defer C.free(unsafe.Pointer(clayout))
	C.LLVMSetDataLayout(m.c, clayout)
}

// SetTargetData sets the data layout of the module from td.
func (m *Module) SetTargetData(td *TargetData) {
	m.life.check()
	td.life.check()
	C.LLVMSetModuleDataLayout(m.c, td.c)
}

// Target returns the target triple of the module.
func (m *Module) Target() string {
	m.life.check()
	return C.GoString(C.LLVMGetTarget(m.c))
}

// SetTarget sets the target triple of the module.
func (m *Module) SetTarget(triple string) {
	m.life.check()

	ctriple := C.CString(triple)
	defer C.free(unsafe.Pointer(ctriple))
	C.LLVMSetTarget(m.c, ctriple)
}

// -----------------------------------------------------------------------------

// AddFunction adds a new function with signature fnType to the module.
func (m *Module) AddFunction(name string, fnType Type) Value {
	m.life.check()
	m.life.sameRoot(fnType.life)

	if fnType.Kind() != FunctionTypeKind {
		panic("llvm: type is not a function type")
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return m.function(C.LLVMAddFunction(m.c, cname, fnType.c))
}

// GetFunction returns the function in the module named name.
func (m *Module) GetFunction(name string) (Value, bool) {
	m.life.check()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	fn := C.LLVMGetNamedFunction(m.c, cname)
	if fn == nil {
		return Value{}, false
	}

	return m.function(fn), true
}

// funcIter is an iterator over the functions of a module.
type funcIter struct {
	m          *Module
	curr, next C.LLVMValueRef
}

func (it *funcIter) Item() Value {
	return it.m.function(it.curr)
}

func (it *funcIter) Next() bool {
	it.m.life.check()

	it.curr = it.next
	if it.curr != nil {
		it.next = C.LLVMGetNextFunction(it.curr)
	}

	return it.curr != nil
}

// Functions returns an iterator over the functions of the module.
func (m *Module) Functions() Iterator[Value] {
	m.life.check()
	return &funcIter{m: m, next: C.LLVMGetFirstFunction(m.c)}
}

// -----------------------------------------------------------------------------

// Verify verifies that the module is well-formed.
func (m *Module) Verify() error {
	m.life.check()

	var cmsg *C.char
	failed := C.LLVMVerifyModule(m.c, C.LLVMReturnStatusAction, &cmsg) == 1

	msg := takeMessage(cmsg)
	if failed {
		return fmt.Errorf("%w: %s", ErrInvalidModule, msg)
	}

	return nil
}

// String returns the textual IR of the module.
func (m *Module) String() string {
	m.life.check()
	return takeMessage(C.LLVMPrintModuleToString(m.c))
}

// Dump prints the textual IR of the module to standard error.
func (m *Module) Dump() {
	m.life.check()
	C.LLVMDumpModule(m.c)
}

// WriteIRToFile writes the textual IR of the module to a file.
func (m *Module) WriteIRToFile(path string) error {
	m.life.check()

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cmsg *C.char
	if C.LLVMPrintModuleToFile(m.c, cpath, &cmsg) == 1 {
		return fmt.Errorf("%w: %s", ErrWriteIR, takeMessage(cmsg))
	}

	return nil
}

// WriteBitcodeToFile writes the module as bitcode to path and returns whether
// it succeeded.
func (m *Module) WriteBitcodeToFile(path string) bool {
	m.life.check()

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	return C.LLVMWriteBitcodeToFile(m.c, cpath) == 0
}

// Bitcode returns the module serialized as bitcode.
func (m *Module) Bitcode() []byte {
	m.life.check()

	buf := C.LLVMWriteBitcodeToMemoryBuffer(m.c)
	defer C.LLVMDisposeMemoryBuffer(buf)

	return C.GoBytes(
		unsafe.Pointer(C.LLVMGetBufferStart(buf)),
		C.int(C.LLVMGetBufferSize(buf)),
	)
}

// -----------------------------------------------------------------------------

// EmitOptions configures the lowering of a module to machine code.  The zero
// value emits an object file for the host with LLVM's defaults.
type EmitOptions struct {
	// Triple is the target triple.  The host triple is used if it is empty.
	Triple string

	CPU      string
	Features string

	OptLevel  CodeGenOptLevel
	Reloc     RelocMode
	CodeModel CodeModel
	FileType  CodeGenFileType
}

// machine creates the target machine described by opts.
func (opts EmitOptions) machine() (*TargetMachine, error) {
	InitializeAll()

	triple := opts.Triple
	if triple == "" {
		triple = DefaultTriple()
	}

	target, err := GetTargetFromTriple(triple)
	if err != nil {
		return nil, err
	}

	return NewTargetMachine(
		target,
		triple,
		opts.CPU,
		opts.Features,
		opts.OptLevel,
		opts.Reloc,
		opts.CodeModel,
	), nil
}

// Emit lowers the module as configured by opts and writes the output to path.
func (m *Module) Emit(opts EmitOptions, path string) error {
	m.life.check()

	tm, err := opts.machine()
	if err != nil {
		return err
	}
	defer tm.Dispose()

	return tm.EmitToFile(m, path, opts.FileType)
}

// EmitToMemory lowers the module as configured by opts and returns the output.
func (m *Module) EmitToMemory(opts EmitOptions) ([]byte, error) {
	m.life.check()

	tm, err := opts.machine()
	if err != nil {
		return nil, err
	}
	defer tm.Dispose()

	return tm.EmitToMemory(m, opts.FileType)
}

// WriteObjectFile writes the module as an object file to path.  The module is
// compiled for triple or for the host if triple is nil, using the default
// optimization level and code model and position independent relocations.
func (m *Module) WriteObjectFile(triple *string, path string) error {
	opts := EmitOptions{
		OptLevel:  CodeGenLevelDefault,
		Reloc:     RelocPIC,
		CodeModel: CodeModelDefault,
		FileType:  ObjectFile,
	}

	if triple != nil {
		opts.Triple = *triple
	}

	return m.Emit(opts, path)
}
