package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
#include "llvm-c/Target.h"
#include "llvm-c/TargetMachine.h"

static void llkit_initialize_all(void) {
	LLVM_InitializeAllTargetInfos();
	LLVM_InitializeAllTargets();
	LLVM_InitializeAllTargetMCs();
	LLVM_InitializeAllAsmParsers();
	LLVM_InitializeAllAsmPrinters();
}
*/
import "C"

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"
)

var initOnce sync.Once

// InitializeAll registers every target LLVM was built with along with its
// target info, MC layer, assembly parser and assembly printer.  It may be
// called any number of times from any goroutine.
func InitializeAll() {
	initOnce.Do(func() {
		C.llkit_initialize_all()
	})
}

// DefaultTriple returns the target triple of the host system.
func DefaultTriple() string {
	return takeMessage(C.LLVMGetDefaultTargetTriple())
}

// NormalizeTriple returns the normalized form of triple.
func NormalizeTriple(triple string) string {
	ctriple := C.CString(triple)
	defer C.free(unsafe.Pointer(ctriple))

	return takeMessage(C.LLVMNormalizeTargetTriple(ctriple))
}

// HostCPUName returns the name of the host CPU.
func HostCPUName() string {
	return takeMessage(C.LLVMGetHostCPUName())
}

// HostCPUFeatures returns the feature string of the host CPU.
func HostCPUFeatures() string {
	return takeMessage(C.LLVMGetHostCPUFeatures())
}

// -----------------------------------------------------------------------------

// CodeGenOptLevel represents an LLVM code generation optimization level.
type CodeGenOptLevel int

// Enumeration of LLVM codegen optimization levels.
const (
	CodeGenLevelDefault CodeGenOptLevel = iota
	CodeGenLevelNone
	CodeGenLevelLess
	CodeGenLevelAggressive
)

var optLevels = newEnumTable[CodeGenOptLevel, C.LLVMCodeGenOptLevel]("optimization level",
	entry[C.LLVMCodeGenOptLevel]{"default", C.LLVMCodeGenLevelDefault},
	entry[C.LLVMCodeGenOptLevel]{"none", C.LLVMCodeGenLevelNone},
	entry[C.LLVMCodeGenOptLevel]{"less", C.LLVMCodeGenLevelLess},
	entry[C.LLVMCodeGenOptLevel]{"aggressive", C.LLVMCodeGenLevelAggressive},
)

func (l CodeGenOptLevel) String() string {
	return optLevels.str(l)
}

// ParseOptLevel finds an optimization level by name.  The compiler flag
// spellings `O0` through `O3` are also accepted.
func ParseOptLevel(s string) (CodeGenOptLevel, error) {
	switch strings.TrimPrefix(s, "-") {
	case "O0":
		return CodeGenLevelNone, nil
	case "O1":
		return CodeGenLevelLess, nil
	case "O2":
		return CodeGenLevelDefault, nil
	case "O3":
		return CodeGenLevelAggressive, nil
	}

	return optLevels.parse(s)
}

// RelocMode represents an LLVM relocation mode.
type RelocMode int

// Enumeration of LLVM relocation modes.
const (
	RelocDefault RelocMode = iota
	RelocStatic
	RelocPIC
	RelocDynamicNoPic
	RelocROPI
	RelocRWPI
	RelocROPIRWPI
)

var relocModes = newEnumTable[RelocMode, C.LLVMRelocMode]("relocation mode",
	entry[C.LLVMRelocMode]{"default", C.LLVMRelocDefault},
	entry[C.LLVMRelocMode]{"static", C.LLVMRelocStatic},
	entry[C.LLVMRelocMode]{"pic", C.LLVMRelocPIC},
	entry[C.LLVMRelocMode]{"dynamic-no-pic", C.LLVMRelocDynamicNoPic},
	entry[C.LLVMRelocMode]{"ropi", C.LLVMRelocROPI},
	entry[C.LLVMRelocMode]{"rwpi", C.LLVMRelocRWPI},
	entry[C.LLVMRelocMode]{"ropi-rwpi", C.LLVMRelocROPI_RWPI},
)

func (r RelocMode) String() string {
	return relocModes.str(r)
}

// ParseRelocMode finds a relocation mode by name.
func ParseRelocMode(s string) (RelocMode, error) {
	return relocModes.parse(s)
}

// CodeModel represents an LLVM code model.
type CodeModel int

// Enumeration of LLVM code models.
const (
	CodeModelDefault CodeModel = iota
	CodeModelJITDefault
	CodeModelTiny
	CodeModelSmall
	CodeModelKernel
	CodeModelMedium
	CodeModelLarge
)

var codeModels = newEnumTable[CodeModel, C.LLVMCodeModel]("code model",
	entry[C.LLVMCodeModel]{"default", C.LLVMCodeModelDefault},
	entry[C.LLVMCodeModel]{"jit-default", C.LLVMCodeModelJITDefault},
	entry[C.LLVMCodeModel]{"tiny", C.LLVMCodeModelTiny},
	entry[C.LLVMCodeModel]{"small", C.LLVMCodeModelSmall},
	entry[C.LLVMCodeModel]{"kernel", C.LLVMCodeModelKernel},
	entry[C.LLVMCodeModel]{"medium", C.LLVMCodeModelMedium},
	entry[C.LLVMCodeModel]{"large", C.LLVMCodeModelLarge},
)

func (m CodeModel) String() string {
	return codeModels.str(m)
}

// ParseCodeModel finds a code model by name.
func ParseCodeModel(s string) (CodeModel, error) {
	return codeModels.parse(s)
}

// CodeGenFileType represents a possible code generation output type.
type CodeGenFileType int

// Enumeration of LLVM codegen file types.
const (
	ObjectFile CodeGenFileType = iota
	AssemblyFile
)

var fileTypes = newEnumTable[CodeGenFileType, C.LLVMCodeGenFileType]("file type",
	entry[C.LLVMCodeGenFileType]{"object", C.LLVMObjectFile},
	entry[C.LLVMCodeGenFileType]{"assembly", C.LLVMAssemblyFile},
)

func (ft CodeGenFileType) String() string {
	return fileTypes.str(ft)
}

// ParseFileType finds an output file type by name: `obj` and `asm` are
// accepted as short forms.
func ParseFileType(s string) (CodeGenFileType, error) {
	switch s {
	case "obj":
		return ObjectFile, nil
	case "asm":
		return AssemblyFile, nil
	}

	return fileTypes.parse(s)
}

// ByteOrdering represents an LLVM byte ordering.
type ByteOrdering int

// Enumeration of LLVM byte orderings.
const (
	BigEndian ByteOrdering = iota
	LittleEndian
)

var byteOrders = newEnumTable[ByteOrdering, C.enum_LLVMByteOrdering]("byte ordering",
	entry[C.enum_LLVMByteOrdering]{"big-endian", C.LLVMBigEndian},
	entry[C.enum_LLVMByteOrdering]{"little-endian", C.LLVMLittleEndian},
)

func (o ByteOrdering) String() string {
	return byteOrders.str(o)
}

// -----------------------------------------------------------------------------

// Target represents an LLVM output target.  Targets are registered globally
// and are never disposed.
type Target struct {
	c C.LLVMTargetRef
}

// GetTargetFromName finds the target registered as name, eg. `x86-64`.
func GetTargetFromName(name string) (Target, error) {
	InitializeAll()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	target := C.LLVMGetTargetFromName(cname)
	if target == nil {
		return Target{}, fmt.Errorf("%w: no target named `%s`", ErrUnknownTarget, name)
	}

	return Target{c: target}, nil
}

// GetTargetFromTriple finds the target that can generate code for triple.
func GetTargetFromTriple(triple string) (Target, error) {
	InitializeAll()

	ctriple := C.CString(triple)
	defer C.free(unsafe.Pointer(ctriple))

	var (
		target C.LLVMTargetRef
		cmsg   *C.char
	)

	failed := C.LLVMGetTargetFromTriple(ctriple, &target, &cmsg) == 1
	msg := takeMessage(cmsg)

	if failed || target == nil {
		return Target{}, fmt.Errorf("%w: %s", ErrUnknownTarget, msg)
	}

	return Target{c: target}, nil
}

// targetIter is an iterator over the registered targets.
type targetIter struct {
	curr, next C.LLVMTargetRef
}

func (it *targetIter) Item() Target {
	return Target{c: it.curr}
}

func (it *targetIter) Next() bool {
	it.curr = it.next
	if it.curr != nil {
		it.next = C.LLVMGetNextTarget(it.curr)
	}

	return it.curr != nil
}

// Targets returns an iterator over all the registered targets.
func Targets() Iterator[Target] {
	InitializeAll()
	return &targetIter{next: C.LLVMGetFirstTarget()}
}

// Name returns the name of the target.
func (t Target) Name() string {
	return C.GoString(C.LLVMGetTargetName(t.c))
}

// Description returns the description of the target.
func (t Target) Description() string {
	return C.GoString(C.LLVMGetTargetDescription(t.c))
}

// HasJIT returns if the target has a JIT.
func (t Target) HasJIT() bool {
	return C.LLVMTargetHasJIT(t.c) == 1
}

// HasTargetMachine returns if the target has a target machine.
func (t Target) HasTargetMachine() bool {
	return C.LLVMTargetHasTargetMachine(t.c) == 1
}

// HasAsmBackend returns if the target has an assembly backend.
func (t Target) HasAsmBackend() bool {
	return C.LLVMTargetHasAsmBackend(t.c) == 1
}

// -----------------------------------------------------------------------------

// TargetMachine represents an LLVM target machine: used to generate output.
type TargetMachine struct {
	c    C.LLVMTargetMachineRef
	life *lifetime
}

// NewTargetMachine creates a new target machine for target.
func NewTargetMachine(
	target Target,
	triple, cpu, features string,
	level CodeGenOptLevel,
	reloc RelocMode,
	model CodeModel,
) *TargetMachine {
	if target.c == nil {
		panic("llvm: null target handle")
	}

	ctriple := C.CString(triple)
	defer C.free(unsafe.Pointer(ctriple))

	ccpu := C.CString(cpu)
	defer C.free(unsafe.Pointer(ccpu))

	cfeatures := C.CString(features)
	defer C.free(unsafe.Pointer(cfeatures))

	tm := C.LLVMCreateTargetMachine(
		target.c,
		ctriple,
		ccpu,
		cfeatures,
		optLevels.native(level),
		relocModes.native(reloc),
		codeModels.native(model),
	)
	mustHandle(unsafe.Pointer(tm), "target machine")

	return &TargetMachine{c: tm, life: newRoot("target machine")}
}

// Dispose disposes of the target machine.
func (tm *TargetMachine) Dispose() {
	tm.life.check()
	C.LLVMDisposeTargetMachine(tm.c)
	tm.life.end()
}

// Target returns the target of the target machine.
func (tm *TargetMachine) Target() Target {
	tm.life.check()
	return Target{c: C.LLVMGetTargetMachineTarget(tm.c)}
}

// Triple returns the target triple of the target machine.
func (tm *TargetMachine) Triple() string {
	tm.life.check()
	return takeMessage(C.LLVMGetTargetMachineTriple(tm.c))
}

// CPU returns the CPU of the target machine.
func (tm *TargetMachine) CPU() string {
	tm.life.check()
	return takeMessage(C.LLVMGetTargetMachineCPU(tm.c))
}

// Features returns the feature string of the target machine.
func (tm *TargetMachine) Features() string {
	tm.life.check()
	return takeMessage(C.LLVMGetTargetMachineFeatureString(tm.c))
}

// SetAsmVerbosity sets whether emitted assembly is commented.
func (tm *TargetMachine) SetAsmVerbosity(verbose bool) {
	tm.life.check()
	C.LLVMSetTargetMachineAsmVerbosity(tm.c, llvmBool(verbose))
}

// CreateDataLayout creates the data layout of the target machine.  The
// returned target data must be disposed by the caller.
func (tm *TargetMachine) CreateDataLayout() *TargetData {
	tm.life.check()
	return newTargetData(C.LLVMCreateTargetDataLayout(tm.c))
}

// EmitToFile lowers m to fileType and writes the output to path.
func (tm *TargetMachine) EmitToFile(m *Module, path string, fileType CodeGenFileType) error {
	tm.life.check()
	m.life.check()

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cmsg *C.char
	failed := C.LLVMTargetMachineEmitToFile(tm.c, m.c, cpath, fileTypes.native(fileType), &cmsg) == 1

	msg := takeMessage(cmsg)
	if failed {
		return fmt.Errorf("%w: %s", ErrEmit, msg)
	}

	return nil
}

// EmitToMemory lowers m to fileType and returns the output.
func (tm *TargetMachine) EmitToMemory(m *Module, fileType CodeGenFileType) ([]byte, error) {
	tm.life.check()
	m.life.check()

	var (
		cmsg *C.char
		buf  C.LLVMMemoryBufferRef
	)

	failed := C.LLVMTargetMachineEmitToMemoryBuffer(tm.c, m.c, fileTypes.native(fileType), &cmsg, &buf) == 1

	msg := takeMessage(cmsg)
	if failed {
		return nil, fmt.Errorf("%w: %s", ErrEmit, msg)
	}
	defer C.LLVMDisposeMemoryBuffer(buf)

	return C.GoBytes(
		unsafe.Pointer(C.LLVMGetBufferStart(buf)),
		C.int(C.LLVMGetBufferSize(buf)),
	), nil
}

// -----------------------------------------------------------------------------

// TargetData represents an LLVM target data layout.
type TargetData struct {
	c    C.LLVMTargetDataRef
	life *lifetime
}

func newTargetData(td C.LLVMTargetDataRef) *TargetData {
	mustHandle(unsafe.Pointer(td), "target data")
	return &TargetData{c: td, life: newRoot("target data")}
}

// NewTargetData creates a new target data from the data layout string layout.
func NewTargetData(layout string) *TargetData {
	clayout := C.CString(layout)
	defer C.free(unsafe.Pointer(clayout))

	return newTargetData(C.LLVMCreateTargetData(clayout))
}

// Dispose disposes of the target data.
func (td *TargetData) Dispose() {
	td.life.check()
	C.LLVMDisposeTargetData(td.c)
	td.life.end()
}

// StringRep returns the data layout string of the target data.
func (td *TargetData) StringRep() string {
	td.life.check()
	return takeMessage(C.LLVMCopyStringRepOfTargetData(td.c))
}

// ByteOrder returns the byte ordering of the target data.
func (td *TargetData) ByteOrder() ByteOrdering {
	td.life.check()
	return byteOrders.fromNative(C.LLVMByteOrder(td.c))
}

// PointerSize returns the pointer size in bytes of the target data.
func (td *TargetData) PointerSize() uint {
	td.life.check()
	return uint(C.LLVMPointerSize(td.c))
}

// BitSizeOf returns the size of typ in bits on the target.
func (td *TargetData) BitSizeOf(typ Type) uint64 {
	td.life.check()
	typ.life.check()
	return uint64(C.LLVMSizeOfTypeInBits(td.c, typ.c))
}

// StorageSizeOf returns the storage size of typ in bytes on the target: the
// maximum number of bytes that may be overwritten by storing typ.
func (td *TargetData) StorageSizeOf(typ Type) uint64 {
	td.life.check()
	typ.life.check()
	return uint64(C.LLVMStoreSizeOfType(td.c, typ.c))
}

// ABISizeOf returns the ABI size of typ in bytes on the target: the offset
// in bytes between successive objects of the typ, including alignment padding.
func (td *TargetData) ABISizeOf(typ Type) uint64 {
	td.life.check()
	typ.life.check()
	return uint64(C.LLVMABISizeOfType(td.c, typ.c))
}

// ABIAlignOf returns the minimum ABI-required alignment of typ on the target.
func (td *TargetData) ABIAlignOf(typ Type) uint {
	td.life.check()
	typ.life.check()
	return uint(C.LLVMABIAlignmentOfType(td.c, typ.c))
}

// PreferredAlignOf returns the preferred alignment of typ on the target.
func (td *TargetData) PreferredAlignOf(typ Type) uint {
	td.life.check()
	typ.life.check()
	return uint(C.LLVMPreferredAlignmentOfType(td.c, typ.c))
}

// IntPtrType returns the integer type the size of a pointer on td.
func (c *Context) IntPtrType(td *TargetData) Type {
	c.life.check()
	td.life.check()
	return c.newType(C.LLVMIntPtrTypeInContext(c.c, td.c))
}
