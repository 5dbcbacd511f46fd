package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import "unsafe"

// Context represents an LLVM context: the root authority that uniques types
// and constants and from which modules and builders are created.
type Context struct {
	c    C.LLVMContextRef
	life *lifetime

	// The list of LLVM objects owned by this context.
	ownedObjects []ownedObject
}

// NewContext creates a new LLVM context.
func NewContext() *Context {
	return &Context{
		c:    mustContext(C.LLVMContextCreate()),
		life: newRoot("context"),
	}
}

// takeOwnership marks the given disposable LLVM object as being owned by this
// context: this context is responsible for its disposal if it is still alive
// when the context is disposed.
func (c *Context) takeOwnership(obj ownedObject) {
	c.ownedObjects = append(c.ownedObjects, obj)
}

// Dispose frees all the resources associated with this context: any owned
// object that is still alive (in reverse order of creation) and then the
// context itself.  Every type, value, basic block, module and builder derived
// from the context becomes unusable.
func (c *Context) Dispose() {
	c.life.check()

	for i := len(c.ownedObjects) - 1; i >= 0; i-- {
		if obj := c.ownedObjects[i]; obj.alive() {
			obj.dispose()
		}
	}
	c.ownedObjects = nil

	C.LLVMContextDispose(c.c)
	c.life.end()
}

// Alive reports whether the context has not been disposed.
func (c *Context) Alive() bool {
	return c.life.alive()
}

// ownType panics if t is not a live type of this context.
func (c *Context) ownType(t Type) {
	c.life.check()
	c.life.sameRoot(t.life)
}

// ownValue panics if v is not a live value of this context.
func (c *Context) ownValue(v Value) {
	c.life.check()
	c.life.sameRoot(v.life)
}

// module returns the live module of this context wrapping m.
func (c *Context) module(m C.LLVMModuleRef) *Module {
	for _, obj := range c.ownedObjects {
		if mod, ok := obj.(*Module); ok && mod.c == m && mod.alive() {
			return mod
		}
	}

	panic("llvm: global value of an unknown module")
}

// newType wraps a type handle returned by LLVM for this context.
func (c *Context) newType(t C.LLVMTypeRef) Type {
	return Type{c: mustType(t), life: c.life}
}

// -----------------------------------------------------------------------------

// AppendBasicBlock appends a new basic block named name to the body of fn.
func (c *Context) AppendBasicBlock(fn Value, name string) BasicBlock {
	c.ownValue(fn)
	fn.mustBeFunction()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return block(fn.life, C.LLVMAppendBasicBlockInContext(c.c, fn.c, cname))
}

// InsertBasicBlock inserts a new basic block named name before bb.
func (c *Context) InsertBasicBlock(bb BasicBlock, name string) BasicBlock {
	c.life.check()
	c.life.sameRoot(bb.life)

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return block(bb.life.parent, C.LLVMInsertBasicBlockInContext(c.c, bb.c, cname))
}
