package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"fortio.org/safecast"

	"llkit/util"
)

// lifetime tracks whether a native handle, and everything derived from it, may
// still be used.  Lifetimes form a tree rooted at a context: disposing a node
// ends the lifetime of its whole subtree.
type lifetime struct {
	// kind names the object that owns this node.  It is used in panic messages.
	kind string

	parent *lifetime
	root   *lifetime
	ended  bool

	// children holds the nodes of native objects nested inside this one,
	// keyed by their handle.
	children map[unsafe.Pointer]*lifetime
}

// newRoot creates a lifetime with no parent.
func newRoot(kind string) *lifetime {
	l := &lifetime{kind: kind}
	l.root = l
	return l
}

// child creates a new lifetime nested inside l.
func (l *lifetime) child(kind string) *lifetime {
	return &lifetime{kind: kind, parent: l, root: l.root}
}

// nested returns the node of the native object h nested inside l.  A new node
// is made if h was never seen or its previous node has ended: LLVM may reuse
// the address of a deleted object.
func (l *lifetime) nested(h unsafe.Pointer, kind string) *lifetime {
	l.check()

	if n, ok := l.children[h]; ok && !n.ended {
		return n
	}

	if l.children == nil {
		l.children = make(map[unsafe.Pointer]*lifetime)
	}

	n := l.child(kind)
	l.children[h] = n
	return n
}

// alive reports whether l and all of its ancestors are still alive.
func (l *lifetime) alive() bool {
	if l == nil {
		return false
	}

	for n := l; n != nil; n = n.parent {
		if n.ended {
			return false
		}
	}

	return true
}

// check panics if l or any of its ancestors has ended.  The outermost ended
// node is the one reported.
func (l *lifetime) check() {
	if l == nil {
		panic("llvm: use of uninitialized handle")
	}

	var dead *lifetime
	for n := l; n != nil; n = n.parent {
		if n.ended {
			dead = n
		}
	}

	if dead != nil {
		panic("llvm: use of disposed " + dead.kind)
	}
}

// end marks l as ended.  Ending an already ended lifetime panics.
func (l *lifetime) end() {
	l.check()
	l.ended = true
}

// sameRoot panics if other does not belong to the same context tree as l.
func (l *lifetime) sameRoot(other *lifetime) {
	other.check()

	if other.root != l.root {
		panic("llvm: value from a different context")
	}
}

// -----------------------------------------------------------------------------

// ownedObject is an LLVM object whose disposal is the responsibility of its
// owning context.
type ownedObject interface {
	// dispose frees the native resources of the object.
	dispose()

	// alive reports whether the object has not been disposed yet.
	alive() bool
}

// -----------------------------------------------------------------------------

// Iterator represents an iterator of LLVM objects.  This is needed because many
// LLVM C APIs don't expose a way to access elements by index but do allow you
// to iterate over them.  The pattern for using iterators is as follows:
//
//	for it := v.Items(); it.Next(); {
//		item := it.Item()
//		..
//	}
type Iterator[T any] interface {
	// Item returns the current item the iterator is positioned over if it
	// exists.  If the item does not exist, the return value is invalid.
	Item() T

	// Next moves the iterator forward one element if an element exists. It
	// returns whether or not it was able to move the iterator forward. Next
	// should be called to get the first element.
	Next() bool
}

// -----------------------------------------------------------------------------

// noName is the empty name passed to LLVM for unnamed instructions.  It is
// never freed.
var noName = C.CString("")

// mustHandle panics if LLVM handed back a null handle for an object of kind.
// Every wrapper constructor goes through it so that a live wrapper never holds
// a null handle.
func mustHandle(p unsafe.Pointer, kind string) {
	if p == nil {
		panic("llvm: null " + kind + " handle")
	}
}

func mustContext(c C.LLVMContextRef) C.LLVMContextRef {
	mustHandle(unsafe.Pointer(c), "context")
	return c
}

func mustModule(m C.LLVMModuleRef) C.LLVMModuleRef {
	mustHandle(unsafe.Pointer(m), "module")
	return m
}

func mustBuilder(b C.LLVMBuilderRef) C.LLVMBuilderRef {
	mustHandle(unsafe.Pointer(b), "builder")
	return b
}

func mustType(t C.LLVMTypeRef) C.LLVMTypeRef {
	mustHandle(unsafe.Pointer(t), "type")
	return t
}

func mustValue(v C.LLVMValueRef) C.LLVMValueRef {
	mustHandle(unsafe.Pointer(v), "value")
	return v
}

func mustBlock(bb C.LLVMBasicBlockRef) C.LLVMBasicBlockRef {
	mustHandle(unsafe.Pointer(bb), "basic block")
	return bb
}

// takeMessage converts a message allocated by LLVM into a Go string and
// disposes of the native buffer.  The buffer must not be used afterwards.
func takeMessage(msg *C.char) string {
	if msg == nil {
		return ""
	}

	defer C.LLVMDisposeMessage(msg)
	return C.GoString(msg)
}

// llvmBool converts a boolean value to an LLVMBool.
func llvmBool(v bool) C.LLVMBool {
	if v {
		return 1
	}

	return 0
}

// cuint converts a Go integer to a C unsigned int, panicking if it does not
// fit.
func cuint[N int | uint](n N) C.uint {
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Sprintf("llvm: %v out of range: %s", n, err))
	}

	return C.uint(u)
}

// typeRefs converts types into an array that can be passed to LLVM.  A nil
// pointer is returned for an empty list.
func typeRefs(types []Type) (*C.LLVMTypeRef, C.uint) {
	if len(types) == 0 {
		return nil, 0
	}

	refs := util.Map(types, func(t Type) C.LLVMTypeRef { return t.c })
	return &refs[0], cuint(len(refs))
}

// valueRefs converts values into an array that can be passed to LLVM.
func valueRefs(values []Value) (*C.LLVMValueRef, C.uint) {
	if len(values) == 0 {
		return nil, 0
	}

	refs := util.Map(values, func(v Value) C.LLVMValueRef { return v.c })
	return &refs[0], cuint(len(refs))
}
