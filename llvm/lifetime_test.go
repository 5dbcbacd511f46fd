package llvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispose_DependencyOrder(t *testing.T) {
	ctx := NewContext()
	mod := ctx.NewModule("test")
	b := ctx.NewBuilder()

	fn := mod.AddFunction("main", voidFunc(ctx))
	b.PositionAtEnd(ctx.AppendBasicBlock(fn, "entry"))
	b.BuildRetVoid()

	assert.NotPanics(t, func() {
		b.Dispose()
		mod.Dispose()
		ctx.Dispose()
	})
	assert.False(t, ctx.Alive())
}

func TestDispose_Twice(t *testing.T) {
	ctx := NewContext()
	mod := ctx.NewModule("test")
	b := ctx.NewBuilder()

	b.Dispose()
	assert.PanicsWithValue(t, "llvm: use of disposed builder", b.Dispose)

	mod.Dispose()
	assert.PanicsWithValue(t, "llvm: use of disposed module", mod.Dispose)

	ctx.Dispose()
	assert.PanicsWithValue(t, "llvm: use of disposed context", ctx.Dispose)
}

func TestDispose_ContextDisposesLiveChildren(t *testing.T) {
	ctx := NewContext()
	mod := ctx.NewModule("test")
	b := ctx.NewBuilder()
	i32 := ctx.Int32Type()
	fn := mod.AddFunction("main", voidFunc(ctx))
	entry := ctx.AppendBasicBlock(fn, "entry")

	ctx.Dispose()

	tests := []struct {
		name string
		use  func()
	}{
		{"module", func() { mod.Name() }},
		{"builder", func() { b.PositionAtEnd(entry) }},
		{"type", func() { i32.Kind() }},
		{"function", func() { fn.NumParams() }},
		{"block", func() { entry.Name() }},
		{"new module", func() { ctx.NewModule("again") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "llvm: use of disposed context", tt.use)
		})
	}

	// Children were disposed by the context; disposing them again is a
	// second disposal.
	assert.Panics(t, mod.Dispose)
	assert.Panics(t, b.Dispose)
}

func TestDispose_ModuleInvalidatesFunctions(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	i32 := ctx.Int32Type()

	fn := mod.AddFunction("main", voidFunc(ctx))
	entry := ctx.AppendBasicBlock(fn, "entry")

	mod.Dispose()

	assert.PanicsWithValue(t, "llvm: use of disposed module", func() { fn.Name() })
	assert.PanicsWithValue(t, "llvm: use of disposed module", func() { entry.Terminator() })

	// Types belong to the context which is still alive.
	assert.Equal(t, IntegerTypeKind, i32.Kind())
}

func TestDeleteFunction_InvalidatesBody(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)
	ret := tf.b.BuildRetVoid()

	tf.fn.DeleteFunction()

	assert.PanicsWithValue(t, "llvm: use of disposed function", func() { tf.fn.Name() })
	assert.PanicsWithValue(t, "llvm: use of disposed function", func() { ret.Opcode() })
	assert.PanicsWithValue(t, "llvm: use of disposed function", func() { tf.b.BuildRetVoid() })

	_, ok := tf.mod.GetFunction("main")
	assert.False(t, ok)

	again := tf.mod.AddFunction("main", voidFunc(tf.ctx))
	assert.Equal(t, "main", again.Name())
}

func TestCrossContext_Panics(t *testing.T) {
	ctxA := newTestContext(t)
	ctxB := newTestContext(t)

	modA := ctxA.NewModule("a")
	bB := ctxB.NewBuilder()
	fnA := modA.AddFunction("main", voidFunc(ctxA))
	entryA := ctxA.AppendBasicBlock(fnA, "entry")

	const msg = "llvm: value from a different context"

	assert.PanicsWithValue(t, msg, func() { modA.AddFunction("f", voidFunc(ctxB)) })
	assert.PanicsWithValue(t, msg, func() { ctxB.ArrayType(ctxA.Int8Type(), 4) })
	assert.PanicsWithValue(t, msg, func() { ctxB.AppendBasicBlock(fnA, "x") })
	assert.PanicsWithValue(t, msg, func() { bB.PositionAtEnd(entryA) })
}

func TestZeroHandles_Panic(t *testing.T) {
	assert.PanicsWithValue(t, "llvm: use of uninitialized handle", func() { Type{}.Kind() })
	assert.PanicsWithValue(t, "llvm: use of uninitialized handle", func() { Value{}.Name() })
	assert.PanicsWithValue(t, "llvm: use of uninitialized handle", func() { BasicBlock{}.Name() })
}

func TestFunctions_Iterate(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")

	for _, name := range []string{"a", "b", "c"} {
		mod.AddFunction(name, voidFunc(ctx))
	}

	var names []string
	for it := mod.Functions(); it.Next(); {
		names = append(names, it.Item().Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	b, ok := mod.GetFunction("b")
	require.True(t, ok)
	assert.True(t, b.IsDeclaration())
	assert.True(t, b.FunctionType().Equal(voidFunc(ctx)))
}

func TestBasicBlockDelete_InvalidatesBlock(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)
	dead := tf.ctx.AppendBasicBlock(tf.fn, "dead")

	tf.b.PositionAtEnd(dead)
	ret := tf.b.BuildRetVoid()

	dead.Delete()

	const msg = "llvm: use of disposed basic block"

	assert.PanicsWithValue(t, msg, func() { dead.Name() })
	assert.PanicsWithValue(t, msg, func() { dead.Terminator() })
	assert.PanicsWithValue(t, msg, func() { ret.Opcode() })
	assert.PanicsWithValue(t, msg, func() { tf.b.BuildRetVoid() })
	assert.PanicsWithValue(t, msg, dead.Delete)

	// The rest of the function is untouched.
	assert.Equal(t, 1, tf.fn.NumBlocks())
	assert.Equal(t, "entry", tf.entry.Name())

	tf.b.PositionAtEnd(tf.entry)
	tf.b.BuildRetVoid()
	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))
}

func TestBasicBlock_SharedLifetime(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)

	entry, ok := tf.fn.EntryBlock()
	require.True(t, ok)

	// Every wrapper of the same block shares its lifetime.
	it := tf.fn.Blocks()
	require.True(t, it.Next())
	assert.Same(t, tf.entry.life, entry.life)
	assert.Same(t, tf.entry.life, it.Item().life)
	assert.Same(t, tf.fn.life, tf.entry.Parent().life)

	tf.entry.Delete()
	assert.PanicsWithValue(t, "llvm: use of disposed basic block", func() { entry.Name() })
	assert.Equal(t, "main", tf.fn.Name())
}

func TestBasicBlock_InsertAndMove(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)
	exit := tf.ctx.AppendBasicBlock(tf.fn, "exit")
	middle := tf.ctx.InsertBasicBlock(exit, "middle")

	blockNames := func() []string {
		var names []string
		for it := tf.fn.Blocks(); it.Next(); {
			names = append(names, it.Item().Name())
		}
		return names
	}

	assert.Equal(t, []string{"entry", "middle", "exit"}, blockNames())
	assert.True(t, middle.Parent().Equal(tf.fn))

	middle.MoveAfter(exit)
	assert.Equal(t, []string{"entry", "exit", "middle"}, blockNames())

	other := tf.mod.AddFunction("other", voidFunc(tf.ctx))
	otherEntry := tf.ctx.AppendBasicBlock(other, "entry")
	assert.PanicsWithValue(t, "llvm: blocks belong to different functions", func() { middle.MoveAfter(otherEntry) })
}

func TestBuilder_FoldedGlobalKeepsModuleLifetime(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)
	callee := tf.mod.AddFunction("callee", voidFunc(tf.ctx))

	// With opaque pointers a bitcast of a function to `ptr` is the function.
	alias := tf.b.BuildBitCast(callee, tf.ctx.PointerType(GenericAddrSpace))
	require.True(t, alias.Equal(callee))
	assert.Same(t, callee.life, alias.life)

	cond := tf.ctx.ConstInt(tf.ctx.Int1Type(), 1, false)
	picked := tf.b.BuildSelect(cond, tf.fn, callee)
	require.True(t, picked.Equal(tf.fn))
	assert.Same(t, tf.fn.life, picked.life)

	alias.DeleteFunction()
	assert.PanicsWithValue(t, "llvm: use of disposed function", func() { callee.Name() })

	// The context and module are unaffected.
	assert.True(t, tf.ctx.Alive())
	assert.Equal(t, "main", tf.fn.Name())

	tf.mod.Dispose()
	assert.PanicsWithValue(t, "llvm: use of disposed module", func() { picked.Name() })
}

func TestDeleteFunction_RequiresTrackedFunction(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)

	untracked := Value{c: tf.fn.c, life: tf.ctx.life}
	assert.PanicsWithValue(t, "llvm: function is not tracked by a module", untracked.DeleteFunction)
	assert.True(t, tf.ctx.Alive())
}
