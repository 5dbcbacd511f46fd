package llvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFunc declares a function named name in a fresh module and positions a
// builder at the end of its entry block.
type testFunc struct {
	ctx   *Context
	mod   *Module
	b     *Builder
	fn    Value
	entry BasicBlock
}

func newTestFunc(t *testing.T, name string, fnType func(*Context) Type) *testFunc {
	t.Helper()

	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	b := ctx.NewBuilder()

	fn := mod.AddFunction(name, fnType(ctx))
	entry := ctx.AppendBasicBlock(fn, "entry")
	b.PositionAtEnd(entry)

	return &testFunc{ctx: ctx, mod: mod, b: b, fn: fn, entry: entry}
}

func voidFunc(ctx *Context) Type {
	return ctx.FunctionType(ctx.VoidType(), nil, false)
}

func binaryI32Func(ctx *Context) Type {
	i32 := ctx.Int32Type()
	return ctx.FunctionType(i32, []Type{i32, i32}, false)
}

func TestBuilder_MainReturnsVoid(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)

	ret := tf.b.BuildRetVoid()
	assert.True(t, ret.IsTerminator())

	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))
	assert.NoError(t, tf.mod.Verify())

	tf.b.Dispose()
	tf.mod.Dispose()
	tf.ctx.Dispose()
}

func TestBuilder_AddParams(t *testing.T) {
	tf := newTestFunc(t, "add", binaryI32Func)

	sum := tf.b.BuildAdd(tf.fn.Param(0), tf.fn.Param(1))
	tf.b.BuildRet(sum)

	assert.True(t, sum.IsInstruction())
	op, ok := sum.Opcode()
	require.True(t, ok)
	assert.Equal(t, AddOpcode, op)
	assert.True(t, sum.Type().Equal(tf.ctx.Int32Type()))
	assert.True(t, sum.Parent().Equal(tf.entry))

	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))
}

func TestBuilder_AddConstantsFolds(t *testing.T) {
	tf := newTestFunc(t, "answer", func(ctx *Context) Type {
		return ctx.FunctionType(ctx.Int32Type(), nil, false)
	})

	i32 := tf.ctx.Int32Type()
	sum := tf.b.BuildAdd(tf.b.ConstInt(i32, 40, false), tf.b.ConstInt(i32, 2, false))

	assert.True(t, sum.IsConstant())
	assert.False(t, sum.IsInstruction())
	assert.Equal(t, uint64(42), sum.ZExtValue())

	_, hasInstrs := tf.entry.First()
	assert.False(t, hasInstrs, "folded constants are not inserted")
}

func TestBasicBlock_Terminator(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)

	_, ok := tf.entry.Terminator()
	assert.False(t, ok)

	ret := tf.b.BuildRetVoid()

	term, ok := tf.entry.Terminator()
	require.True(t, ok)
	assert.True(t, term.Equal(ret))
	assert.Equal(t, "entry", tf.entry.Name())
	assert.True(t, tf.entry.Parent().Equal(tf.fn))
}

func TestBuilder_Unpositioned(t *testing.T) {
	ctx := newTestContext(t)
	b := ctx.NewBuilder()

	_, ok := b.InsertBlock()
	assert.False(t, ok)

	assert.PanicsWithValue(t, "llvm: builder is not positioned", func() {
		b.BuildRetVoid()
	})
}

func TestBuilder_PositionReplacesCursor(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)
	other := tf.ctx.AppendBasicBlock(tf.fn, "other")

	bb, ok := tf.b.InsertBlock()
	require.True(t, ok)
	assert.True(t, bb.Equal(tf.entry))

	tf.b.PositionAtEnd(other)
	bb, _ = tf.b.InsertBlock()
	assert.True(t, bb.Equal(other))

	tf.b.ClearPosition()
	_, ok = tf.b.InsertBlock()
	assert.False(t, ok)

	tf.b.PositionAtStart(tf.entry)
	bb, _ = tf.b.InsertBlock()
	assert.True(t, bb.Equal(tf.entry))
}

func TestBuilder_PositionBefore(t *testing.T) {
	tf := newTestFunc(t, "main", voidFunc)

	ret := tf.b.BuildRetVoid()
	tf.b.PositionBefore(ret)

	slot := tf.b.BuildAlloca(tf.ctx.Int32Type(), "slot")
	assert.Equal(t, "slot", slot.Name())

	first, ok := tf.entry.First()
	require.True(t, ok)
	assert.True(t, first.Equal(slot))

	last, ok := tf.entry.Last()
	require.True(t, ok)
	assert.True(t, last.Equal(ret))

	tf.b.Position(tf.entry, slot)
	tf.b.BuildAlloca(tf.ctx.Int8Type(), "")

	var ops []Opcode
	for it := tf.entry.Instructions(); it.Next(); {
		op, _ := it.Item().Opcode()
		ops = append(ops, op)
	}

	assert.Equal(t, []Opcode{AllocaOpcode, AllocaOpcode, RetOpcode}, ops)
	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))
}

func TestBuilder_MemoryAndCasts(t *testing.T) {
	tf := newTestFunc(t, "widen", func(ctx *Context) Type {
		return ctx.FunctionType(ctx.Int64Type(), []Type{ctx.Int32Type()}, false)
	})

	i32, i64 := tf.ctx.Int32Type(), tf.ctx.Int64Type()

	slot := tf.b.BuildAlloca(i32, "x")
	tf.b.BuildStore(tf.fn.Param(0), slot)
	loaded := tf.b.BuildLoad(i32, slot)
	wide := tf.b.BuildSExt(loaded, i64)
	same := tf.b.BuildCast(ZExtOpcode, loaded, i64)
	tf.b.BuildRet(tf.b.BuildOr(wide, same))

	op, _ := same.Opcode()
	assert.Equal(t, ZExtOpcode, op)
	assert.True(t, slot.Type().IsOpaquePointer())
	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))

	assert.Panics(t, func() {
		tf.b.BuildCast(AddOpcode, loaded, i64)
	})
}

func TestBuilder_BranchesAndPhi(t *testing.T) {
	tf := newTestFunc(t, "max", binaryI32Func)

	lhs, rhs := tf.fn.Param(0), tf.fn.Param(1)
	thenBB := tf.ctx.AppendBasicBlock(tf.fn, "then")
	elseBB := tf.ctx.AppendBasicBlock(tf.fn, "else")
	exitBB := tf.ctx.AppendBasicBlock(tf.fn, "exit")

	cond := tf.b.BuildICmp(IntSGT, lhs, rhs)
	assert.Equal(t, IntSGT, cond.IntPredicate())
	tf.b.BuildCondBr(cond, thenBB, elseBB)

	tf.b.PositionAtEnd(thenBB)
	tf.b.BuildBr(exitBB)
	tf.b.PositionAtEnd(elseBB)
	tf.b.BuildBr(exitBB)

	tf.b.PositionAtEnd(exitBB)
	phi := tf.b.BuildPhi(tf.ctx.Int32Type(), "result")
	phi.AddIncoming([]Value{lhs, rhs}, []BasicBlock{thenBB, elseBB})
	tf.b.BuildRet(phi)

	assert.Equal(t, 2, phi.NumIncoming())
	assert.Equal(t, 4, tf.fn.NumBlocks())
	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))

	var names []string
	for it := tf.fn.Blocks(); it.Next(); {
		names = append(names, it.Item().Name())
	}
	assert.Equal(t, []string{"entry", "then", "else", "exit"}, names)

	assert.Panics(t, func() {
		phi.AddIncoming([]Value{lhs}, nil)
	})
}

func TestBuilder_Call(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	b := ctx.NewBuilder()

	i32 := ctx.Int32Type()
	calleeType := binaryI32Func(ctx)
	callee := mod.AddFunction("add", calleeType)

	logType := ctx.FunctionType(ctx.VoidType(), []Type{i32}, false)
	logFn := mod.AddFunction("log", logType)

	main := mod.AddFunction("main", ctx.FunctionType(i32, nil, false))
	b.PositionAtEnd(ctx.AppendBasicBlock(main, "entry"))

	one := ctx.ConstInt(i32, 1, false)
	sum := b.BuildCall(calleeType, callee, []Value{one, one}, "sum")
	logged := b.BuildCall(logType, logFn, []Value{sum}, "ignored")
	b.BuildRet(sum)

	assert.Equal(t, "sum", sum.Name())
	assert.Equal(t, "", logged.Name())
	assert.Equal(t, 2, sum.NumArgs())
	assert.True(t, main.VerifyFunction(ReturnStatusAction))
}

func TestBuilder_FloatFamily(t *testing.T) {
	tf := newTestFunc(t, "lerp", func(ctx *Context) Type {
		f64 := ctx.DoubleType()
		return ctx.FunctionType(f64, []Type{f64, f64, f64}, false)
	})

	a, bv, s := tf.fn.Param(0), tf.fn.Param(1), tf.fn.Param(2)
	diff := tf.b.BuildFSub(bv, a)
	scaled := tf.b.BuildFMul(diff, s)
	res := tf.b.BuildFAdd(a, scaled)
	neg := tf.b.BuildFNeg(res)
	cmp := tf.b.BuildFCmp(RealOLT, neg, res)
	tf.b.BuildRet(tf.b.BuildSelect(cmp, res, neg))

	assert.Equal(t, RealOLT, cmp.RealPredicate())
	assert.True(t, tf.fn.VerifyFunction(ReturnStatusAction))
}

func TestBuilder_MalformedOperandsCaughtByVerifier(t *testing.T) {
	tf := newTestFunc(t, "bad", func(ctx *Context) Type {
		return ctx.FunctionType(ctx.Int32Type(), nil, false)
	})

	// A function returning i32 that returns nothing is only rejected by the
	// verifier.
	tf.b.BuildRetVoid()

	assert.False(t, tf.fn.VerifyFunction(ReturnStatusAction))
	assert.ErrorIs(t, tf.mod.Verify(), ErrInvalidModule)
}
