package deopt

import (
	"testing"

	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEagerDeoptReturnsFrameWithMetadataOffset(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree)
	fn := NewFunctionID()

	meta := &Metadata{
		BytecodeOffset: 42,
		Frame: FrameShape{
			DeclaredLocals: 1,
			Locals:         []ValueLocation{Register(3)},
		},
	}
	mgr.Register(fn, map[int]*Metadata{0: meta})

	state := &JITState{Registers: []value.Value{3: value.Num(3.14)}}
	frames, err := mgr.Deoptimize(fn, 0, GuardFailure, Eager, state)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	assert.Equal(t, 42, frames[0].InstructionPointer)
	assert.Equal(t, value.Num(3.14), frames[0].Locals[0])

	stats := mgr.Stats()
	assert.Equal(t, 1, stats.Retired)
	assert.Equal(t, 0, stats.Registered)
}

func TestLazyDeoptBatchingPreservesScheduleOrder(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree)

	fnA, fnB := NewFunctionID(), NewFunctionID()
	metaA := &Metadata{BytecodeOffset: 1, Frame: FrameShape{DeclaredLocals: 1, Locals: []ValueLocation{Constant(value.Int(1))}}}
	metaB := &Metadata{BytecodeOffset: 2, Frame: FrameShape{DeclaredLocals: 1, Locals: []ValueLocation{Constant(value.Int(2))}}}
	mgr.Register(fnA, map[int]*Metadata{0: metaA})
	mgr.Register(fnB, map[int]*Metadata{0: metaB})

	_, err := mgr.Deoptimize(fnA, 0, AssumptionInvalidated, Lazy, &JITState{})
	require.NoError(t, err)
	_, err = mgr.Deoptimize(fnB, 0, AssumptionInvalidated, Lazy, &JITState{})
	require.NoError(t, err)

	statsBefore := mgr.Stats()
	assert.Equal(t, 2, statsBefore.Invalidated)
	assert.Equal(t, 2, statsBefore.PendingCount)

	results, err := mgr.ProcessPending()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, value.Int(1), results[0][0].Locals[0])
	assert.Equal(t, value.Int(2), results[1][0].Locals[0])

	statsAfter := mgr.Stats()
	assert.Equal(t, 2, statsAfter.Retired)
	assert.Equal(t, 0, statsAfter.PendingCount)
}

func TestDeoptimizeUnknownFunction(t *testing.T) {
	mgr := NewManager(shape.NewTree())
	_, err := mgr.Deoptimize(NewFunctionID(), 0, GuardFailure, Eager, &JITState{})
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestDeoptimizeUnknownBailoutPoint(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree)
	fn := NewFunctionID()
	mgr.Register(fn, map[int]*Metadata{0: {}})

	_, err := mgr.Deoptimize(fn, 7, GuardFailure, Eager, &JITState{})
	assert.ErrorIs(t, err, ErrUnknownBailoutPoint)
}

func TestRetiredFunctionCannotReenterOptimizedCode(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree)
	fn := NewFunctionID()
	mgr.Register(fn, map[int]*Metadata{0: {}})

	_, err := mgr.Deoptimize(fn, 0, GuardFailure, Eager, &JITState{})
	require.NoError(t, err)

	_, err = mgr.Deoptimize(fn, 0, GuardFailure, Eager, &JITState{})
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestFrameSizeMismatchIsFatal(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree)
	fn := NewFunctionID()
	meta := &Metadata{Frame: FrameShape{DeclaredLocals: 2, Locals: []ValueLocation{Register(0)}}}
	mgr.Register(fn, map[int]*Metadata{0: meta})

	_, err := mgr.Deoptimize(fn, 0, GuardFailure, Eager, &JITState{Registers: []value.Value{value.Int(1)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFrameSizeMismatch)
}

func TestCyclicEscapedObjectsMaterializeWithoutDeadlock(t *testing.T) {
	tree := shape.NewTree()
	s, err := tree.Child(tree.Root(), "next", shape.DefaultAttrs)
	require.NoError(t, err)

	idA, idB := NewObjectID(), NewObjectID()
	objects := []EscapedObject{
		{ID: idA, Shape: s, Slots: []ValueLocation{MaterializedRef(idB)}},
		{ID: idB, Shape: s, Slots: []ValueLocation{MaterializedRef(idA)}},
	}

	counter := uint32(0)
	next := func() value.ObjectID { counter++; return value.ObjectID(counter) }

	heap, err := MaterializeEscaped(tree, &JITState{}, objects, next)
	require.NoError(t, err)
	require.Len(t, heap, 2)

	assert.Equal(t, value.Obj(heap[idB].ValueID), heap[idA].Slots[0])
	assert.Equal(t, value.Obj(heap[idA].ValueID), heap[idB].Slots[0])
}

func TestInlinedFramesChainOuterToInner(t *testing.T) {
	tree := shape.NewTree()
	meta := &Metadata{
		BytecodeOffset: 99,
		InlinedFrames: []FrameShape{
			{DeclaredLocals: 0, ReturnOffset: 10},
		},
		Frame: FrameShape{DeclaredLocals: 0},
	}

	counter := uint32(0)
	next := func() value.ObjectID { counter++; return value.ObjectID(counter) }

	frames, err := Reconstruct(tree, &JITState{}, meta, next)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, 10, frames[0].InstructionPointer)
	assert.Nil(t, frames[0].Caller)
	assert.Equal(t, 99, frames[1].InstructionPointer)
	assert.Same(t, frames[0], frames[1].Caller)
}

func TestHotDeoptsBoundedAndOrdered(t *testing.T) {
	set := newHotDeoptSet(2)
	fn := NewFunctionID()

	set.record(hotKey{fn: fn, point: 0})
	set.record(hotKey{fn: fn, point: 0})
	set.record(hotKey{fn: fn, point: 1})
	set.record(hotKey{fn: fn, point: 2}) // evicts the coldest (point 1, count 1)

	top := set.topK(2)
	require.Len(t, top, 2)
	assert.Equal(t, 0, top[0].PointIndex)
	assert.Equal(t, 2, top[0].Count)
}

func TestHotDeoptsDistinguishReasonsAtSamePoint(t *testing.T) {
	set := newHotDeoptSet(4)
	fn := NewFunctionID()

	set.record(hotKey{fn: fn, point: 0, reason: TypeMismatch})
	set.record(hotKey{fn: fn, point: 0, reason: TypeMismatch})
	set.record(hotKey{fn: fn, point: 0, reason: Overflow})

	top := set.topK(4)
	require.Len(t, top, 2)
	assert.Equal(t, 0, top[0].PointIndex)
	assert.Equal(t, TypeMismatch, top[0].Reason)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, 0, top[1].PointIndex)
	assert.Equal(t, Overflow, top[1].Reason)
	assert.Equal(t, 1, top[1].Count)
}

func TestManagerHotDeoptsReportsReasonFromDeoptimize(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree, WithHotDeoptCapacity(4))
	fn := NewFunctionID()
	meta := &Metadata{Frame: FrameShape{DeclaredLocals: 0}}

	mgr.Register(fn, map[int]*Metadata{0: meta})
	_, err := mgr.Deoptimize(fn, 0, TypeMismatch, Eager, &JITState{})
	require.NoError(t, err)

	mgr.Register(fn, map[int]*Metadata{0: meta})
	_, err = mgr.Deoptimize(fn, 0, Overflow, Eager, &JITState{})
	require.NoError(t, err)

	top := mgr.HotDeopts(4)
	require.Len(t, top, 2)
	reasons := map[BailoutReason]int{top[0].Reason: top[0].Count, top[1].Reason: top[1].Count}
	assert.Equal(t, 1, reasons[TypeMismatch])
	assert.Equal(t, 1, reasons[Overflow])
}

func TestManagerHotDeoptsReflectsDeoptimizeCalls(t *testing.T) {
	tree := shape.NewTree()
	mgr := NewManager(tree, WithHotDeoptCapacity(4))
	fn := NewFunctionID()
	meta := &Metadata{Frame: FrameShape{DeclaredLocals: 0}}
	mgr.Register(fn, map[int]*Metadata{0: meta})

	for i := 0; i < 3; i++ {
		mgr.Register(fn, map[int]*Metadata{0: meta})
		_, err := mgr.Deoptimize(fn, 0, UncommonPath, Eager, &JITState{})
		require.NoError(t, err)
	}

	top := mgr.HotDeopts(1)
	require.Len(t, top, 1)
	assert.Equal(t, 3, top[0].Count)
}
