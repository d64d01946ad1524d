package deopt

import (
	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
	"github.com/google/uuid"
)

// FunctionID identifies one registration of optimized code. A function
// re-optimized after being retired registers under a new FunctionID.
type FunctionID uuid.UUID

// NewFunctionID returns a fresh, randomly generated FunctionID.
func NewFunctionID() FunctionID { return FunctionID(uuid.New()) }

func (id FunctionID) String() string { return uuid.UUID(id).String() }

// ObjectID identifies one escaped-object description within a single
// bailout point's Metadata. It is scoped to that Metadata, not global:
// two different bailout points may reuse the same ObjectID values for
// unrelated objects.
type ObjectID uuid.UUID

// NewObjectID returns a fresh, randomly generated ObjectID.
func NewObjectID() ObjectID { return ObjectID(uuid.New()) }

func (id ObjectID) String() string { return uuid.UUID(id).String() }

// BailoutReason is the closed set of reasons optimized code gives up on
// its speculative assumptions.
type BailoutReason int

const (
	GuardFailure BailoutReason = iota
	TypeMismatch
	Overflow
	AssumptionInvalidated
	UncommonPath
)

func (r BailoutReason) String() string {
	names := [...]string{"GUARD_FAILURE", "TYPE_MISMATCH", "OVERFLOW", "ASSUMPTION_INVALIDATED", "UNCOMMON_PATH"}
	if int(r) < len(names) {
		return names[r]
	}

	return "UNKNOWN_REASON"
}

// Mode selects whether a deoptimization happens synchronously (Eager)
// or is deferred to the next safe point (Lazy).
type Mode int

const (
	Eager Mode = iota
	Lazy
)

func (m Mode) String() string {
	if m == Lazy {
		return "LAZY"
	}

	return "EAGER"
}

// locationKind is the closed set of places a live interpreter value can
// live in an optimized frame.
type locationKind int

const (
	locRegister locationKind = iota
	locStack
	locConstant
	locMaterializedObject
)

// ValueLocation is a closed sum type describing where one interpreter
// value lives in an optimized frame: a register, a stack slot, an
// inline constant, or a reference to a materialized (escaped) object.
// Construct one with Register, Stack, Constant, or MaterializedRef;
// never build the zero value directly.
type ValueLocation struct {
	kind        locationKind
	register    int
	stackOffset int
	constant    value.Value
	objectRef   ObjectID
}

// Register describes a value held live in optimized-frame register id.
func Register(id int) ValueLocation { return ValueLocation{kind: locRegister, register: id} }

// Stack describes a value held live on the optimized frame's operand
// stack at offset.
func Stack(offset int) ValueLocation { return ValueLocation{kind: locStack, stackOffset: offset} }

// Constant describes a value known at compile time, carried inline.
func Constant(v value.Value) ValueLocation { return ValueLocation{kind: locConstant, constant: v} }

// MaterializedRef describes a value that is itself an escaped object,
// identified by id within the same Metadata's EscapedObjects.
func MaterializedRef(id ObjectID) ValueLocation {
	return ValueLocation{kind: locMaterializedObject, objectRef: id}
}

// FrameShape describes one interpreter frame to be reconstructed: its
// declared local-variable count (for validation), the locations its
// live locals occupy in the optimized frame, the locations its live
// operand-stack entries occupy, and, for an outer (inlined) frame, the
// bytecode offset execution resumes at once the inlined call returns.
type FrameShape struct {
	DeclaredLocals int
	Locals         []ValueLocation
	OperandStack   []ValueLocation
	ReturnOffset   int
}

// EscapedObject describes one scalar-replaced object that must be
// re-materialized: the shape it was allocated with, and a value
// location per own-property slot, in slot order.
type EscapedObject struct {
	ID    ObjectID
	Shape shape.Shape
	Slots []ValueLocation
}

// Metadata is the per-bailout-point contract an optimizing compiler
// emits and the deopt manager consumes: which frames exist, in what
// shape, and which objects had escaped by the time execution reached
// this point.
type Metadata struct {
	BytecodeOffset int
	Frame          FrameShape      // the innermost (bailing-out) frame
	InlinedFrames  []FrameShape    // outer frames, ordered outermost-first
	EscapedObjects []EscapedObject
}

// JITState is a snapshot of one optimized frame's register file and
// operand stack at the moment of bailout.
type JITState struct {
	Registers []value.Value
	Stack     []value.Value
}

// InterpreterFrame is one reconstructed interpreter activation record.
type InterpreterFrame struct {
	InstructionPointer int
	Locals             []value.Value
	OperandStack       []value.Value
	Caller             *InterpreterFrame
}

// MaterializedObject is the result of resolving one EscapedObject: a
// live value.Value identity (ValueID) plus its filled-in own-property
// slots, in slot order.
type MaterializedObject struct {
	ID      ObjectID
	ValueID value.ObjectID
	Shape   shape.Shape
	Slots   []value.Value
}

// FunctionState is the deopt manager's per-function lifecycle state.
type FunctionState int

const (
	Fresh FunctionState = iota
	Registered
	Invalidated
	Retired
)

func (s FunctionState) String() string {
	names := [...]string{"FRESH", "REGISTERED", "INVALIDATED", "RETIRED"}
	if int(s) < len(names) {
		return names[s]
	}

	return "UNKNOWN_STATE"
}

// HotDeopt is one (function, bailout point, reason) triple's observed
// trip count, as reported by Manager.HotDeopts. Reason is part of the
// identity: the same point deopting for two different reasons is two
// distinct entries.
type HotDeopt struct {
	FunctionID FunctionID
	PointIndex int
	Reason     BailoutReason
	Count      int
}

// ManagerStats summarizes a Manager's function population and pending
// queue, for diagnostics.
type ManagerStats struct {
	Fresh        int
	Registered   int
	Invalidated  int
	Retired      int
	PendingCount int
}
