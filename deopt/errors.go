package deopt

import (
	"errors"

	"github.com/cortenjs/corten/errs"
)

// Sentinel errors for the deopt package. Callers MUST use errors.Is to
// branch on semantics; FATAL sentinels are wrapped with
// github.com/pkg/errors before they reach a caller, so errors.Is must
// be used rather than direct equality.
var (
	// ErrUnknownFunction indicates Deoptimize or ProcessPending addressed a
	// FunctionID the Manager has no entry for (or whose entry is RETIRED).
	ErrUnknownFunction = errors.New("deopt: unknown function")

	// ErrUnknownBailoutPoint indicates a registered function has no
	// Metadata for the requested bailout point index.
	ErrUnknownBailoutPoint = errors.New("deopt: unknown bailout point")

	// ErrFrameSizeMismatch indicates a FrameShape's Locals count did not
	// match its DeclaredLocals. FATAL: the optimizer's metadata disagrees
	// with the interpreter's own function layout.
	ErrFrameSizeMismatch = errors.New("deopt: frame size does not match declared locals")

	// ErrUnreachableShape indicates an escaped object's shape is not
	// reachable in the live shape tree. FATAL.
	ErrUnreachableShape = errors.New("deopt: escaped object shape is not reachable")

	// ErrMissingLocation indicates a ValueLocation could not be resolved:
	// an out-of-range register/stack index, a reference to an escaped
	// object not present in the materialized table, or a location of
	// unrecognized kind. FATAL.
	ErrMissingLocation = errors.New("deopt: value location could not be resolved")
)

func init() {
	errs.Register(ErrUnknownFunction, errs.Fatal)
	errs.Register(ErrUnknownBailoutPoint, errs.Fatal)
	errs.Register(ErrFrameSizeMismatch, errs.Fatal)
	errs.Register(ErrUnreachableShape, errs.Fatal)
	errs.Register(ErrMissingLocation, errs.Fatal)
}
