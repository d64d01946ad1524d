package shape

import (
	"errors"

	"github.com/cortenjs/corten/errs"
)

// Sentinel errors for the shape package. Callers MUST use errors.Is to
// branch on semantics.
var (
	// ErrNilShape indicates a nil *Shape was passed where a live shape
	// was required.
	ErrNilShape = errors.New("shape: nil shape")

	// ErrForeignShape indicates a *Shape produced by one Tree was passed
	// to a different Tree's method.
	ErrForeignShape = errors.New("shape: shape does not belong to this tree")

	// ErrUnreachableShape indicates a shape was looked up that is not (or
	// is no longer) reachable from this tree's root: a fatal condition
	// during deopt materialization of an escaped object.
	ErrUnreachableShape = errors.New("shape: shape is not reachable in the live shape tree")

	// ErrNotArrayShape indicates TransitionElementKind was called on a
	// shape that was never published via Tree.NewArrayShape.
	ErrNotArrayShape = errors.New("shape: shape carries no element kind")
)

func init() {
	errs.Register(ErrNilShape, errs.Type)
	errs.Register(ErrForeignShape, errs.Type)
	errs.Register(ErrUnreachableShape, errs.Fatal)
	errs.Register(ErrNotArrayShape, errs.Type)
}
