package value

import (
	"errors"

	"github.com/cortenjs/corten/errs"
)

// ErrBigIntMix indicates an operation tried to combine a BigInt Value
// with a SmallInt or Float Value. Comparison is the only exception to
// this rule; every other entry point that crosses the
// BigInt/Number boundary returns this sentinel.
var ErrBigIntMix = errors.New("value: BigInt cannot be mixed with a Number in an arithmetic operation")

// ErrNotComparable indicates Compare was called with a tag combination
// that has no defined relational ordering (e.g. two strings, or an
// object and a boolean). Corten's core does not implement the full
// ECMAScript abstract relational comparison algorithm (string/object
// coercion is a standard-library concern, out of scope here); this
// sentinel marks the boundary of what Compare supports.
var ErrNotComparable = errors.New("value: tag combination has no defined relational ordering")

func init() {
	errs.Register(ErrBigIntMix, errs.Type)
	errs.Register(ErrNotComparable, errs.Type)
}
