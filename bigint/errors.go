package bigint

import (
	"errors"

	"github.com/cortenjs/corten/errs"
)

// Sentinel errors returned by the bigint engine. Callers MUST use
// errors.Is(err, ErrX) to branch on semantics; messages are not part of
// the contract.
var (
	// ErrDivideByZero indicates Div or Rem was called with a zero divisor.
	ErrDivideByZero = errors.New("bigint: division by zero")

	// ErrNegativeExponent indicates Pow was called with a negative
	// exponent; BigInt exponentiation is defined only for exponent >= 0.
	ErrNegativeExponent = errors.New("bigint: negative exponent")

	// ErrInvalidWidth indicates AsIntN/AsUintN was called with bits <= 0.
	ErrInvalidWidth = errors.New("bigint: invalid width")

	// ErrUnsignedShiftUnsupported indicates the unsigned right-shift
	// operator was requested; arbitrary-precision integers have no
	// unbounded unsigned representation, so this operator is rejected
	// rather than given ad-hoc semantics.
	ErrUnsignedShiftUnsupported = errors.New("bigint: unsigned right shift is not defined for BigInt")

	// ErrNegativeShift indicates Shl/Shr was called with a negative
	// shift amount.
	ErrNegativeShift = errors.New("bigint: negative shift amount")

	// ErrInvalidLiteral indicates Parse was given a string that is not a
	// well-formed BigInt literal (<digits>n in base 2, 8, 10, or 16).
	ErrInvalidLiteral = errors.New("bigint: invalid BigInt literal")
)

func init() {
	errs.Register(ErrDivideByZero, errs.Range)
	errs.Register(ErrNegativeExponent, errs.Range)
	errs.Register(ErrInvalidWidth, errs.Range)
	errs.Register(ErrUnsignedShiftUnsupported, errs.Type)
	errs.Register(ErrNegativeShift, errs.Range)
	errs.Register(ErrInvalidLiteral, errs.Type)
}
