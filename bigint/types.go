package bigint

import (
	"math/big"

	"github.com/holiman/uint256"
)

// repr selects which backing store holds an Int's magnitude.
type repr uint8

const (
	reprSmall repr = iota // magnitude fits in 256 bits; small holds it
	reprBig                // magnitude overflowed 256 bits; big holds it
)

// smallBits is the width of the fast-path magnitude store.
const smallBits = 256

// Int is an arbitrary-precision signed integer. The zero value is 0.
//
// Internally an Int is sign + magnitude, never two's complement: neg is
// meaningless when the magnitude is zero (there is exactly one zero,
// matching math/big's convention). The magnitude lives in small (a
// uint256.Int, the fast path) while it fits in 256 bits, and spills to
// big (a non-negative math/big.Int) only once a computation overflows
// that width. Both reprs are private; every exported operation returns a
// normalized Int so callers never observe which store is active.
type Int struct {
	neg   bool
	small uint256.Int
	big   *big.Int
	repr  repr
}

// Zero is the BigInt value 0n.
var Zero = Int{}

// FromInt64 constructs an Int from a machine int64.
func FromInt64(v int64) Int {
	if v == 0 {
		return Zero
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}

	return Int{neg: neg, small: *uint256.NewInt(u)}
}

// FromUint64 constructs a non-negative Int from a machine uint64.
func FromUint64(v uint64) Int {
	return Int{small: *uint256.NewInt(v)}
}

// IsZero reports whether x is the value 0n.
func (x Int) IsZero() bool {
	if x.repr == reprBig {
		return x.big.Sign() == 0
	}

	return x.small.IsZero()
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}

	return 1
}

// Neg returns -x.
func Neg(x Int) Int {
	if x.IsZero() {
		return Zero
	}
	y := x
	y.neg = !x.neg

	return y
}

// magBig returns x's magnitude as a freshly-allocated, non-negative
// math/big.Int, regardless of which repr backs x.
func (x Int) magBig() *big.Int {
	if x.repr == reprBig {
		return new(big.Int).Set(x.big)
	}
	b := x.small // copy
	return new(big.Int).SetBytes(b.Bytes())
}

// signedBig returns x as a signed math/big.Int (used by the bitwise
// operators, which need true two's-complement semantics for negative
// operands, something a fixed-width unsigned word cannot express
// directly).
func (x Int) signedBig() *big.Int {
	m := x.magBig()
	if x.neg {
		m.Neg(m)
	}

	return m
}

// fromMagnitude builds a normalized Int from a sign and a non-negative
// magnitude. If mag fits in smallBits bits, the result uses the uint256
// fast path; otherwise it spills to the big repr. mag is never retained
// by reference (fromMagnitude clones into the small path, and takes
// ownership only of big-repr storage it allocates itself).
func fromMagnitude(neg bool, mag *big.Int) Int {
	if mag.Sign() == 0 {
		return Zero
	}
	if mag.BitLen() <= smallBits {
		var u uint256.Int
		u.SetBytes(mag.Bytes())

		return Int{neg: neg, small: u}
	}

	return Int{neg: neg, big: new(big.Int).Set(mag), repr: reprBig}
}

// fromSigned builds a normalized Int from a signed math/big.Int (used
// after bitwise operators, which compute in signed two's-complement
// space).
func fromSigned(v *big.Int) Int {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)

	return fromMagnitude(neg, mag)
}

// String renders x using base-10 digits with a trailing "n", matching
// JavaScript's BigInt literal syntax.
func (x Int) String() string {
	return x.signedBig().String() + "n"
}
