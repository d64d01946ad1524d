package bigint

import (
	"math/big"

	"github.com/holiman/uint256"
)

// cmpMagnitude compares |x| and |y|, returning -1, 0, or 1.
func cmpMagnitude(x, y Int) int {
	if x.repr == reprSmall && y.repr == reprSmall {
		return x.small.Cmp(&y.small)
	}

	return x.magBig().Cmp(y.magBig())
}

// addSameSign adds two magnitudes known to share sign neg, trying the
// uint256 fast path first and falling back to math/big only on overflow.
func addSameSign(neg bool, x, y Int) Int {
	if x.repr == reprSmall && y.repr == reprSmall {
		var sum uint256.Int
		_, overflow := sum.AddOverflow(&x.small, &y.small)
		if !overflow {
			return Int{neg: neg, small: sum}
		}
	}
	mag := new(big.Int).Add(x.magBig(), y.magBig())

	return fromMagnitude(neg, mag)
}

// subMagnitudes computes |larger| - |smaller| (caller guarantees
// |larger| >= |smaller|), tagging the result with signOfLarger.
func subMagnitudes(larger, smaller Int, signOfLarger bool) Int {
	if larger.repr == reprSmall && smaller.repr == reprSmall {
		var diff uint256.Int
		_, underflow := diff.SubOverflow(&larger.small, &smaller.small)
		if !underflow {
			return Int{neg: signOfLarger, small: diff}
		}
	}
	mag := new(big.Int).Sub(larger.magBig(), smaller.magBig())

	return fromMagnitude(signOfLarger, mag)
}

// Add returns x + y.
func Add(x, y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.neg == y.neg {
		return addSameSign(x.neg, x, y)
	}
	switch c := cmpMagnitude(x, y); {
	case c == 0:
		return Zero
	case c > 0:
		return subMagnitudes(x, y, x.neg)
	default:
		return subMagnitudes(y, x, y.neg)
	}
}

// Sub returns x - y.
func Sub(x, y Int) Int {
	return Add(x, Neg(y))
}

// Mul returns x * y.
func Mul(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	neg := x.neg != y.neg
	if x.repr == reprSmall && y.repr == reprSmall {
		var prod uint256.Int
		_, overflow := prod.MulOverflow(&x.small, &y.small)
		if !overflow {
			return Int{neg: neg, small: prod}
		}
	}
	mag := new(big.Int).Mul(x.magBig(), y.magBig())

	return fromMagnitude(neg, mag)
}

// Div returns the truncating-toward-zero quotient of x / y.
// Returns ErrDivideByZero if y is zero.
func Div(x, y Int) (Int, error) {
	if y.IsZero() {
		return Zero, ErrDivideByZero
	}
	if x.IsZero() {
		return Zero, nil
	}
	neg := x.neg != y.neg
	if x.repr == reprSmall && y.repr == reprSmall {
		var q uint256.Int
		q.Div(&x.small, &y.small)
		if q.IsZero() {
			return Zero, nil
		}

		return Int{neg: neg, small: q}, nil
	}
	mag := new(big.Int).Quo(x.magBig(), y.magBig())

	return fromMagnitude(neg, mag), nil
}

// Rem returns the remainder of x / y with the sign of the dividend x
//. Returns ErrDivideByZero if y is zero.
func Rem(x, y Int) (Int, error) {
	if y.IsZero() {
		return Zero, ErrDivideByZero
	}
	if x.repr == reprSmall && y.repr == reprSmall {
		var r uint256.Int
		r.Mod(&x.small, &y.small)
		if r.IsZero() {
			return Zero, nil
		}

		return Int{neg: x.neg, small: r}, nil
	}
	mag := new(big.Int).Rem(x.magBig(), y.magBig())
	if mag.Sign() == 0 {
		return Zero, nil
	}

	return fromMagnitude(x.neg, mag), nil
}

// Pow returns x raised to the non-negative exponent y.
// Returns ErrNegativeExponent if y is negative.
func Pow(x, y Int) (Int, error) {
	if y.neg {
		return Zero, ErrNegativeExponent
	}
	if y.IsZero() {
		return FromInt64(1), nil
	}
	if x.IsZero() {
		return Zero, nil
	}
	mag := new(big.Int).Exp(x.magBig(), y.magBig(), nil)
	neg := x.neg && y.magBig().Bit(0) == 1 // negative base, odd exponent

	return fromMagnitude(neg, mag), nil
}
