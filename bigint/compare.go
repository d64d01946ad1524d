package bigint

import (
	"math"
	"math/big"
)

// Cmp returns -1, 0, or 1 according to whether x < y, x == y, or x > y.
func Cmp(x, y Int) int {
	return x.signedBig().Cmp(y.signedBig())
}

// CmpFloat compares the mathematical value of x against f without
// coercing either side. The second return is false when f
// is NaN, in which case every relational comparison (<, <=, >, >=, and
// even ==) is defined to be false, the caller should treat ok == false
// as "all comparisons false" rather than inspect the first return value.
//
// The comparison is exact regardless of x's magnitude: a fixed 256-bit
// precision would silently round a BigInt wider than smallBits before
// comparing it, so precision is instead sized from x's own bit length
// (with a guard bit against edge rounding, and a floor of 53 to hold
// f's full mantissa) and never truncates either operand.
func CmpFloat(x Int, f float64) (cmp int, ok bool) {
	if math.IsNaN(f) {
		return 0, false
	}

	xBig := x.signedBig()
	prec := uint(xBig.BitLen()) + 1
	if prec < 53 {
		prec = 53
	}

	xf := new(big.Float).SetPrec(prec).SetInt(xBig)
	yf := new(big.Float).SetPrec(prec).SetFloat64(f)

	return xf.Cmp(yf), true
}
