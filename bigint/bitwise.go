package bigint

import "math/big"

// Bitwise operators need true two's-complement semantics over an
// unbounded width for negative operands (e.g. -1n has infinitely many
// leading one bits). uint256's fixed 256-bit word cannot express that, so
// every bitwise operator in this file routes through math/big, which
// implements arbitrary-precision two's complement natively.

// And returns x & y.
func And(x, y Int) Int {
	return fromSigned(new(big.Int).And(x.signedBig(), y.signedBig()))
}

// Or returns x | y.
func Or(x, y Int) Int {
	return fromSigned(new(big.Int).Or(x.signedBig(), y.signedBig()))
}

// Xor returns x ^ y.
func Xor(x, y Int) Int {
	return fromSigned(new(big.Int).Xor(x.signedBig(), y.signedBig()))
}

// Not returns ^x (i.e. -x - 1).
func Not(x Int) Int {
	return fromSigned(new(big.Int).Not(x.signedBig()))
}

// Shl returns x << n. Returns ErrNegativeShift if n is negative.
func Shl(x Int, n int) (Int, error) {
	if n < 0 {
		return Zero, ErrNegativeShift
	}

	return fromSigned(new(big.Int).Lsh(x.signedBig(), uint(n))), nil
}

// Shr returns the arithmetic right shift x >> n (sign-extending).
// Returns ErrNegativeShift if n is negative.
func Shr(x Int, n int) (Int, error) {
	if n < 0 {
		return Zero, ErrNegativeShift
	}

	return fromSigned(new(big.Int).Rsh(x.signedBig(), uint(n))), nil
}

// UShr always fails: BigInt has no unsigned right-shift operator because
// it has no unbounded unsigned representation.
func UShr(Int, int) (Int, error) {
	return Zero, ErrUnsignedShiftUnsupported
}

// AsIntN returns the two's-complement truncation of x to bits bits,
// interpreted as a signed integer in [-2^(bits-1), 2^(bits-1)-1].
// Returns ErrInvalidWidth if bits <= 0.
func AsIntN(bits int, x Int) (Int, error) {
	if bits <= 0 {
		return Zero, ErrInvalidWidth
	}
	truncated := truncateToWidth(x.signedBig(), bits)
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if truncated.Cmp(half) >= 0 {
		truncated.Sub(truncated, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}

	return fromSigned(truncated), nil
}

// AsUintN returns the two's-complement truncation of x to bits bits,
// interpreted as an unsigned integer in [0, 2^bits - 1].
// Returns ErrInvalidWidth if bits <= 0.
func AsUintN(bits int, x Int) (Int, error) {
	if bits <= 0 {
		return Zero, ErrInvalidWidth
	}

	return fromSigned(truncateToWidth(x.signedBig(), bits)), nil
}

// truncateToWidth reduces v modulo 2^bits into the non-negative range
// [0, 2^bits), matching two's-complement truncation for both positive and
// negative v (Go's big.Int.Mod always yields a non-negative result for a
// positive modulus, which is exactly what truncation needs here).
func truncateToWidth(v *big.Int, bits int) *big.Int {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return new(big.Int).Mod(v, modulus)
}
