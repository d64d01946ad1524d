// Package bigint implements Corten's arbitrary-precision integer engine:
// signed BigInt arithmetic, bitwise operators, comparison, and
// width-wrap truncation, under a strict no-mix-with-float discipline.
//
// Representation:
// an Int holds a sign and one of two backing stores, chosen transparently
// by magnitude and never visible to callers:
//
//	small - a github.com/holiman/uint256.Int, used while the magnitude
//	        fits in 256 bits. uint256 is a fixed-width, allocation-light
//	        word type (the same one production EVM/JS-adjacent engines use
//	        for the common case), so the overwhelmingly common BigInt
//	        range (anything that started life as a Number.MAX_SAFE_INTEGER
//	        or a hash/width computation) never touches math/big.
//	big   - a math/big.Int, used only once a computation's magnitude
//	        overflows 256 bits; see DESIGN.md for why no third-party
//	        library covers this case.
//
// Operations: Add, Sub, Mul, Div (truncating toward zero), Rem (sign of
// dividend), Pow (non-negative exponent only), Neg, And, Or, Xor, Not,
// Shl, Shr (arithmetic); UShr is rejected. AsIntN/AsUintN produce the
// two's-complement truncation to n bits.
//
// Mixed-type rule: every binary operation here operates only on Int
// values; the caller (the value package) is responsible for rejecting a
// BigInt/Number mix before calling in, except for CmpFloat, which this package
// exposes directly against a float64 operand because comparison is the
// one explicit exception to the no-mix rule.
package bigint
