package value

import (
	"math"

	"github.com/cortenjs/corten/bigint"
)

// StrictEqual implements JavaScript's === : same tag and same payload.
// NaN is not strict-equal to NaN; +0 and -0 ARE strict-equal (strict
// equality, unlike SameValue, does not distinguish signed zero).
func StrictEqual(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagUndefined, TagNull:
		return true
	case TagBool:
		return a.smi == b.smi
	case TagSmallInt:
		return a.smi == b.smi
	case TagFloat:
		return a.num == b.num // NaN != NaN and +0 == -0 fall out of Go's == on float64
	case TagString:
		return a.str == b.str
	case TagObject:
		return a.obj == b.obj
	case TagBigInt:
		return bigint.Cmp(a.bigint, b.bigint) == 0
	default:
		return false
	}
}

// SameValueZero implements the SameValueZero algorithm: as StrictEqual,
// except NaN equals NaN.
func SameValueZero(a, b Value) bool {
	if a.tag == TagFloat && b.tag == TagFloat {
		if math.IsNaN(a.num) && math.IsNaN(b.num) {
			return true
		}
	}

	return StrictEqual(a, b)
}

// SameValue implements the SameValue algorithm: as SameValueZero, except
// +0 does NOT equal -0. Object.is needs this distinction even though
// SameValueZero is the more commonly used equality notion elsewhere.
func SameValue(a, b Value) bool {
	if a.tag == TagFloat && b.tag == TagFloat && a.num == 0 && b.num == 0 {
		return a.isNegZero() == b.isNegZero()
	}

	return SameValueZero(a, b)
}

// CheckArithmeticMix returns ErrBigIntMix if exactly one of a, b is a
// BigInt and the other is a Number (SmallInt or Float); callers of any
// arithmetic entry point should call this before dispatching to the
// bigint package or to float64 arithmetic. Comparison does not call this
// helper; see Compare, which implements the one explicit exception.
func CheckArithmeticMix(a, b Value) error {
	aBig, bBig := a.tag == TagBigInt, b.tag == TagBigInt
	if aBig != bBig && (a.IsNumber() || b.IsNumber()) {
		return ErrBigIntMix
	}

	return nil
}

// Compare performs a relational comparison (<, <=, >, >=) between two
// numeric-ish values without coercion. It supports Number-Number,
// BigInt-BigInt, and BigInt-Number pairs (the last is the explicit
// exception to the no-mix rule); any other tag combination returns
// ok == false, err != nil. When either Number operand is NaN, ok is
// false and err is nil: every relational comparison against NaN is
// false, not an error.
func Compare(a, b Value) (cmp int, ok bool, err error) {
	switch {
	case a.IsNumber() && b.IsNumber():
		af, bf := a.numeric(), b.numeric()
		if math.IsNaN(af) || math.IsNaN(bf) {
			return 0, false, nil
		}
		switch {
		case af < bf:
			return -1, true, nil
		case af > bf:
			return 1, true, nil
		default:
			return 0, true, nil
		}
	case a.tag == TagBigInt && b.tag == TagBigInt:
		return bigint.Cmp(a.bigint, b.bigint), true, nil
	case a.tag == TagBigInt && b.IsNumber():
		c, numOK := bigint.CmpFloat(a.bigint, b.numeric())
		return c, numOK, nil
	case b.tag == TagBigInt && a.IsNumber():
		c, numOK := bigint.CmpFloat(b.bigint, a.numeric())
		return -c, numOK, nil
	default:
		return 0, false, ErrNotComparable
	}
}
