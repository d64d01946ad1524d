package value

import (
	"errors"
	"math"
	"testing"

	"github.com/cortenjs/corten/bigint"
	"github.com/stretchr/testify/assert"
)

func TestStrictEqualNaNAndZero(t *testing.T) {
	nan := Num(math.NaN())
	assert.False(t, StrictEqual(nan, nan))

	posZero, negZero := Num(0), Num(math.Copysign(0, -1))
	assert.True(t, StrictEqual(posZero, negZero))
}

func TestSameValueZeroNaNAndZero(t *testing.T) {
	nan := Num(math.NaN())
	assert.True(t, SameValueZero(nan, nan))

	posZero, negZero := Num(0), Num(math.Copysign(0, -1))
	assert.True(t, SameValueZero(posZero, negZero))
}

func TestSameValueDistinguishesZero(t *testing.T) {
	posZero, negZero := Num(0), Num(math.Copysign(0, -1))
	assert.False(t, SameValue(posZero, negZero))
	assert.True(t, SameValue(posZero, posZero))
}

func TestCheckArithmeticMix(t *testing.T) {
	big, _ := bigint.Parse("1n")
	bigVal := Big(big)
	numVal := Int(1)

	assert.ErrorIs(t, CheckArithmeticMix(bigVal, numVal), ErrBigIntMix)
	assert.NoError(t, CheckArithmeticMix(bigVal, Big(big)))
	assert.NoError(t, CheckArithmeticMix(numVal, Num(2)))
}

func TestBigIntPlusNumberAlwaysFailsType(t *testing.T) {
	// Testable property: BigInt(x) + Number(y) fails with TYPE for all x, y.
	xs := []string{"0n", "1n", "-5n", "123456789012345678901234567890n"}
	ys := []float64{0, 1, -1, math.NaN(), math.Inf(1)}
	for _, x := range xs {
		b, err := bigint.Parse(x)
		if err != nil {
			t.Fatal(err)
		}
		for _, y := range ys {
			err := CheckArithmeticMix(Big(b), Num(y))
			assert.True(t, errors.Is(err, ErrBigIntMix))
		}
	}
}

func TestCompareBigIntAndNumber(t *testing.T) {
	b, _ := bigint.Parse("10n")
	cmp, ok, err := Compare(Big(b), Num(9.5))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok, err = Compare(Big(b), Num(math.NaN()))
	assert.NoError(t, err)
	assert.False(t, ok, "comparison against NaN must be false, not an error")
}

func TestCompareNotComparable(t *testing.T) {
	_, ok, err := Compare(Str(1), Str(2))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotComparable)
}
