package bigint

import (
	"math/big"
	"strings"
)

// Parse recognizes BigInt literals of the form <digits>n in base 2, 8, 10,
// or 16, with the conventional 0b/0o/0x prefixes. An optional
// leading sign (+/-) is accepted for callers that fold a unary minus into
// the literal at parse time; the core ECMAScript grammar itself has no
// signed BigInt literal, only unary negation of an unsigned one, so
// producing Neg(x) from an unsigned Parse is equally valid and preferred
// by callers that model unary minus explicitly.
func Parse(literal string) (Int, error) {
	s := literal
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) == 0 || s[len(s)-1] != 'n' {
		return Zero, ErrInvalidLiteral
	}
	s = s[:len(s)-1]

	base := 10
	switch {
	case hasPrefixFold(s, "0b"):
		base, s = 2, s[2:]
	case hasPrefixFold(s, "0o"):
		base, s = 8, s[2:]
	case hasPrefixFold(s, "0x"):
		base, s = 16, s[2:]
	}
	if s == "" {
		return Zero, ErrInvalidLiteral
	}

	mag, ok := new(big.Int).SetString(s, base)
	if !ok || mag.Sign() < 0 {
		return Zero, ErrInvalidLiteral
	}

	return fromMagnitude(neg && mag.Sign() != 0, mag), nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
