package ratbig

import "math/big"

// Sign is the stored sign of a rational number.
//
// The zero value is Positive. The underlying values do not reflect the
// ordering of signs; use Cmp, which orders Negative before Positive.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// PositiveIf returns Positive if b is true and Negative otherwise.
func PositiveIf(b bool) Sign {
	if b {
		return Positive
	}
	return Negative
}

// IsPositive reports whether s is Positive.
func (s Sign) IsPositive() bool {
	return s == Positive
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	return PositiveIf(s == Negative)
}

// Mul returns the sign of a product of values with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	return PositiveIf(s == t)
}

// Pow returns the sign of a value with sign s raised to exp.
func (s Sign) Pow(exp uint) Sign {
	if s == Positive {
		return Positive
	}
	return PositiveIf(exp%2 == 0)
}

// Cmp returns -1 if s < t, 0 if s == t, and 1 if s > t, where
// Negative < Positive.
func (s Sign) Cmp(t Sign) int {
	switch {
	case s == t:
		return 0
	case s == Negative:
		return -1
	default:
		return 1
	}
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// apply returns a new integer equal to v with sign s applied.
func (s Sign) apply(v *big.Int) *big.Int {
	if s == Negative {
		return new(big.Int).Neg(v)
	}
	return new(big.Int).Set(v)
}

// signOf returns the sign of v, with zero counting as Positive.
func signOf(v *big.Int) Sign {
	return PositiveIf(v.Sign() >= 0)
}
