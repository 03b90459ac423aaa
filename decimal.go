package ratbig

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var bigTen = big.NewInt(10)

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// FromDecimal returns a rational number exactly equal to d.
func FromDecimal(d decimal.Decimal) R {
	coef, exp := d.Coefficient(), d.Exponent()
	if exp >= 0 {
		return FromBigInt(coef.Mul(coef, pow10(exp)))
	}
	return FromSignedNum(coef, nonZeroUnchecked(pow10(-exp)))
}

// Decimal rounds x to the given number of digits after the decimal point,
// in the direction chosen by d, and returns it as a decimal.Decimal.
// If places is negative, x is rounded to a multiple of 10**-places.
func (x R) Decimal(places int32, d Decider) decimal.Decimal {
	var scaled R
	if places >= 0 {
		scaled = x.Mul(FromBigInt(pow10(places)))
	} else {
		scaled = x.Div(FromBigInt(pow10(-places)))
	}
	return decimal.NewFromBigInt(scaled.Round(d), -places)
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// A result that rounds to zero is written without a sign.
func (x R) DecimalString(prec int) string {
	p := int32(max(prec, 0))
	return x.Decimal(p, TowardNearest{TieBreaker: AwayFromZero}).StringFixed(p)
}
