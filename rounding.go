package ratbig

import "math/big"

// Direction is the direction in which a value is rounded to an integer.
type Direction uint8

const (
	TowardsZero Direction = iota
	AwayFromZero
)

func (d Direction) String() string {
	if d == AwayFromZero {
		return "AwayFromZero"
	}
	return "TowardsZero"
}

// Decider chooses the direction in which to round a value.
type Decider interface {
	Decide(x R) Direction
}

// Decide returns d, so a Direction can be used as a fixed rounding rule.
func (d Direction) Decide(R) Direction {
	return d
}

// Floor rounds towards negative infinity.
type Floor struct{}

// Decide rounds negative values away from zero.
func (Floor) Decide(x R) Direction {
	if x.IsNegative() {
		return AwayFromZero
	}
	return TowardsZero
}

// Ceil rounds towards positive infinity.
type Ceil struct{}

// Decide rounds positive values away from zero.
func (Ceil) Decide(x R) Direction {
	if x.IsPositive() {
		return AwayFromZero
	}
	return TowardsZero
}

// TowardNearest rounds towards the nearest integer, using TieBreaker when
// the value is exactly halfway between two integers. A nil TieBreaker
// rounds ties towards the even integer.
type TowardNearest struct {
	TieBreaker Decider
}

// Decide compares the fractional part of x to one half.
func (t TowardNearest) Decide(x R) Direction {
	f := x.Fract()
	// 2a <=> b is a/b <=> 1/2
	twice := new(big.Int).Lsh(f.numer(), 1)
	switch twice.Cmp(f.den.get()) {
	case 1:
		return AwayFromZero
	case -1:
		return TowardsZero
	}
	if t.TieBreaker == nil {
		return TowardNearestEven{}.Decide(x)
	}
	return t.TieBreaker.Decide(x)
}

// TowardNearestEven rounds towards the nearest even integer. It is meant to
// be used as the TieBreaker of TowardNearest, giving bankers' rounding.
type TowardNearestEven struct{}

func (TowardNearestEven) Decide(x R) Direction {
	if x.AbsFloor().Bit(0) == 0 {
		return TowardsZero
	}
	return AwayFromZero
}

// TowardNearestOdd rounds towards the nearest odd integer.
type TowardNearestOdd struct{}

func (TowardNearestOdd) Decide(x R) Direction {
	if x.AbsFloor().Bit(0) == 1 {
		return TowardsZero
	}
	return AwayFromZero
}

// AbsFloor returns |x| rounded towards zero.
func (x R) AbsFloor() *big.Int {
	return new(big.Int).Quo(x.numer(), x.den.get())
}

// AbsCeil returns |x| rounded away from zero.
func (x R) AbsCeil() *big.Int {
	if x.IsZero() {
		return new(big.Int)
	}
	// (n-1)/d + 1 for n > 0
	z := new(big.Int).Sub(x.numer(), bigOne)
	z.Quo(z, x.den.get())
	return z.Add(z, bigOne)
}

func (x R) roundAbsIn(dir Direction) *big.Int {
	if dir == AwayFromZero {
		return x.AbsCeil()
	}
	return x.AbsFloor()
}

// RoundAbs rounds |x| to an integer in the direction chosen by d for |x|.
func (x R) RoundAbs(d Decider) *big.Int {
	x = x.Abs()
	return x.roundAbsIn(d.Decide(x))
}

// Round rounds x to an integer in the direction chosen by d.
//
//	NewInt64(-7, 2).Round(Floor{}) == -4
func (x R) Round(d Decider) *big.Int {
	z := x.roundAbsIn(d.Decide(x))
	if x.sign == Negative {
		z.Neg(z)
	}
	return z
}

// Trunc returns the integer part of x, rounded towards zero.
func (x R) Trunc() R {
	return FromBigInt(x.Round(TowardsZero))
}

// Fract returns the fractional part of x, keeping its sign and denominator.
// The following holds for all x:
//
//	x.Equal(x.Trunc().Add(x.Fract()))
func (x R) Fract() R {
	return R{x.sign, new(big.Int).Rem(x.numer(), x.den.get()), x.den}
}
