// Package ratbig provides arbitrary-precision rational numbers.
// See the R type and the Try function for details.
package ratbig

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrDenInvalid = errors.New("denominator is not positive")
	ErrDenZero    = errors.New("denominator is zero")
	ErrDivByZero  = errors.New("division by zero")
	ErrNotFinite  = errors.New("value is not finite")
)

var bigZero = new(big.Int)

// R is a rational number with an arbitrary-precision numerator and
// denominator, representing sign * num / den.
//
// R is not kept in lowest terms. Arithmetic produces unreduced results and
// callers that need the canonical form must ask for it with Reduce or
// Reduced. Comparison and hashing do not depend on the stored form.
//
// Zero has many representations: +0/d and -0/d for any d. All of them are
// equal and hash identically.
//
// The zero value of R is +0/1 and is valid. Methods with value receivers
// never modify the integers held by their operands, so R values can be
// copied and shared between goroutines. Methods with pointer receivers
// replace the receiver's integers rather than writing through them, so
// mutating one copy never affects another, but a single R must not be
// mutated concurrently with other uses of it.
type R struct {
	sign Sign
	num  *big.Int // nil means 0, never negative
	den  NonZero
}

// FromParts creates a rational number from a sign, the magnitude of the
// numerator and the denominator. The sign of num is ignored.
func FromParts(sign Sign, num *big.Int, den NonZero) R {
	return R{sign, new(big.Int).Abs(num), den}
}

// Try creates a new rational number with the given signed numerator and
// denominator. The result is positive when num and den have the same sign.
// Try returns an error if the denominator is zero.
func Try(num, den *big.Int) (R, error) {
	if den.Sign() == 0 {
		return R{}, ErrDenZero
	}
	sign := PositiveIf((num.Sign() >= 0) == (den.Sign() >= 0))
	return R{sign, new(big.Int).Abs(num), nonZeroUnchecked(new(big.Int).Abs(den))}, nil
}

// New is like Try but panics if the denominator is zero.
func New(num, den *big.Int) R {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// NewInt64 is like New but takes machine integers.
func NewInt64(num, den int64) R {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromSignedNum creates a rational number from a signed numerator and a
// denominator. A non-negative num gives a Positive result.
func FromSignedNum(num *big.Int, den NonZero) R {
	return R{signOf(num), new(big.Int).Abs(num), den}
}

// FromBigInt returns v as a rational number with denominator 1.
func FromBigInt(v *big.Int) R {
	return FromSignedNum(v, One())
}

// FromInt returns v as a rational number with denominator 1.
func FromInt[T constraints.Signed](v T) R {
	return FromBigInt(big.NewInt(int64(v)))
}

// FromUint returns v as a positive rational number with denominator 1.
func FromUint[T constraints.Unsigned](v T) R {
	return R{Positive, new(big.Int).SetUint64(uint64(v)), One()}
}

// FromBigRat converts r to R.
func FromBigRat(r *big.Rat) R {
	// big.Rat keeps its denominator positive
	return FromSignedNum(r.Num(), nonZeroUnchecked(new(big.Int).Set(r.Denom())))
}

// FromFloat64 returns a rational number exactly equal to v.
// FromFloat64 returns an error if v is NaN or infinite.
func FromFloat64(v float64) (R, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return R{}, ErrNotFinite
	}
	return FromBigRat(new(big.Rat).SetFloat64(v)), nil
}

// numer returns the stored numerator, which must not be modified.
func (x R) numer() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

// Num returns the signed numerator of x as a new big.Int.
func (x R) Num() *big.Int {
	return x.sign.apply(x.numer())
}

// Den returns the denominator of x as a new big.Int.
func (x R) Den() *big.Int {
	return x.den.Int()
}

// Parts returns the stored sign, numerator magnitude and denominator of x.
// FromParts(x.Parts()) is equal to x.
func (x R) Parts() (Sign, *big.Int, NonZero) {
	return x.sign, new(big.Int).Set(x.numer()), x.den
}

// IsZero returns true if x is equal to 0, whatever its stored sign.
func (x R) IsZero() bool {
	return x.numer().Sign() == 0
}

// IsPositive returns true if x > 0.
func (x R) IsPositive() bool {
	return !x.IsZero() && x.sign == Positive
}

// IsNegative returns true if x < 0.
func (x R) IsNegative() bool {
	return !x.IsZero() && x.sign == Negative
}

// IsOne returns true if x is equal to 1.
func (x R) IsOne() bool {
	return x.sign == Positive && x.numer().Cmp(x.den.get()) == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x R) Sign() int {
	return int(x.logicalSignum())
}

// Signum returns 0 if x == 0, otherwise 1 or -1 with the sign of x.
func (x R) Signum() R {
	if x.IsZero() {
		return R{}
	}
	return R{x.sign, big.NewInt(1), One()}
}

// Abs returns the absolute value of x, |x|.
func (x R) Abs() R {
	x.sign = Positive
	return x
}

// Neg returns the negation of x, -x.
func (x R) Neg() R {
	x.sign = x.sign.Neg()
	return x
}

// Negate sets x to -x.
func (x *R) Negate() {
	x.sign = x.sign.Neg()
}

func (x R) logicalSignum() logicalSignum {
	switch {
	case x.IsZero():
		return signumZero
	case x.sign == Positive:
		return signumPos
	default:
		return signumNeg
	}
}

// crossMulAbs returns |x.num|*y.den and |y.num|*x.den.
func (x R) crossMulAbs(y R) pair[*big.Int] {
	return pair[*big.Int]{
		new(big.Int).Mul(x.numer(), y.den.get()),
		new(big.Int).Mul(y.numer(), x.den.get()),
	}
}

// crossMulSigned is like crossMulAbs but applies the sign of each operand.
func (x R) crossMulSigned(y R) pair[*big.Int] {
	p := x.crossMulAbs(y)
	if x.sign == Negative {
		p.a.Neg(p.a)
	}
	if y.sign == Negative {
		p.b.Neg(p.b)
	}
	return p
}

// Equal returns true if x and y represent the same number.
func (x R) Equal(y R) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	return x.sign == y.sign && fold(x.crossMulAbs(y), func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x R) Cmp(y R) int {
	sx, sy := x.logicalSignum(), y.logicalSignum()
	if c := sx.cmp(sy); c != 0 || sx == signumZero {
		return c
	}
	c := fold(x.crossMulAbs(y), (*big.Int).Cmp)
	// both are negative, so the larger magnitude is the smaller number
	if sx == signumNeg {
		c = -c
	}
	return c
}

// Key returns a string that is identical for all representations of the
// same number, suitable for use as a map key.
func (x R) Key() string {
	r := x.Reduced()
	if r.IsZero() {
		return "0/1"
	}
	return r.String()
}

// Hash writes a canonical encoding of x to h. Equal values write the same
// bytes regardless of their stored form.
func (x R) Hash(h *maphash.Hash) {
	r := x.Reduced()
	sign := r.sign
	if r.IsZero() {
		sign = Positive
	}
	num, den := r.numer().Bytes(), r.den.get().Bytes()
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(num)+len(den))
	buf = append(buf, byte(sign))
	buf = binary.AppendUvarint(buf, uint64(len(num)))
	buf = append(buf, num...)
	buf = append(buf, den...)
	h.Write(buf)
}

// Add adds x and y and returns the unreduced result.
// The denominator of the result is the product of the denominators.
func (x R) Add(y R) R {
	den := x.den.Mul(y.den)
	num := fold(x.crossMulSigned(y), func(a, b *big.Int) *big.Int {
		return a.Add(a, b)
	})
	return FromSignedNum(num, den)
}

// Sub subtracts y from x and returns the unreduced result.
func (x R) Sub(y R) R {
	den := x.den.Mul(y.den)
	num := fold(x.crossMulSigned(y), func(a, b *big.Int) *big.Int {
		return a.Sub(a, b)
	})
	return FromSignedNum(num, den)
}

// Mul multiplies x and y and returns the unreduced result.
func (x R) Mul(y R) R {
	return R{
		sign: x.sign.Mul(y.sign),
		num:  new(big.Int).Mul(x.numer(), y.numer()),
		den:  x.den.Mul(y.den),
	}
}

// TryDiv divides x by y and returns the unreduced result.
// TryDiv returns 0 and a non-nil error if y is zero.
func (x R) TryDiv(y R) (R, error) {
	yi, err := y.TryInv()
	if err != nil {
		return R{}, err
	}
	return x.Mul(yi), nil
}

// Div divides x by y and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y) == x.Mul(y.Inv())
func (x R) Div(y R) R {
	return x.Mul(y.Inv())
}

// AddAssign sets x to x+y without leaving the unsigned domain.
func (x *R) AddAssign(y R) {
	delta := new(big.Int).Mul(y.numer(), x.den.get())
	num := new(big.Int).Mul(x.numer(), y.den.get())
	x.den = x.den.Mul(y.den)
	// num and delta are both scaled to the new denominator now
	switch {
	case y.sign.Mul(x.sign).IsPositive():
		num.Add(num, delta)
	case num.Cmp(delta) >= 0:
		num.Sub(num, delta)
	default:
		x.sign = x.sign.Neg()
		num.Sub(delta, num)
	}
	x.num = num
}

// SubAssign sets x to x-y.
func (x *R) SubAssign(y R) {
	x.AddAssign(y.Neg())
}

// MulAssign sets x to x*y.
func (x *R) MulAssign(y R) {
	*x = x.Mul(y)
}

// DivAssign sets x to x/y. DivAssign panics if y is zero.
func (x *R) DivAssign(y R) {
	*x = x.Mul(y.Inv())
}

// invUnchecked swaps the numerator and denominator of x.
// x must not be zero.
func (x R) invUnchecked() R {
	return R{x.sign, x.den.Int(), nonZeroUnchecked(new(big.Int).Set(x.numer()))}
}

// TryInv returns the inverse of x, 1/x.
// TryInv returns 0 and a non-nil error if x is zero.
func (x R) TryInv() (R, error) {
	if x.IsZero() {
		return R{}, ErrDivByZero
	}
	return x.invUnchecked(), nil
}

// Inv returns the inverse of x, 1/x.
// Inv panics if x is zero.
func (x R) Inv() R {
	if x.IsZero() {
		panic(ErrDivByZero)
	}
	return x.invUnchecked()
}

// Reduce puts x in lowest terms.
// A zero value is reduced to 0/1 but keeps its stored sign.
func (x *R) Reduce() {
	d := GCD(x.numer(), x.den.get())
	if d.Cmp(bigOne) == 0 {
		return
	}
	x.num = new(big.Int).Quo(x.numer(), d)
	x.den = x.den.Quo(d)
}

// Reduced returns x in lowest terms.
func (x R) Reduced() R {
	x.Reduce()
	return x
}

// IsInt returns true if x is an integer.
func (x R) IsInt() bool {
	if x.den.IsOne() {
		return true
	}
	return new(big.Int).Rem(x.numer(), x.den.get()).Sign() == 0
}

// ToInt returns x as an integer if it is one. Otherwise it returns nil and
// false, and x remains available to the caller unchanged.
func (x R) ToInt() (*big.Int, bool) {
	if !x.IsInt() {
		return nil, false
	}
	return x.sign.apply(new(big.Int).Quo(x.numer(), x.den.get())), true
}

// IsUint returns true if x is a non-negative integer.
func (x R) IsUint() bool {
	return x.IsInt() && !x.IsNegative()
}

// ToUint returns x as an integer if it is a non-negative one. Otherwise it
// returns nil and false.
func (x R) ToUint() (*big.Int, bool) {
	if !x.IsUint() {
		return nil, false
	}
	return new(big.Int).Quo(x.numer(), x.den.get()), true
}

// PowUint returns x**exp. The result is not reduced beyond what x was.
func (x R) PowUint(exp uint) R {
	e := new(big.Int).SetUint64(uint64(exp))
	return R{
		sign: x.sign.Pow(exp),
		num:  new(big.Int).Exp(x.numer(), e, nil),
		den:  x.den.Exp(exp),
	}
}

// PowInt returns x**exp. A negative exp gives the inverse of x**-exp.
// PowInt panics if x is zero and exp is negative.
func (x R) PowInt(exp int) R {
	if exp >= 0 {
		return x.PowUint(uint(exp))
	}
	return x.PowUint(uint(-exp)).Inv()
}

// Sum returns the sum of xs in lowest terms.
func Sum(xs ...R) R {
	var z R
	for _, x := range xs {
		z.AddAssign(x)
		// keep the intermediate denominators from growing without bound
		z.Reduce()
	}
	return z
}

// Product returns the product of xs in lowest terms.
// The product of no values is 1.
func Product(xs ...R) R {
	z := FromUint(uint(1))
	for _, x := range xs {
		z.MulAssign(x)
		z.Reduce()
	}
	return z
}

// String returns a string representation of x as stored, as m/n.
// A negative sign is written even if x is zero.
func (x R) String() string {
	if x.sign == Negative {
		return fmt.Sprintf("-%s/%s", x.numer(), x.den)
	}
	return fmt.Sprintf("%s/%s", x.numer(), x.den)
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x R) Float64() (v float64, exact bool) {
	return x.BigRat().Float64()
}

// BigRat converts x to a new big.Rat.
func (x R) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(x.Num(), x.Den())
}
