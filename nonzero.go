package ratbig

import "math/big"

var bigOne = big.NewInt(1)

// NonZero is a positive arbitrary-precision integer, used as the denominator
// of a rational number so that it can always be divided by.
//
// The zero value of NonZero is equal to 1 and thus valid. NonZero values
// never modify the integers they hold, so they can be freely copied.
type NonZero struct {
	v *big.Int // nil means 1
}

// One returns the NonZero value 1.
func One() NonZero {
	return NonZero{}
}

// NewNonZero wraps a copy of u.
// NewNonZero returns an error if u is not positive.
func NewNonZero(u *big.Int) (NonZero, error) {
	if u.Sign() <= 0 {
		return NonZero{}, ErrDenInvalid
	}
	return NonZero{new(big.Int).Set(u)}, nil
}

// MustNonZero is like NewNonZero but panics if u is not positive.
func MustNonZero(u *big.Int) NonZero {
	d, err := NewNonZero(u)
	if err != nil {
		panic(err)
	}
	return d
}

// nonZeroUnchecked takes ownership of u without checking it.
// The caller must guarantee that u > 0 and that u is not modified afterward.
func nonZeroUnchecked(u *big.Int) NonZero {
	return NonZero{u}
}

// Int returns the value of d as a new big.Int.
func (d NonZero) Int() *big.Int {
	return new(big.Int).Set(d.get())
}

// get returns the wrapped integer, which must not be modified.
func (d NonZero) get() *big.Int {
	if d.v == nil {
		return bigOne
	}
	return d.v
}

// IsOne reports whether d == 1.
func (d NonZero) IsOne() bool {
	return d.v == nil || d.v.Cmp(bigOne) == 0
}

// Cmp returns -1 if d < e, 0 if d == e, and 1 if d > e.
func (d NonZero) Cmp(e NonZero) int {
	return d.get().Cmp(e.get())
}

// Mul returns d*e.
func (d NonZero) Mul(e NonZero) NonZero {
	if d.v == nil {
		return e
	}
	if e.v == nil {
		return d
	}
	// the product of two positive values is positive
	return nonZeroUnchecked(new(big.Int).Mul(d.v, e.v))
}

// Add returns d+e.
func (d NonZero) Add(e NonZero) NonZero {
	// the sum of two positive values is positive
	return nonZeroUnchecked(new(big.Int).Add(d.get(), e.get()))
}

// Quo returns d/q. The divisor q must be positive and must divide d exactly,
// otherwise the result is not a valid NonZero.
func (d NonZero) Quo(q *big.Int) NonZero {
	if q.Cmp(bigOne) == 0 {
		return d
	}
	return nonZeroUnchecked(new(big.Int).Quo(d.get(), q))
}

// Exp returns d**exp.
func (d NonZero) Exp(exp uint) NonZero {
	if d.v == nil {
		return d
	}
	// any power of a positive value is positive
	e := new(big.Int).SetUint64(uint64(exp))
	return nonZeroUnchecked(new(big.Int).Exp(d.v, e, nil))
}

func (d NonZero) String() string {
	return d.get().String()
}
