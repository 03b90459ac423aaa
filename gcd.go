package ratbig

import "math/big"

// GCD returns the greatest common divisor (GCD) of |m| and |n|.
// The GCD is the largest integer that divides both m and n.
// GCD(0, n) is |n| and GCD(m, 0) is |m|.
// The result is always a newly allocated value.
//
// The binary algorithm is used, so only shifts, subtraction and parity tests
// are performed on the operands.
func GCD(m, n *big.Int) *big.Int {
	if m.Sign() == 0 {
		return new(big.Int).Abs(n)
	}
	if n.Sign() == 0 {
		return new(big.Int).Abs(m)
	}
	u := new(big.Int).Abs(m)
	v := new(big.Int).Abs(n)

	// m = 2^i * u and n = 2^j * v with u, v odd, then
	// gcd(m, n) = 2^k * gcd(u, v) with k = min(i, j)
	i := u.TrailingZeroBits()
	u.Rsh(u, i)
	j := v.TrailingZeroBits()
	v.Rsh(v, j)
	k := min(i, j)

	for {
		// u and v are both odd here
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		// gcd(u, v) = gcd(u, v-u) for u <= v, and v-u is even
		v.Sub(v, u)
		if v.Sign() == 0 {
			return u.Lsh(u, k)
		}
		v.Rsh(v, v.TrailingZeroBits())
	}
}
