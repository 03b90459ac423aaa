package ratbig_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbolino/ratbig"
)

type GCDCase struct {
	M, N, D int64
}

var GCDCases = []GCDCase{
	{0, 0, 0},
	{0, 1, 1},
	{0, 360, 360},
	{1, 1, 1},
	{1, 2, 1},
	{2, 2, 2},
	{2, 3, 1},
	{2, 4, 2},
	{2, 6, 2},
	{3, 6, 3},
	{4, 6, 2},
	{6, 6, 6},
	{6, 8, 2},
	{6, 9, 3},
	{24, 120, 24},
	{36, 120, 12},
	{7, 360, 1},
	{7, 14, 7},
	{7, 21, 7},
	{360, 92821, 1},
	{360, 92822, 2},
	{3600, 216000, 3600},
	{1 << 20, 1 << 62, 1 << 20},
	{3 << 40, 5 << 33, 1 << 33},
	{123456789, 987654321, 9},
	{P1 * P2 * P3, P2 * P3 * P4, P2 * P3},
	{
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 47,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 53,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43,
	},
	{math.MaxInt64 - 1, math.MaxInt64, 1},
	{-12, 18, 6},
	{-12, -18, 6},
}

var SymGCDCases []GCDCase

func init() {
	SymGCDCases = append(SymGCDCases, GCDCases...)
	for _, c := range GCDCases {
		if c.M == c.N {
			continue
		}
		SymGCDCases = append(SymGCDCases, GCDCase{c.N, c.M, c.D})
	}
}

func TestGCD(t *testing.T) {
	for _, c := range SymGCDCases {
		t.Run(fmt.Sprintf("GCD(%d,%d)", c.M, c.N), func(t *testing.T) {
			m, n := big.NewInt(c.M), big.NewInt(c.N)
			d := ratbig.GCD(m, n)
			if d.Cmp(big.NewInt(c.D)) != 0 {
				t.Errorf("GCD(%d, %d) == %s != %d", c.M, c.N, d, c.D)
			}
			if m.Int64() != c.M || n.Int64() != c.N {
				t.Errorf("GCD(%d, %d) modified its arguments to %s, %s", c.M, c.N, m, n)
			}
		})
	}
}

func TestGCD_bigOperands(t *testing.T) {
	assert := assert.New(t)

	mersenne := func(p uint) *big.Int {
		z := new(big.Int).Lsh(big.NewInt(1), p)
		return z.Sub(z, big.NewInt(1))
	}
	// 2^61-1, 2^89-1 and 2^107-1 are prime
	m61, m89, m107 := mersenne(61), mersenne(89), mersenne(107)
	pow2 := func(k uint) *big.Int {
		return new(big.Int).Lsh(big.NewInt(1), k)
	}
	mul := func(xs ...*big.Int) *big.Int {
		z := big.NewInt(1)
		for _, x := range xs {
			z.Mul(z, x)
		}
		return z
	}

	samples := [][2]*big.Int{
		{pow2(200), pow2(150)},
		{mul(m61, m89), mul(m89, m107)},
		{mul(pow2(70), m61, m107), mul(pow2(3), m107, m89)},
		{mul(m61, m61, m89), mul(m61, pow2(500))},
		{m107, m107},
		{mul(m89, m107), big.NewInt(0)},
	}
	for _, s := range samples {
		m, n := s[0], s[1]
		d := ratbig.GCD(m, n)
		want := new(big.Int).GCD(nil, nil, m, n)
		assert.Equalf(0, d.Cmp(want), "GCD(%s, %s) == %s, want %s", m, n, d, want)
		assert.Equalf(0, ratbig.GCD(n, m).Cmp(d), "GCD is not symmetric for %s, %s", m, n)
		if d.Sign() != 0 {
			assert.Zero(new(big.Int).Rem(m, d).Sign(), "GCD does not divide m")
			assert.Zero(new(big.Int).Rem(n, d).Sign(), "GCD does not divide n")
		}
	}
}
