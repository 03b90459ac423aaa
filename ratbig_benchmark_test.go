package ratbig_test

import (
	"math/big"
	"testing"

	"github.com/kbolino/ratbig"
)

var BenchCases = map[string]struct {
	X, Y ratbig.R
}{
	"Small":   {New(7, 11*13), New(11, 7*13)},
	"WideAdd": {New(P1, P2*P3), New(P2, P1*P3)},
	"WideMul": {New(P1*P2, P3), New(P3, P4)},
}

func BenchmarkRatBig_Add(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Add(y)
			}
		})
	}
}

func BenchmarkRatBig_AddAssign(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z := x
				z.AddAssign(y)
			}
		})
	}
}

func BenchmarkRatBig_Mul(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Mul(y)
			}
		})
	}
}

func BenchmarkRatBig_Reduce(b *testing.B) {
	for name, c := range BenchCases {
		z := c.X.Mul(c.Y)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.Reduced()
			}
		})
	}
}

func BenchmarkBigRat_Add(b *testing.B) {
	z := new(big.Rat)
	for name, c := range BenchCases {
		x, y := c.X.BigRat(), c.Y.BigRat()
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.Add(x, y)
			}
		})
	}
}

func BenchmarkBigRat_Mul(b *testing.B) {
	z := new(big.Rat)
	for name, c := range BenchCases {
		x, y := c.X.BigRat(), c.Y.BigRat()
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.Mul(x, y)
			}
		})
	}
}
