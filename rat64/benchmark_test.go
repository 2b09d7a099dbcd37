package rat64_test

import (
	"math/big"
	"testing"

	"github.com/yakimovim/big-rational-numbers/bigrat"
	"github.com/yakimovim/big-rational-numbers/rat64"
)

var BenchCases = map[string]struct {
	X, Y rat64.N
}{
	"Small":   {New(7, 11*13), New(11, 7*13)},
	"WideAdd": {New(P1, P2*P3), New(P2, P1*P3)},
	"WideMul": {New(P1*P2, P3), New(P3, P4)},
}

func BenchmarkRat64_Add(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Add(y)
			}
		})
	}
}

func BenchmarkRat64_Mul(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Mul(y)
			}
		})
	}
}

func BenchmarkRat64_Cmp(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Cmp(y)
			}
		})
	}
}

func BenchmarkBigrat_Add(b *testing.B) {
	for name, c := range BenchCases {
		x := bigrat.NewInt(c.X.Num(), c.X.Den())
		y := bigrat.NewInt(c.Y.Num(), c.Y.Den())
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Add(y)
			}
		})
	}
}

func BenchmarkBigrat_Mul(b *testing.B) {
	for name, c := range BenchCases {
		x := bigrat.NewInt(c.X.Num(), c.X.Den())
		y := bigrat.NewInt(c.Y.Num(), c.Y.Den())
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Mul(y)
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
