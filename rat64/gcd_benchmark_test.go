package rat64_test

import (
	"fmt"
	"testing"

	"github.com/yakimovim/big-rational-numbers/rat64"
)

func BenchmarkGCD(b *testing.B) {
	for _, c := range GCDCases {
		b.Run(fmt.Sprintf("GCD(%d,%d)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rat64.GCD(c.M, c.N)
			}
		})
	}
}
