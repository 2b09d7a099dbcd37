// Package rat64 provides exact rational numbers with fixed-width backing.
// See the N type and New function for details.
//
// Arithmetic is checked: results that do not fit the backing words surface
// an overflow error instead of wrapping. The sibling package bigrat holds
// the arbitrary-precision variant of the same type, where overflow cannot
// occur.
package rat64

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero     = errors.New("denominator is zero")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDivByZero   = errors.New("division by zero")
)

// N is a rational number with 64-bit numerator and denominator, always kept
// in lowest terms with the sign on the numerator.
//
// One bit of the numerator is used for the sign and the denominator must be
// positive, so only 63 bits of magnitude are actually available in each.
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type N
//   - returned by the Try and New functions
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// N has proper value semantics and its values can be freely copied.
// Two valid values of N can be compared using the == and != operators.
type N struct {
	m int64
	n int64
}

// Try creates a new rational number with the given numerator and denominator,
// reduced to lowest terms. A negative denominator is allowed; its sign moves
// onto the numerator. Try returns an error if the denominator is zero, or if
// either magnitude exceeds 63 bits (only math.MinInt64 does).
func Try(num, den int64) (N, error) {
	if den == 0 {
		return N{}, ErrDenZero
	}
	if num == math.MinInt64 {
		return N{}, ErrNumOverflow
	}
	if den == math.MinInt64 {
		return N{}, ErrDenOverflow
	}
	if den < 0 {
		num, den = -num, -den
	}
	return N{num, den - 1}.reduce(), nil
}

// New is like Try but panics instead of returning an error.
func New(num, den int64) N {
	n, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt64 converts an integer to the rational number v/1.
// It panics for math.MinInt64, whose magnitude does not fit in 63 bits.
func FromInt64(v int64) N {
	return New(v, 1)
}

// Num returns the numerator of x. It carries the sign of x.
func (x N) Num() int64 {
	return x.m
}

// Den returns the denominator of x. It is always positive.
func (x N) Den() int64 {
	return x.n + 1
}

// IsValid returns true if x is a valid rational number.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x N) IsValid() bool {
	return x.n >= 0 && x.n != math.MaxInt64 && x.reduce() == x
}

// IsZero returns true if x is equal to 0.
func (x N) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x N) Sign() int {
	if x.m == 0 {
		return 0
	}
	if x.m < 0 {
		return -1
	}
	return 1
}

// Neg returns the negation of x, -x.
func (x N) Neg() N {
	return N{-x.m, x.n}
}

// Inv returns the inverse of x, 1/x.
// Inv panics if x is zero.
func (x N) Inv() N {
	if x.m == 0 {
		panic(ErrDivByZero)
	}
	sgn := int64(x.Sign())
	return N{sgn * x.Den(), abs64(x.m) - 1}
}

// Abs returns the absolute value of x, |x|.
func (x N) Abs() N {
	return N{abs64(x.m), x.n}
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
//
// Cmp never overflows: the cross-products |num|*den are taken with 128-bit
// precision and compared word by word, so it is safe even where the naive
// int64 products would wrap.
func (x N) Cmp(y N) int {
	if x == y {
		return 0
	}
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	// Same nonzero sign; denominators are positive, so the order of the
	// magnitudes |mx|*ny vs |my|*nx decides, inverted for negatives.
	xh, xl := bits.Mul64(uint64(abs64(x.m)), uint64(y.Den()))
	yh, yl := bits.Mul64(uint64(abs64(y.m)), uint64(x.Den()))
	c := cmp128(xh, xl, yh, yl)
	if sx < 0 {
		return -c
	}
	return c
}

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x N) TryAdd(y N) (N, error) {
	mx, nx := x.Num(), x.Den()
	my, ny := y.Num(), y.Den()

	if mx == 0 {
		return y, nil
	}
	if my == 0 {
		return x, nil
	}

	// Scale each numerator by the other denominator's co-factor only, so the
	// intermediate terms stay as small as the shared factor allows:
	// x + y = (mx*ry + my*rx) / (rx*ny), with g = GCD(nx, ny).
	g := GCD(nx, ny)
	rx, ry := nx/g, ny/g

	// Use naive arithmetic if we can.
	if abs64(mx) < math.MaxInt32 && abs64(my) < math.MaxInt32 && nx < math.MaxInt32 && ny < math.MaxInt32 {
		// Every factor fits in 31 bits, so each product fits in 62 bits and
		// their sum in 63: nothing here can overflow.
		return Try(mx*ry+my*rx, rx*ny)
	}

	// The intermediate terms might not fit in 64 bits, so take the products
	// with 128-bit precision. From here on out, h is for "high bits" and
	// l is for "low bits".
	s1, s2 := sgn64(mx), sgn64(my)
	m1h, m1l := bits.Mul64(uint64(abs64(mx)), uint64(ry))
	m2h, m2l := bits.Mul64(uint64(abs64(my)), uint64(rx))
	nh, nl := bits.Mul64(uint64(rx), uint64(ny))

	// Combine the terms into the full numerator m (mh:ml).
	//
	// When the signs agree the magnitudes add and the shared sign carries
	// over. When they differ, the larger magnitude decides the sign and the
	// smaller is subtracted from it.
	var ml, mh uint64
	sgn := int64(1)
	if s1 == s2 {
		if s1 < 0 {
			sgn = -1
		}
		var mlc, mhc uint64 // c is for "carry"
		ml, mlc = bits.Add64(m1l, m2l, 0)
		mh, mhc = bits.Add64(m1h, m2h, mlc)
		if mhc != 0 {
			return N{}, ErrNumOverflow
		}
	} else {
		if s2 > 0 {
			sgn = -sgn
		}
		// ensure |m1| >= |m2| so the subtraction cannot borrow
		if m2h > m1h || (m2h == m1h && m2l > m1l) {
			m1h, m2h = m2h, m1h
			m1l, m2l = m2l, m1l
			sgn = -sgn
		}
		var mlb uint64 // b is for "borrow"
		ml, mlb = bits.Sub64(m1l, m2l, 0)
		mh, _ = bits.Sub64(m1h, m2h, mlb)
	}

	// Any factor still shared between numerator and denominator divides g,
	// so reduce by GCD(m mod g, g) before the final overflow checks.
	if g > 1 {
		if d := uint64(GCD(int64(mod128(mh, ml, uint64(g))), g)); d > 1 {
			mh, ml = div128(mh, ml, d)
			nh, nl = div128(nh, nl, d)
		}
	}
	if mh != 0 || ml > math.MaxInt64 {
		return N{}, ErrNumOverflow
	}
	if nh != 0 || nl > math.MaxInt64 {
		return N{}, ErrDenOverflow
	}
	return Try(sgn*int64(ml), int64(nl))
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x N) Add(y N) N {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and a non-nil error if the result would overflow.
func (x N) TrySub(y N) (N, error) {
	return x.TryAdd(y.Neg())
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y) == x.Add(y.Neg())
func (x N) Sub(y N) N {
	return x.Add(y.Neg())
}

// TryMul multiplies x and y and returns the result.
// TryMul returns 0 and a non-nil error if the result would overflow.
func (x N) TryMul(y N) (N, error) {
	// Compute the sign of the result.
	sgn := int64(x.Sign() * y.Sign())
	if sgn == 0 {
		return N{}, nil
	}
	// We can ignore the operand signs now that we know the result sign, so we
	// work only with absolute values for simplicity.
	mx, nx := abs64(x.Num()), x.Den()
	my, ny := abs64(y.Num()), y.Den()

	// Next, we reduce the fractions by their cross-GCDs to avoid overflow.
	// Even though x and y are already reduced, their product may introduce
	// factors from each that aren't present in the other.
	// Since the result is going to be (mx*my)/(nx*ny), we can divide out
	// GCD(mx, ny) and GCD(my, nx) without changing the value.
	if d := GCD(mx, ny); d != 1 {
		mx, ny = mx/d, ny/d
	}
	if d := GCD(my, nx); d != 1 {
		my, nx = my/d, nx/d
	}

	// Use naive multiplication if we can.
	if mx < math.MaxInt32 && my < math.MaxInt32 && nx < math.MaxInt32 && ny < math.MaxInt32 {
		// See TryAdd for the bit-length analysis; 31-bit factors keep both
		// products within 62 bits.
		return Try(sgn*mx*my, nx*ny)
	}

	// At this point, we can't trust naive multiplication to not overflow, so
	// we use wide arithmetic to check for overflow.
	mh, ml := bits.Mul64(uint64(mx), uint64(my))
	if mh > 0 || ml > math.MaxInt64 {
		return N{}, ErrNumOverflow
	}
	nh, nl := bits.Mul64(uint64(nx), uint64(ny))
	if nh > 0 || nl > math.MaxInt64 {
		return N{}, ErrDenOverflow
	}
	return Try(sgn*int64(ml), int64(nl))
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x N) Mul(y N) N {
	z, err := x.TryMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and a non-nil error if y is zero or the result would
// overflow.
func (x N) TryDiv(y N) (N, error) {
	if y.m == 0 {
		return N{}, ErrDivByZero
	}
	// Inverting y turns Mul's cross-GCDs into the numerator/numerator and
	// denominator/denominator pre-reductions wanted for division.
	return x.TryMul(y.Inv())
}

// Div divides x by y and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y) == x.Mul(y.Inv())
func (x N) Div(y N) N {
	return x.Mul(y.Inv())
}

// TryPow raises x to the power e and returns the result.
//
// Any base raised to the power 0 is 1, including zero. A negative exponent
// inverts the base first, so TryPow returns an error for a zero base.
// TryPow also returns an error if either word of the result would overflow.
func (x N) TryPow(e int) (N, error) {
	if e == 0 {
		return N{1, 0}, nil
	}
	// Inverting preserves the sign, so the result is negative exactly when
	// the base is negative and the exponent odd.
	neg := x.m < 0 && e&1 != 0
	a, b := uint64(abs64(x.m)), uint64(x.Den())
	ue := uint64(e)
	if e < 0 {
		if x.m == 0 {
			return N{}, ErrDivByZero
		}
		a, b = b, a
		ue = -uint64(e)
	}
	// x is in lowest terms, so a^e and b^e are coprime as well and no final
	// reduction is needed; Try still runs it as a safety net.
	num, ok := pow64(a, ue)
	if !ok || num > math.MaxInt64 {
		return N{}, ErrNumOverflow
	}
	den, ok := pow64(b, ue)
	if !ok || den > math.MaxInt64 {
		return N{}, ErrDenOverflow
	}
	if neg {
		return Try(-int64(num), int64(den))
	}
	return Try(int64(num), int64(den))
}

// Pow is like TryPow but panics instead of returning an error.
func (x N) Pow(e int) N {
	z, err := x.TryPow(e)
	if err != nil {
		panic(err)
	}
	return z
}

// Log returns the natural logarithm of x as a float64.
// It is math.Inf(-1) for zero and math.NaN for negative values.
//
// The component logarithms are taken separately, log(num) - log(den), so the
// result stays finite even where num/den would not survive the division.
func (x N) Log() float64 {
	if x.m < 0 {
		return math.NaN()
	}
	if x.m == 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(x.Num())) - math.Log(float64(x.Den()))
}

// Log10 returns the base-10 logarithm of x, with the same edge cases as Log.
func (x N) Log10() float64 {
	if x.m < 0 {
		return math.NaN()
	}
	if x.m == 0 {
		return math.Inf(-1)
	}
	return math.Log10(float64(x.Num())) - math.Log10(float64(x.Den()))
}

// LogBase returns the logarithm of x in the given base, with the same edge
// cases as Log.
func (x N) LogBase(base float64) float64 {
	return x.Log() / math.Log(base)
}

// Min returns the smaller of x and y.
func Min(x, y N) N {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y N) N {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// String returns a string representation of x: just the numerator when the
// denominator is 1, m/n otherwise.
func (x N) String() string {
	if x.n == 0 {
		return fmt.Sprintf("%d", x.m)
	}
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// reduce returns x in lowest terms.
func (x N) reduce() N {
	if x.m == 0 {
		return N{}
	}
	sgn := int64(x.Sign())
	m, n := abs64(x.Num()), x.Den()
	d := GCD(m, n)
	return N{sgn * (m / d), (n / d) - 1}
}

// cmp128 compares the 128-bit values xh:xl and yh:yl, high words first.
func cmp128(xh, xl, yh, yl uint64) int {
	switch {
	case xh != yh:
		if xh < yh {
			return -1
		}
		return 1
	case xl != yl:
		if xl < yl {
			return -1
		}
		return 1
	}
	return 0
}

// mod128 returns (h:l) mod d.
func mod128(h, l, d uint64) uint64 {
	_, rem := bits.Div64(h%d, l, d)
	return rem
}

// div128 returns (h:l) / d as a 128-bit quotient.
// The division must be exact or the low word is truncated.
func div128(h, l, d uint64) (uint64, uint64) {
	qh := h / d
	ql, _ := bits.Div64(h%d, l, d)
	return qh, ql
}

// pow64 returns b^e by binary exponentiation, with e > 0.
// It reports false if the result does not fit in 64 bits.
func pow64(b uint64, e uint64) (uint64, bool) {
	r := uint64(1)
	for e > 0 {
		if e&1 == 1 {
			h, l := bits.Mul64(r, b)
			if h != 0 {
				return 0, false
			}
			r = l
		}
		e >>= 1
		if e == 0 {
			break
		}
		h, l := bits.Mul64(b, b)
		if h != 0 {
			return 0, false
		}
		b = l
	}
	return r, true
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}
