// Package bigrat provides exact rational numbers with arbitrary-precision
// backing. See the R type and New function for details.
//
// Overflow cannot occur, so unlike the sibling package rat64 none of the
// arithmetic here is checked; division by zero is the only failure mode.
package bigrat

import (
	"errors"
	"math"
	"math/big"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero   = errors.New("denominator is zero")
	ErrDivByZero = errors.New("division by zero")
)

// intOne is shared by denominator reads and must never be mutated.
var intOne = big.NewInt(1)

// R is a rational number with arbitrary-precision numerator and denominator,
// always kept in lowest terms. The numerator carries the sign and the
// denominator is always positive.
//
// The zero value of R reads as 0/1 and is valid: a denominator word that was
// never set is treated as 1. Values are immutable once constructed; every
// operation returns a new value, so R values can be freely copied and shared.
// Use Eq or Cmp to compare them, not ==.
type R struct {
	m big.Int // numerator
	n big.Int // denominator; a zero word reads as 1
}

// Zero returns the rational number 0/1.
func Zero() R {
	return R{}
}

// One returns the rational number 1/1.
func One() R {
	var v R
	v.m.SetInt64(1)
	v.n.SetInt64(1)
	return v
}

// Try creates a new rational number with the given numerator and denominator,
// reduced to lowest terms. A negative denominator is allowed; its sign moves
// onto the numerator. Try returns an error if the denominator is zero.
// The arguments are not retained.
func Try(num, den *big.Int) (R, error) {
	if den.Sign() == 0 {
		return R{}, ErrDenZero
	}
	return normalize(num, den), nil
}

// New is like Try but panics instead of returning an error.
func New(num, den *big.Int) R {
	v, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return v
}

// NewInt creates a new rational number from int64 numerator and denominator.
// Like New, it panics if the denominator is zero.
func NewInt(num, den int64) R {
	return New(big.NewInt(num), big.NewInt(den))
}

// Num returns a copy of the numerator of x. It carries the sign of x.
func (x R) Num() *big.Int {
	return new(big.Int).Set(&x.m)
}

// Den returns a copy of the denominator of x. It is always positive.
func (x R) Den() *big.Int {
	return new(big.Int).Set(x.den())
}

// IsZero returns true if x is equal to 0.
func (x R) IsZero() bool {
	return x.m.Sign() == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x R) Sign() int {
	return x.m.Sign()
}

// Neg returns the negation of x, -x.
func (x R) Neg() R {
	var v R
	v.m.Neg(&x.m)
	v.n.Set(x.den())
	return v
}

// Abs returns the absolute value of x, |x|.
func (x R) Abs() R {
	var v R
	v.m.Abs(&x.m)
	v.n.Set(x.den())
	return v
}

// Inv returns the inverse of x, 1/x.
// Inv panics if x is zero.
func (x R) Inv() R {
	if x.m.Sign() == 0 {
		panic(ErrDivByZero)
	}
	return normalize(x.den(), &x.m)
}

// Eq returns true if x and y represent the same rational number.
// Values are canonical, so this coincides with mathematical equality.
func (x R) Eq(y R) bool {
	return x.m.Cmp(&y.m) == 0 && x.den().Cmp(y.den()) == 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// Denominators are positive, so plain cross-multiplication preserves order.
func (x R) Cmp(y R) int {
	a := new(big.Int).Mul(&x.m, y.den())
	b := new(big.Int).Mul(&y.m, x.den())
	return a.Cmp(b)
}

// Add adds x and y and returns the result.
func (x R) Add(y R) R {
	xd, yd := x.den(), y.den()

	// Scale each numerator by the other denominator's co-factor only, so the
	// intermediate products stay as small as the shared factor allows:
	// x + y = (mx*ry + my*rx) / (rx*yd), with g = GCD(xd, yd).
	g := new(big.Int).GCD(nil, nil, xd, yd)
	rx := new(big.Int).Quo(xd, g)
	ry := new(big.Int).Quo(yd, g)

	num := new(big.Int).Mul(&x.m, ry)
	num.Add(num, ry.Mul(&y.m, rx))
	den := rx.Mul(rx, yd)
	return normalize(num, den)
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y) == x.Add(y.Neg())
func (x R) Sub(y R) R {
	return x.Add(y.Neg())
}

// Mul multiplies x and y and returns the result.
func (x R) Mul(y R) R {
	// Even though x and y are already reduced, their product may introduce
	// factors from each that aren't present in the other. Since the result
	// is going to be (mx*my)/(nx*ny), we can divide out GCD(mx, ny) and
	// GCD(my, nx) before multiplying to keep the factors small.
	xm := new(big.Int).Set(&x.m)
	yd := new(big.Int).Set(y.den())
	if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(xm), yd); g.Cmp(intOne) > 0 {
		xm.Quo(xm, g)
		yd.Quo(yd, g)
	}
	ym := new(big.Int).Set(&y.m)
	xd := new(big.Int).Set(x.den())
	if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ym), xd); g.Cmp(intOne) > 0 {
		ym.Quo(ym, g)
		xd.Quo(xd, g)
	}
	return normalize(xm.Mul(xm, ym), xd.Mul(xd, yd))
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and a non-nil error if y is zero.
func (x R) TryDiv(y R) (R, error) {
	if y.m.Sign() == 0 {
		return R{}, ErrDivByZero
	}
	// Inverting y turns Mul's cross-GCDs into the numerator/numerator and
	// denominator/denominator pre-reductions wanted for division.
	return x.Mul(y.Inv()), nil
}

// Div divides x by y and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y) == x.Mul(y.Inv())
func (x R) Div(y R) R {
	return x.Mul(y.Inv())
}

// TryPow raises x to the power e and returns the result.
//
// Any base raised to the power 0 is 1, including zero. A negative exponent
// inverts the base first, so TryPow returns an error for a zero base.
func (x R) TryPow(e int) (R, error) {
	if e == 0 {
		return One(), nil
	}
	num := new(big.Int).Set(&x.m)
	den := new(big.Int).Set(x.den())
	ue := uint64(e)
	if e < 0 {
		if num.Sign() == 0 {
			return R{}, ErrDivByZero
		}
		num, den = den, num
		ue = -uint64(e)
	}
	be := new(big.Int).SetUint64(ue)
	num.Exp(num, be, nil)
	den.Exp(den, be, nil)
	// x is in lowest terms, so num^e and den^e are coprime as well;
	// normalize only moves the sign when the base was inverted.
	return normalize(num, den), nil
}

// Pow is like TryPow but panics instead of returning an error.
func (x R) Pow(e int) R {
	v, err := x.TryPow(e)
	if err != nil {
		panic(err)
	}
	return v
}

// Log returns the natural logarithm of x as a float64.
// It is math.Inf(-1) for zero and math.NaN for negative values.
//
// The component logarithms are taken separately, log(num) - log(den), so the
// result stays finite even for components far outside the float64 range.
func (x R) Log() float64 {
	s := x.m.Sign()
	if s < 0 {
		return math.NaN()
	}
	if s == 0 {
		return math.Inf(-1)
	}
	return logInt(&x.m) - logInt(x.den())
}

// Log10 returns the base-10 logarithm of x, with the same edge cases as Log.
func (x R) Log10() float64 {
	return x.Log() / math.Ln10
}

// LogBase returns the logarithm of x in the given base, with the same edge
// cases as Log.
func (x R) LogBase(base float64) float64 {
	return x.Log() / math.Log(base)
}

// Min returns the smaller of x and y.
func Min(x, y R) R {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y R) R {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// String returns a string representation of x: just the numerator when the
// denominator is 1, m/n otherwise.
func (x R) String() string {
	d := x.den()
	if d.Cmp(intOne) == 0 {
		return x.m.String()
	}
	return x.m.String() + "/" + d.String()
}

// den returns the denominator word, reading an unset word as 1.
// Callers must not mutate the result.
func (x *R) den() *big.Int {
	if x.n.Sign() == 0 {
		return intOne
	}
	return &x.n
}

// normalize returns num/den in lowest terms, with the sign on the numerator.
// den must be nonzero. The arguments are not retained.
func normalize(num, den *big.Int) R {
	var v R
	if num.Sign() == 0 {
		v.n.SetInt64(1)
		return v
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	v.m.Quo(num, g)
	v.n.Quo(den, g)
	if v.n.Sign() < 0 {
		v.m.Neg(&v.m)
		v.n.Neg(&v.n)
	}
	return v
}

// logInt returns the natural logarithm of a positive integer that may be far
// outside the float64 range, via its mantissa-exponent decomposition.
func logInt(v *big.Int) float64 {
	var mant big.Float
	exp := new(big.Float).SetInt(v).MantExp(&mant)
	f, _ := mant.Float64()
	return math.Log(f) + float64(exp)*math.Ln2
}
