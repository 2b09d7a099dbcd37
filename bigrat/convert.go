package bigrat

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Conversion errors returned by functions in this file.
var (
	ErrNumOverflow = errors.New("numerator overflows the target type")
	ErrDenOverflow = errors.New("denominator overflows the target type")
	ErrNotFinite   = errors.New("float is not finite")
)

// integer matches every fixed-width built-in integer kind.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FromInt converts an integer of any built-in kind to the rational number
// v/1. The conversion is always exact.
func FromInt[T integer](v T) R {
	var r R
	if v >= 0 {
		r.m.SetUint64(uint64(v))
	} else {
		r.m.SetInt64(int64(v))
	}
	r.n.SetInt64(1)
	return r
}

// FromFloat64 extracts a rational number exactly equal to f.
// It returns an error for infinities and NaN.
func FromFloat64(f float64) (R, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return R{}, ErrNotFinite
	}
	return FromBigRat(r), nil
}

// FromBigRat converts a big.Rat to R. The argument is not retained.
func FromBigRat(r *big.Rat) R {
	// big.Rat is already normalized with a positive denominator
	var v R
	v.m.Set(r.Num())
	v.n.Set(r.Denom())
	return v
}

// Rat converts x to a new big.Rat.
func (x R) Rat() *big.Rat {
	return new(big.Rat).SetFrac(&x.m, x.den())
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation, which
// is an infinity when x is outside the float64 range.
func (x R) Float64() (v float64, exact bool) {
	return x.Rat().Float64()
}

// Decimal converts x to a fixed-precision decimal by dividing the numerator
// by the denominator with the decimal type's own division. Unlike Float64,
// the target type is bounded: Decimal returns ErrNumOverflow or
// ErrDenOverflow when a component exceeds its range, rather than saturating.
func (x R) Decimal() (decimal.Decimal, error) {
	m, n := &x.m, x.den()
	if !m.IsInt64() {
		return decimal.Decimal{}, ErrNumOverflow
	}
	if !n.IsInt64() {
		return decimal.Decimal{}, ErrDenOverflow
	}
	dm, err := decimal.New(m.Int64(), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting numerator: %w", err)
	}
	dn, err := decimal.New(n.Int64(), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting denominator: %w", err)
	}
	q, err := dm.Quo(dn)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("dividing numerator by denominator: %w", err)
	}
	return q, nil
}
