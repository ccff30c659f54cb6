package rational

import (
	"github.com/shopspring/decimal"
)

// FromDecimal returns d exactly as coefficient / 10^-exponent in lowest terms.
// It fails with ErrScaleOverflow when either side does not fit in an int64.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	coefficient := d.Coefficient()
	if !coefficient.IsInt64() {
		return Rational{}, newError(ErrScaleOverflow)
	}
	n := coefficient.Int64()
	exp := int(d.Exponent())

	if exp < 0 {
		if -exp > MaxDecimalDigits {
			return Rational{}, newError(ErrScaleOverflow)
		}
		return New(n, pow10[-exp]), nil
	}

	if exp > MaxDecimalDigits {
		if n == 0 {
			return Zero, nil
		}
		return Rational{}, newError(ErrScaleOverflow)
	}
	scale := pow10[exp]
	if scale > 1 && (n == minInt64 || abs64(n) > maxInt64/scale) {
		return Rational{}, newError(ErrScaleOverflow)
	}
	return FromInt(n * scale), nil
}

// Decimal returns r rounded half away from zero to places digits after the
// decimal point.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n, d := r.parts()
	return decimal.New(n, 0).DivRound(decimal.New(d, 0), places)
}
