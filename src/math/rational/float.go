package rational

import (
	"math"
)

// TryFromFloat64 converts f into a fraction over the smallest power of ten
// that makes f whole, then reduces it. A scaled value counts as whole when it
// is within a few ulps of the nearest integer, so the decimal digits of a
// float64 literal come back as written: 0.1 is 1/10, not 3602879701896397/2^55.
//
// The conversion might incur a precision loss. It fails with ErrNotFinite for
// NaN and infinities, and with ErrScaleOverflow when no power of ten up to
// 10^MaxDecimalDigits works or the scaled value leaves the int64 range.
func TryFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, newError(ErrNotFinite)
	}

	for digits := 0; digits <= MaxDecimalDigits; digits++ {
		t := pow10[digits]
		scaled := f * float64(t)
		if math.Abs(scaled) >= wrapInt64Float {
			break
		}
		if whole, ok := nearInteger(scaled); ok {
			return reduceScaled(int64(whole), t)
		}
	}
	return Rational{}, newError(ErrScaleOverflow)
}

// FromFloat64 is TryFromFloat64 but panics on error.
func FromFloat64(f float64) Rational {
	r, err := TryFromFloat64(f)
	orPanic(err)
	return r
}

// TryFromFloat32 is TryFromFloat64 for single precision. Scaling happens in
// float32 and a scaled value is whole only when it equals its truncation.
//
// The conversion might incur a precision loss.
func TryFromFloat32(f float32) (Rational, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Rational{}, newError(ErrNotFinite)
	}

	for digits := 0; digits <= MaxDecimalDigits; digits++ {
		t := pow10[digits]
		scaled := f * float32(t)
		if math.Abs(float64(scaled)) >= wrapInt64Float {
			break
		}
		whole := float32(math.Trunc(float64(scaled)))
		if scaled == whole {
			return reduceScaled(int64(whole), t)
		}
	}
	return Rational{}, newError(ErrScaleOverflow)
}

// FromFloat32 is TryFromFloat32 but panics on error.
func FromFloat32(f float32) Rational {
	r, err := TryFromFloat32(f)
	orPanic(err)
	return r
}

func nearInteger(x float64) (float64, bool) {
	whole := math.Round(x)
	return whole, math.Abs(x-whole) <= float64Tolerance*math.Abs(x)
}

func reduceScaled(fk, t int64) (Rational, error) {
	k := gcd(fk, t)
	return TryNew(fk/k, t/k)
}
