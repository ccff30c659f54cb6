// Package rational implements exact fractions with int64 numerator and
// denominator, always kept in lowest terms with the sign on the numerator.
//
// Overflow of the int64 fields is not detected: it wraps the way int64
// arithmetic does.
package rational

import (
	"golang.org/x/exp/constraints"
)

// Rational is an immutable fraction num/den. Values are built with New,
// FromInt, FromFloat32, FromFloat64 or arithmetic on other values, all of
// which reduce to lowest terms. The zero value reads as 0/1.
type Rational struct {
	num int64
	den int64
}

var (
	Zero = FromInt(0)
	One  = FromInt(1)
)

// TryNew returns n/d in lowest terms, or ErrDivisionByZero if d is 0.
func TryNew(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, newError(ErrDivisionByZero)
	}
	// d != 0 so g != 0
	g := abs64(gcd(n, d))
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}
	return Rational{num: n, den: d}, nil
}

// New returns n/d in lowest terms. It panics with ErrDivisionByZero if d is 0.
func New(n, d int64) Rational {
	r, err := TryNew(n, d)
	orPanic(err)
	return r
}

// FromInt returns i/1.
func FromInt(i int64) Rational {
	return New(i, 1)
}

// FromInteger returns i/1 for any integer type. Unsigned values above
// math.MaxInt64 wrap.
func FromInteger[T constraints.Integer](i T) Rational {
	return FromInt(int64(i))
}

func (r Rational) parts() (int64, int64) {
	if r.den == 0 {
		return 0, 1
	}
	return r.num, r.den
}

func (r Rational) Numerator() int64 {
	n, _ := r.parts()
	return n
}

func (r Rational) Denominator() int64 {
	_, d := r.parts()
	return d
}
