package rational

import (
	"golang.org/x/exp/slices"
)

// Equal compares numerator and denominator. Because every constructor
// reduces, this is value equality.
func (r Rational) Equal(b Rational) bool {
	na, da := r.parts()
	nb, db := b.parts()
	return na == nb && da == db
}

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than b.
func (r Rational) Cmp(b Rational) int {
	na, da := r.parts()
	nb, db := b.parts()
	// denominators are positive, cross multiplying keeps the order
	x, y := na*db, nb*da
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (r Rational) Less(b Rational) bool {
	return r.Cmp(b) < 0
}

func compare(a, b Rational) int {
	return a.Cmp(b)
}

// Sort sorts rs in increasing order.
func Sort(rs []Rational) {
	slices.SortFunc(rs, compare)
}

// Min returns the smallest of rs. It panics if rs is empty.
func Min(rs ...Rational) Rational {
	return slices.MinFunc(rs, compare)
}

// Max returns the largest of rs. It panics if rs is empty.
func Max(rs ...Rational) Rational {
	return slices.MaxFunc(rs, compare)
}
