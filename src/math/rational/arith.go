package rational

// Add returns r + b.
func (r Rational) Add(b Rational) Rational {
	na, da := r.parts()
	nb, db := b.parts()
	return New(na*db+nb*da, da*db)
}

// Sub returns r - b.
func (r Rational) Sub(b Rational) Rational {
	na, da := r.parts()
	nb, db := b.parts()
	return New(na*db-nb*da, da*db)
}

// Mul returns r * b.
func (r Rational) Mul(b Rational) Rational {
	na, da := r.parts()
	nb, db := b.parts()
	return New(na*nb, da*db)
}

// Div returns r / b. It panics with ErrDivisionByZero if b is zero.
func (r Rational) Div(b Rational) Rational {
	na, da := r.parts()
	nb, db := b.parts()
	if nb == 0 {
		panic(newError(ErrDivisionByZero))
	}
	return New(na*db, da*nb)
}

// Mod returns r - q*b where q is r/b truncated toward zero, so the result
// takes the sign of r: Mod(-7/2, 1) is -1/2. It panics with ErrDivisionByZero
// if b is zero.
func (r Rational) Mod(b Rational) Rational {
	na, da := r.parts()
	nb, db := b.parts()
	if nb == 0 {
		panic(newError(ErrDivisionByZero))
	}
	q := (na * db) / (nb * da)
	return r.Sub(FromInt(q).Mul(b))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	n, d := r.parts()
	return New(-n, d)
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	n, d := r.parts()
	return Rational{num: n, den: d}
}

// Inv returns 1/r. It panics with ErrDivisionByZero if r is zero.
func (r Rational) Inv() Rational {
	n, d := r.parts()
	if n == 0 {
		panic(newError(ErrDivisionByZero))
	}
	return New(d, n)
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	n, _ := r.parts()
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	n, _ := r.parts()
	return n == 0
}

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool {
	_, d := r.parts()
	return d == 1
}
