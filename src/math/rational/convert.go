package rational

// Int returns num/den truncated toward zero. The fractional part is dropped.
func (r Rational) Int() int64 {
	n, d := r.parts()
	return n / d
}

// Float32 returns r at single precision. It may lose precision when num or
// den needs more than 24 bits.
func (r Rational) Float32() float32 {
	return float32(r.Float64())
}

// Float64 returns r at double precision. It may lose precision when num or
// den needs more than 53 bits.
func (r Rational) Float64() float64 {
	n, d := r.parts()
	return float64(n) / float64(d)
}
