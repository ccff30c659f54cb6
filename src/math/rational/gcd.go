package rational

// gcd is the Euclidean greatest common divisor. Go's % truncates toward zero,
// so the result carries a sign when an operand is negative; callers take the
// absolute value. gcd(0, b) is b.
func gcd(a, b int64) int64 {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
