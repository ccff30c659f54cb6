package rational

import (
	"testing"
)

var (
	benchRationalResult Rational
	benchFloatResult    float64
	benchUint64Result   uint64

	benchRational1 = New(355, 113)
	benchRational2 = New(-22, 7)
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = New(int64(i), 360)
	}
}

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = benchRational1.Add(benchRational2)
	}
}

func BenchmarkMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = benchRational1.Mul(benchRational2)
	}
}

func BenchmarkMod(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = benchRational1.Mod(benchRational2)
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = FromFloat64(3.14159)
	}
}

func BenchmarkFromFloat32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = FromFloat32(3.14159)
	}
}

func BenchmarkFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchRational1.Float64()
	}
}

func BenchmarkHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result = benchRational1.Hash()
	}
}
