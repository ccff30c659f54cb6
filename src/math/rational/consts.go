package rational

const (
	// MaxDecimalDigits bounds the decimal-expansion search of FromFloat32 and
	// FromFloat64. 10^18 is the largest power of ten an int64 can hold.
	MaxDecimalDigits = 18

	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	// wrapInt64Float is 1 << 63. Any float at or past it in magnitude does
	// not fit in an int64 numerator.
	wrapInt64Float = float64(1 << 63)

	// Epsilon32 and Epsilon64 are the gaps between 1 and the next float:
	//	math.Nextafter(1.0, 2.0) - 1.0
	Epsilon32 = 1.1920928955078125e-07
	Epsilon64 = 2.220446049250313080847263336181640625e-16

	// float64Tolerance is the relative distance from an integer at which a
	// scaled float64 is treated as whole.
	float64Tolerance = 8 * Epsilon64
)

// siphash keys used by Hash. Fixed so hashes are stable across processes.
const (
	hashKey0 uint64 = 0x0706050403020100
	hashKey1 uint64 = 0x0f0e0d0c0b0a0908
)

var pow10 = [MaxDecimalDigits + 1]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}
