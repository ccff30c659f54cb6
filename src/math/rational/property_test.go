package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const propertyBound = 1_000_000

func drawRational(t *rapid.T, label string) Rational {
	return drawBoundedRational(t, label, propertyBound)
}

func drawBoundedRational(t *rapid.T, label string, bound int64) Rational {
	n := rapid.Int64Range(-bound, bound).Draw(t, label+"_num").(int64)
	d := rapid.Int64Range(1, bound).Draw(t, label+"_den").(int64)
	if rapid.Bool().Draw(t, label+"_neg_den").(bool) {
		d = -d
	}
	return New(n, d)
}

func TestReductionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawRational(t, "v")
		require.Equal(t, int64(1), abs64(gcd(v.Numerator(), v.Denominator())))
		require.Positive(t, v.Denominator())
	})
}

func TestIntRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.Int64().Draw(t, "i").(int64)
		require.Equal(t, i, FromInt(i).Int())
	})
}

func TestFloat32RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := rapid.Float32Range(-propertyBound, propertyBound).Draw(t, "f").(float32)
		v, err := TryFromFloat32(f)
		if err != nil {
			require.ErrorIs(t, err, ErrScaleOverflow)
			return
		}
		diff := math.Abs(float64(v.Float32()) - float64(f))
		require.LessOrEqual(t, diff, 2*Epsilon32*math.Abs(float64(f)), "%v -> %s", f, v)
	})
}

func TestFloat64RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := rapid.Float64Range(-propertyBound, propertyBound).Draw(t, "f").(float64)
		v, err := TryFromFloat64(f)
		if err != nil {
			require.ErrorIs(t, err, ErrScaleOverflow)
			return
		}
		diff := math.Abs(v.Float64() - f)
		require.LessOrEqual(t, diff, 16*Epsilon64*math.Abs(f), "%v -> %s", f, v)
	})
}

func TestCommutativityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		b := drawRational(t, "b")
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Mul(b).Equal(b.Mul(a)))
	})
}

func TestIdentityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		require.True(t, a.Add(FromInt(0)).Equal(a))
		require.True(t, a.Mul(FromInt(1)).Equal(a))
	})
}

func TestCmpProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		b := drawRational(t, "b")
		require.Equal(t, a.Sub(b).Sign(), a.Cmp(b))
		require.Equal(t, a.Equal(b), a.Hash() == b.Hash() && a.Cmp(b) == 0)
	})
}

func TestModProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// small operands keep q*b and the final subtraction inside int64
		a := drawBoundedRational(t, "a", 1000)
		b := drawBoundedRational(t, "b", 1000)
		if b.IsZero() {
			return
		}
		m := a.Mod(b)
		// |m| < |b| and m is zero or shares the sign of a
		require.True(t, m.Abs().Less(b.Abs()))
		require.True(t, m.IsZero() || m.Sign() == a.Sign())
	})
}
