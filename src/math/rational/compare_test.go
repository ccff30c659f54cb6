package rational

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b Rational
		want int
	}{
		{r(1, 2), r(1, 3), 1},
		{r(1, 3), r(1, 2), -1},
		{r(2, 4), r(1, 2), 0},
		{r(-1, 2), r(1, 3), -1},
		{r(-1, 2), r(-2, 3), 1},
		{Zero, Rational{}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Cmp(tc.b))
			require.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

func TestSort(t *testing.T) {
	got := []Rational{r(3, 4), r(-1, 2), Zero, r(1, 3), r(5, 1)}
	Sort(got)

	want := []Rational{r(-1, 2), Zero, r(1, 3), r(3, 4), r(5, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestMinMax(t *testing.T) {
	rs := []Rational{r(3, 4), r(-1, 2), r(7, 8)}
	require.True(t, r(-1, 2).Equal(Min(rs...)))
	require.True(t, r(7, 8).Equal(Max(rs...)))
	require.Panics(t, func() { Min() })
}

func TestEqual(t *testing.T) {
	require.True(t, r(2, 4).Equal(r(1, 2)))
	require.True(t, r(1, -2).Equal(r(-1, 2)))
	require.False(t, r(1, 2).Equal(r(-1, 2)))
	// structural: an unreduced value is not equal to its reduced form
	require.False(t, Rational{num: 2, den: 4}.Equal(r(1, 2)))
}
