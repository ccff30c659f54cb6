package rational

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTry(t *testing.T) {
	require.NoError(t, Try(func() { New(1, 2) }))

	err := Try(func() { r(1, 2).Div(Zero) })
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.Contains(t, err.Error(), "rational: division by zero")

	err = Try(func() { panic("boom") })
	require.EqualError(t, err, "boom")
}

func TestCheckError(t *testing.T) {
	divide := func(a, b Rational) (q Rational, err error) {
		defer CheckError(&err)
		return a.Div(b), nil
	}

	q, err := divide(r(1, 2), r(1, 4))
	require.NoError(t, err)
	require.True(t, q.Equal(r(2, 1)))

	_, err = divide(r(1, 2), Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
}
