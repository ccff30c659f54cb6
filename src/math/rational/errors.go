package rational

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrScaleOverflow   = errors.New("decimal scale overflows int64")
	ErrNotFinite       = errors.New("value is not finite")
	ErrInvalidEncoding = errors.New("invalid rational encoding")
)

// newError wraps err with the name of the function that raised it.
func newError(err error) error {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("rational: %w", err)
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Errorf("rational: %w", err)
	}
	return fmt.Errorf("rational: %w in %s", err, fn.Name())
}

func orPanic(err error) {
	if err != nil {
		panic(err)
	}
}

// CheckError recovers a panic into *err. It must be deferred directly:
//
//	defer rational.CheckError(&err)
//
// Errors raised by this package keep their sentinel, so errors.Is still
// matches ErrDivisionByZero and friends.
func CheckError(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%+v", v)
	}
}

// Try runs fn and returns the error of any panic it raised.
func Try(fn func()) (err error) {
	defer CheckError(&err)
	fn()
	return nil
}
