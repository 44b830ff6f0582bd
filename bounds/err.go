package bounds

import (
	"errors"

	"github.com/ezrec/cordic/translate"
)

var f = translate.From

var (
	ErrDegenerate = errors.New(f("degenerate input"))
)

// ErrOutOfRange reports a value outside its interval.
type ErrOutOfRange struct {
	Value    float64
	Interval Interval
}

func (err *ErrOutOfRange) Error() string {
	return f("%v is not in range %v", err.Value, err.Interval)
}
