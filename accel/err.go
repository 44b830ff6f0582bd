package accel

import (
	"errors"

	"github.com/ezrec/cordic/translate"
)

var f = translate.From

var (
	ErrTimeout = errors.New(f("accelerator timeout"))
	ErrDomain  = errors.New(f("accelerator argument outside domain"))
)

// ErrPass reports a failed coprocessor pass.
type ErrPass struct {
	Control string
	Polls   int
	Err     error
}

func (err *ErrPass) Error() string {
	return f("pass %v after %d polls: %v", err.Control, err.Polls, err.Err)
}

func (err *ErrPass) Unwrap() error {
	return err.Err
}
