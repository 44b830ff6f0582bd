package dispatch

import (
	"errors"

	"github.com/ezrec/cordic/evaluator"
	"github.com/ezrec/cordic/translate"
)

var f = translate.From

var (
	ErrUnknownOperation = evaluator.ErrUnknownOperation
	ErrNoOperation      = errors.New(f("no operation selected"))
	ErrExpression       = errors.New(f("expression is not a number"))
)

// ErrInputParse reports operand text that is not a number.
type ErrInputParse struct {
	Text string
	Err  error
}

func (err *ErrInputParse) Error() string {
	return f("%q: %v", err.Text, err.Err)
}

func (err *ErrInputParse) Unwrap() error {
	return err.Err
}
