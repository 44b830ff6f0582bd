package evaluator

import (
	"errors"

	"github.com/ezrec/cordic/translate"
)

var f = translate.From

var (
	ErrUnknownOperation = errors.New(f("unknown operation"))
	ErrOperandCount     = errors.New(f("operand count"))
)

// ErrOperand reports a rejected operand.
type ErrOperand struct {
	Operation Operation
	Index     int
	Name      string
	Err       error
}

func (err *ErrOperand) Error() string {
	return f("%v %v: %v", err.Operation, err.Name, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrHardware reports an accelerator fault during evaluation.
type ErrHardware struct {
	Operation Operation
	Err       error
}

func (err *ErrHardware) Error() string {
	return f("%v: hardware fault: %v", err.Operation, err.Err)
}

func (err *ErrHardware) Unwrap() error {
	return err.Err
}
