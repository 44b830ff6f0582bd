package cordic

import (
	"fmt"
)

// Mode selects the coordinate system.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_LINEAR     = Mode(0) // linear
	MODE_CIRCULAR   = Mode(1) // circular
	MODE_HYPERBOLIC = Mode(2) // hyperbolic
)

// Function selects which register is driven to zero.
type Function int

//go:generate go tool stringer -linecomment -type=Function
const (
	FUNC_ROTATION  = Function(0) // rotation
	FUNC_VECTORING = Function(1) // vectoring
)

const (
	MPS_MAX = 15 // Largest magnitude prescale.
)

// Control is the coprocessor control word.
type Control struct {
	Mode     Mode
	Function Function
	Mps      uint // X/Y results are shifted right by Mps bits.
}

// Validate checks the control word fields.
func (ctl Control) Validate() (err error) {
	switch ctl.Mode {
	case MODE_LINEAR, MODE_CIRCULAR, MODE_HYPERBOLIC:
	default:
		err = ErrMode
		return
	}

	switch ctl.Function {
	case FUNC_ROTATION, FUNC_VECTORING:
	default:
		err = ErrFunction
		return
	}

	if ctl.Mps > MPS_MAX {
		err = ErrPrescale
		return
	}

	return
}

// String returns the control word as mode.function.mps.
func (ctl Control) String() string {
	return fmt.Sprintf("%v.%v.%d", ctl.Mode, ctl.Function, ctl.Mps)
}
