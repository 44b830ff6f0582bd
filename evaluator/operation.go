package evaluator

import (
	"strconv"
)

// Operation selects one of the accelerated functions.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_PARK_TRANSFORM  = Operation(0) // park transform
	OP_SINE            = Operation(1) // sine
	OP_COSINE          = Operation(2) // cosine
	OP_TANGENT         = Operation(3) // tangent
	OP_ARC_TANGENT     = Operation(4) // arc tangent
	OP_HYP_SINE        = Operation(5) // hyperbolic sine
	OP_HYP_COSINE      = Operation(6) // hyperbolic cosine
	OP_HYP_TANGENT     = Operation(7) // hyperbolic tangent
	OP_HYP_ARC_TANGENT = Operation(8) // hyperbolic arc tangent
	OP_SQUARE_ROOT     = Operation(9) // square root
)

// ParseOperation converts a menu selector to an Operation.
func ParseOperation(text string) (op Operation, err error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		err = ErrUnknownOperation
		return
	}

	op = Operation(n)
	if !op.Valid() {
		err = ErrUnknownOperation
		return
	}

	return
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	return op >= 0 && int(op) < len(descriptors)
}

// Unit is the natural unit of an operation's result.
type Unit int

const (
	UNIT_RATIO  = Unit(0)
	UNIT_DEGREE = Unit(1)
)

func (u Unit) String() string {
	if u == UNIT_DEGREE {
		return "degree"
	}
	return "ratio"
}
