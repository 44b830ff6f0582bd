// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package evaluator computes each operation twice, on the fixed-point
// accelerator and on the floating-point reference, and returns both results
// in the same unit.
package evaluator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math"
)

// Hardware is the fixed-point accelerator. Angles are Q31 words where 2^31
// is π; see the accel package for the formats of each result.
type Hardware interface {
	Park(angle, alpha, beta uint32) (id, iq uint32, err error)
	Sin(angle uint32) (uint32, error)
	Cos(angle uint32) (uint32, error)
	Tan(angle uint32) (uint32, error)
	ArcTan(x, y uint32) (uint32, error)
	Sinh(angle uint32) (uint32, error)
	Cosh(angle uint32) (uint32, error)
	Tanh(angle uint32) (uint32, error)
	ArcTanh(x, y uint32) (uint32, error)
	Sqrt(value uint32) (uint32, error)
}

// Software is the floating-point reference. Angles are radians.
type Software interface {
	Sin(x float64) float64
	Cos(x float64) float64
	Tan(x float64) float64
	Atan2(y, x float64) float64
	Sinh(x float64) float64
	Cosh(x float64) float64
	Tanh(x float64) float64
	Atanh(x float64) float64
	Sqrt(x float64) float64
	ParkQ31(alpha, beta, sin, cos uint32) (id, iq uint32)
}

// Result holds both backends' answers, in Unit.
type Result struct {
	Operation Operation
	Unit      Unit
	Names     []string  // Component names, when there is more than one.
	Hardware  []float64 // Accelerator result.
	Software  []float64 // Reference result.
}

// Evaluator pairs an accelerator with a reference library.
type Evaluator struct {
	Verbose  bool // Set to enable verbose logging.
	Hardware Hardware
	Software Software
}

var _evaluator_defines = map[string]string{
	"PI":            fmt.Sprintf("%v", math.Pi),
	"INPUT_SCALING": fmt.Sprintf("%v", INPUT_SCALING),
	"ANGLE_MAX":     fmt.Sprintf("%v", IN_SIN_COS_MAX),
	"TAN_MAX":       fmt.Sprintf("%v", IN_TAN_MAX),
	"ATAN_MAX":      fmt.Sprintf("%v", IN_ATAN_MAX),
	"HYP_MAX":       fmt.Sprintf("%v", IN_HYP_MAX),
	"ATANH_MAX":     fmt.Sprintf("%v", IN_ATANH_MAX),
}

// NewEvaluator creates an evaluator over the two backends.
func NewEvaluator(hw Hardware, sw Software) (ev *Evaluator) {
	ev = &Evaluator{
		Hardware: hw,
		Software: sw,
	}
	return
}

// Defines returns the named constants of the evaluator.
func (ev *Evaluator) Defines() iter.Seq2[string, string] {
	return maps.All(_evaluator_defines)
}

// Operations iterates over every known operation in selector order.
func (ev *Evaluator) Operations() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for n := range descriptors {
			if !yield(Operation(n)) {
				return
			}
		}
	}
}

// Operands returns the operands op requires, in the order they are supplied.
func (ev *Evaluator) Operands(op Operation) (operands []Operand, err error) {
	if !op.Valid() {
		err = ErrUnknownOperation
		return
	}

	operands = descriptors[op].operands
	return
}

// Check validates operand index of op.
func (ev *Evaluator) Check(op Operation, index int, value float64) (err error) {
	operands, err := ev.Operands(op)
	if err != nil {
		return
	}

	if index < 0 || index >= len(operands) {
		err = ErrOperandCount
		return
	}

	operand := operands[index]
	err = operand.Interval.Check(value)
	if err != nil {
		err = &ErrOperand{Operation: op, Index: index, Name: operand.Name, Err: err}
		return
	}

	return
}

// Evaluate validates every operand, then runs op on the accelerator and on
// the reference. Nothing is computed unless all operands are in range.
func (ev *Evaluator) Evaluate(op Operation, operands ...float64) (result Result, err error) {
	if !op.Valid() {
		err = ErrUnknownOperation
		return
	}

	desc := &descriptors[op]
	if len(operands) != len(desc.operands) {
		err = ErrOperandCount
		return
	}

	for n, value := range operands {
		err = ev.Check(op, n, value)
		if err != nil {
			return
		}
	}

	hw, sw, err := desc.eval(ev, operands)
	if err != nil {
		err = &ErrHardware{Operation: op, Err: err}
		return
	}

	result = Result{
		Operation: op,
		Unit:      desc.unit,
		Names:     desc.names,
		Hardware:  hw,
		Software:  sw,
	}

	if ev.Verbose {
		log.Printf("evaluator: %v%v -> hardware %v, software %v", op, operands, hw, sw)
	}

	return
}

// Subject returns the label used when reporting op's results.
func (ev *Evaluator) Subject(op Operation) string {
	if !op.Valid() {
		return op.String()
	}
	return descriptors[op].subject
}
