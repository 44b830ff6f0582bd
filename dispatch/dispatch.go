// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dispatch drives one operation at a time through selection, operand
// entry, evaluation and reporting.
package dispatch

import (
	"iter"
	"log"

	"github.com/ezrec/cordic/evaluator"
)

// Step is the outcome of one operator input.
type Step struct {
	State  State   // State reached by the input.
	Prompt string  // Prompt for the next operand, when State is STATE_AWAITING.
	Report *Report // Outcome, when State is STATE_REPORTED or STATE_REJECTED.
}

// Dispatcher is the operator-facing state machine.
type Dispatcher struct {
	Verbose    bool                 // Set to enable verbose logging.
	Evaluator  *evaluator.Evaluator // Evaluator of selected operations.
	Equate     map[string]string    // Constants visible to operand expressions.
	Transition func(from, to State) // Called on every state change, if set.

	state    State
	op       evaluator.Operation
	operands []float64
}

// NewDispatcher creates a dispatcher over an evaluator. Constants for
// operand expressions are added with Predefine.
func NewDispatcher(ev *evaluator.Evaluator) (d *Dispatcher) {
	d = &Dispatcher{
		Evaluator: ev,
		Equate:    map[string]string{},
	}
	return
}

// Predefine adds constants for operand expressions.
func (d *Dispatcher) Predefine(defines iter.Seq2[string, string]) {
	if d.Equate == nil {
		d.Equate = map[string]string{}
	}
	for key, value := range defines {
		d.Equate[key] = value
	}
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// Operation returns the selected operation, valid while awaiting operands.
func (d *Dispatcher) Operation() evaluator.Operation {
	return d.op
}

func (d *Dispatcher) moveTo(state State) {
	if d.Verbose {
		log.Printf("dispatch: %v -> %v", d.state, state)
	}
	if d.Transition != nil {
		d.Transition(d.state, state)
	}
	d.state = state
}

// reject reports err and returns to idle.
func (d *Dispatcher) reject(err error) (step Step) {
	d.moveTo(STATE_REJECTED)
	step = Step{
		State:  STATE_REJECTED,
		Report: &Report{Operation: d.op, Subject: d.Evaluator.Subject(d.op), Err: err},
	}
	d.Reset()
	return
}

// Reset abandons any pending operation.
func (d *Dispatcher) Reset() {
	d.operands = nil
	if d.state != STATE_IDLE {
		d.moveTo(STATE_IDLE)
	}
}

// prompt returns the prompt of the next operand.
func (d *Dispatcher) prompt() string {
	operands, _ := d.Evaluator.Operands(d.op)
	return operands[len(d.operands)].Prompt()
}

// Select parses a menu selector. A pending operation is abandoned.
func (d *Dispatcher) Select(text string) (step Step) {
	d.Reset()

	op, err := evaluator.ParseOperation(text)
	if err != nil {
		d.op = op
		return d.reject(err)
	}

	d.op = op
	d.moveTo(STATE_AWAITING)

	step = Step{
		State:  STATE_AWAITING,
		Prompt: d.prompt(),
	}
	return
}

// Supply parses and validates the next operand. When the last operand is
// accepted the operation is evaluated and reported.
func (d *Dispatcher) Supply(text string) (step Step) {
	if d.state != STATE_AWAITING {
		return d.reject(ErrNoOperation)
	}

	value, err := d.parseOperand(text)
	if err != nil {
		return d.reject(err)
	}

	err = d.Evaluator.Check(d.op, len(d.operands), value)
	if err != nil {
		return d.reject(err)
	}

	d.operands = append(d.operands, value)

	operands, _ := d.Evaluator.Operands(d.op)
	if len(d.operands) < len(operands) {
		step = Step{
			State:  STATE_AWAITING,
			Prompt: d.prompt(),
		}
		return
	}

	d.moveTo(STATE_EVALUATING)

	result, err := d.Evaluator.Evaluate(d.op, d.operands...)
	if err != nil {
		return d.reject(err)
	}

	d.moveTo(STATE_REPORTED)
	step = Step{
		State:  STATE_REPORTED,
		Report: &Report{Operation: d.op, Subject: d.Evaluator.Subject(d.op), Result: result},
	}
	d.Reset()

	return
}
