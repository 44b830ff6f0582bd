package dispatch

import (
	"fmt"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cordic/accel"
	"github.com/ezrec/cordic/bounds"
	"github.com/ezrec/cordic/cordic"
	"github.com/ezrec/cordic/evaluator"
	"github.com/ezrec/cordic/internal"
	"github.com/ezrec/cordic/mathlib"
)

func newDispatcher() (d *Dispatcher, dev *cordic.Cordic) {
	dev = cordic.NewCordic()
	ev := evaluator.NewEvaluator(accel.NewDriver(dev), mathlib.Library{})
	d = NewDispatcher(ev)
	d.Predefine(internal.IterSeq2Concat(dev.Defines(), ev.Defines()))
	return
}

func TestDispatcher_Select(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()
	assert.Equal(STATE_IDLE, d.State())

	step := d.Select("1")
	assert.Equal(STATE_AWAITING, step.State)
	assert.Equal(STATE_AWAITING, d.State())
	assert.Equal(evaluator.OP_SINE, d.Operation())
	assert.Contains(step.Prompt, "the angle in degree")
	assert.Nil(step.Report)

	for _, text := range []string{"10", "-1", "x", ""} {
		step = d.Select(text)
		assert.Equal(STATE_REJECTED, step.State, text)
		assert.ErrorIs(step.Report.Err, ErrUnknownOperation, text)
		assert.Equal(STATE_IDLE, d.State(), text)
	}
}

func TestDispatcher_Supply(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()

	step := d.Select("9")
	assert.Equal(STATE_AWAITING, step.State)

	step = d.Supply("0.25")
	assert.Equal(STATE_REPORTED, step.State)
	assert.Equal(STATE_IDLE, d.State())
	if assert.NotNil(step.Report) {
		assert.NoError(step.Report.Err)
		assert.Equal(evaluator.OP_SQUARE_ROOT, step.Report.Operation)
		assert.Equal("Square root", step.Report.Subject)
		assert.InDelta(0.5, step.Report.Result.Hardware[0], 1e-6)
		assert.InDelta(0.5, step.Report.Result.Software[0], 1e-6)
	}
}

func TestDispatcher_Park(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()

	var states []State
	d.Transition = func(from, to State) {
		assert.Equal(d.State(), from)
		states = append(states, to)
	}

	step := d.Select("0")
	assert.Contains(step.Prompt, "angle")

	step = d.Supply("0")
	assert.Equal(STATE_AWAITING, step.State)
	assert.Contains(step.Prompt, "alpha")

	step = d.Supply("1")
	assert.Equal(STATE_AWAITING, step.State)
	assert.Contains(step.Prompt, "beta")

	step = d.Supply("0")
	assert.Equal(STATE_REPORTED, step.State)
	assert.InDeltaSlice([]float64{1, 0}, step.Report.Result.Hardware, 1e-4)
	assert.InDeltaSlice([]float64{1, 0}, step.Report.Result.Software, 1e-4)

	assert.Equal([]State{STATE_AWAITING, STATE_EVALUATING, STATE_REPORTED, STATE_IDLE}, states)
}

func TestDispatcher_Rejected(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()

	table := [...]struct {
		op    string
		input []string
		check func(err error) bool
	}{
		{"1", []string{"91"}, func(err error) bool {
			var outside *bounds.ErrOutOfRange
			return assert.ErrorAs(err, &outside)
		}},
		{"9", []string{"0"}, func(err error) bool {
			return assert.ErrorIs(err, bounds.ErrDegenerate)
		}},
		{"3", []string{"ninety"}, func(err error) bool {
			var parse *ErrInputParse
			return assert.ErrorAs(err, &parse) && assert.Equal("ninety", parse.Text)
		}},
		{"0", []string{"45", "0.5", "-2"}, func(err error) bool {
			var operand *evaluator.ErrOperand
			return assert.ErrorAs(err, &operand) && assert.Equal(2, operand.Index)
		}},
	}

	for _, entry := range table {
		name := fmt.Sprintf("%v %v", entry.op, entry.input)
		step := d.Select(entry.op)
		assert.Equal(STATE_AWAITING, step.State, name)
		for _, text := range entry.input {
			step = d.Supply(text)
		}
		assert.Equal(STATE_REJECTED, step.State, name)
		entry.check(step.Report.Err)
		assert.Equal(STATE_IDLE, d.State(), name)
	}

	step := d.Supply("1")
	assert.Equal(STATE_REJECTED, step.State)
	assert.ErrorIs(step.Report.Err, ErrNoOperation)
}

func TestDispatcher_Reselect(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()

	d.Select("0")
	d.Supply("10")

	step := d.Select("2")
	assert.Equal(STATE_AWAITING, step.State)
	step = d.Supply("0")
	assert.Equal(STATE_REPORTED, step.State)
	assert.InDelta(1.0, step.Report.Result.Software[0], 1e-9)
}

func TestDispatcher_HardwareFault(t *testing.T) {
	assert := assert.New(t)

	d, dev := newDispatcher()
	dev.Stall = true

	d.Select("5")
	step := d.Supply("30")
	assert.Equal(STATE_REJECTED, step.State)
	assert.ErrorIs(step.Report.Err, accel.ErrTimeout)
	assert.Contains(step.Report.Message(), "Hyperbolic Sine")
	assert.Equal(STATE_IDLE, d.State())
}

func TestDispatcher_Expression(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()
	d.Predefine(maps.All(map[string]string{
		"HALF":  "0.5",
		"LABEL": "not a number",
	}))

	table := [...]struct {
		text     string
		expected float64
	}{
		{"$(HALF)", 0.5},
		{"$(HALF * 2)", 1},
		{"$(1 / 4)", 0.25},
		{"$(ATAN_MAX)", 57},
		{"$(math.pow(math.sqrt(HALF), 2))", 0.5},
		{" 0.125 ", 0.125},
		{"-1e-2", -0.01},
	}

	for _, entry := range table {
		value, err := d.parseOperand(entry.text)
		assert.NoError(err, entry.text)
		assert.InDelta(entry.expected, value, 1e-12, entry.text)
	}

	for _, text := range []string{"$(LABEL)", "$(True)", "$(\"1\")", "$(1 +)", "$(", "1.2.3"} {
		_, err := d.parseOperand(text)
		var parse *ErrInputParse
		assert.ErrorAs(err, &parse, text)
	}
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("idle", STATE_IDLE.String())
	assert.Equal("awaiting operand", STATE_AWAITING.String())
	assert.Equal("rejected", STATE_REJECTED.String())
	assert.Equal("State(7)", State(7).String())
}

func TestReport_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	d, _ := newDispatcher()

	d.Select("3")
	step := d.Supply("120")
	assert.Equal(STATE_REJECTED, step.State)
	assert.Equal("Entered number is not in range [-89, 89].", step.Report.Message())

	d.Select("8")
	step = d.Supply("-0.9")
	assert.Contains(step.Report.Message(), "[-0.8, 0.8]")
}

func TestDispatcher_Predefine(t *testing.T) {
	assert := assert.New(t)

	dev := cordic.NewCordic()
	ev := evaluator.NewEvaluator(accel.NewDriver(dev), mathlib.Library{})
	d := NewDispatcher(ev)
	assert.Empty(d.Equate)

	d.Predefine(internal.IterSeq2Concat(dev.Defines(), ev.Defines()))
	assert.Len(d.Equate, len(maps.Collect(dev.Defines()))+len(maps.Collect(ev.Defines())))
	assert.Contains(d.Equate, "CIRCULAR_GAIN")
	assert.Contains(d.Equate, "ATAN_MAX")
}
