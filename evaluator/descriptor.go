package evaluator

import (
	"math"

	"github.com/ezrec/cordic/bounds"
	"github.com/ezrec/cordic/cordic"
	"github.com/ezrec/cordic/fixed"
	"github.com/ezrec/cordic/translate"
	"github.com/ezrec/cordic/unit"
)

// Input limits over which the accelerator is accurate.
const (
	IN_PARK_ANGLE_MAX = 90
	IN_PARK_INPUT_MAX = 1
	IN_SIN_COS_MAX    = 90
	IN_TAN_MAX        = 89
	IN_ATAN_MAX       = 57
	IN_HYP_MAX        = 60
	IN_ATANH_MAX      = 0.8
	IN_SQRT_MAX       = 1

	INPUT_SCALING = 127.99 // Largest magnitude given to a vectoring pass, in Q8.23.
)

// Operand describes one input of an operation.
type Operand struct {
	Name     string
	Interval bounds.Interval
}

// Prompt returns the operator prompt for the operand.
func (o Operand) Prompt() string {
	return translate.From("Enter %v %v:", o.Name, o.Interval)
}

type evalFunc func(ev *Evaluator, in []float64) (hw, sw []float64, err error)

type descriptor struct {
	subject  string
	names    []string
	unit     Unit
	operands []Operand
	eval     evalFunc
}

func symmetric(limit float64) bounds.Interval {
	return bounds.Closed(-limit, limit)
}

var (
	angleSinCos = Operand{Name: "the angle in degree", Interval: symmetric(IN_SIN_COS_MAX)}
	angleTan    = Operand{Name: "the angle in degree", Interval: symmetric(IN_TAN_MAX)}
	angleHyp    = Operand{Name: "the angle in degree", Interval: symmetric(IN_HYP_MAX)}
)

// descriptors is indexed by Operation.
var descriptors = [...]descriptor{
	OP_PARK_TRANSFORM: {
		subject: "Park transform",
		names:   []string{"Id", "Iq"},
		operands: []Operand{
			{Name: "angle in degree", Interval: symmetric(IN_PARK_ANGLE_MAX)},
			{Name: "i alpha", Interval: symmetric(IN_PARK_INPUT_MAX)},
			{Name: "i beta", Interval: symmetric(IN_PARK_INPUT_MAX)},
		},
		eval: evalPark,
	},
	OP_SINE: {
		subject:  "Sine of the angle",
		operands: []Operand{angleSinCos},
		eval:     angular(Hardware.Sin, fixed.Q31, Software.Sin),
	},
	OP_COSINE: {
		subject:  "Cosine of the angle",
		operands: []Operand{angleSinCos},
		eval:     angular(Hardware.Cos, fixed.Q31, Software.Cos),
	},
	OP_TANGENT: {
		subject:  "Tangent of the angle",
		operands: []Operand{angleTan},
		eval:     angular(Hardware.Tan, fixed.Q20_11, Software.Tan),
	},
	OP_ARC_TANGENT: {
		subject:  "ArcTan in degree",
		unit:     UNIT_DEGREE,
		operands: []Operand{{Name: "the value", Interval: symmetric(IN_ATAN_MAX)}},
		eval: ratio(Hardware.ArcTan, func(sw Software, num, den float64) float64 {
			return sw.Atan2(num, den)
		}),
	},
	OP_HYP_SINE: {
		subject:  "Hyperbolic Sine",
		operands: []Operand{angleHyp},
		eval:     angular(Hardware.Sinh, fixed.Q1_30, Software.Sinh),
	},
	OP_HYP_COSINE: {
		subject:  "Hyperbolic Cosine",
		operands: []Operand{angleHyp},
		eval:     angular(Hardware.Cosh, fixed.Q1_30, Software.Cosh),
	},
	OP_HYP_TANGENT: {
		subject:  "Hyperbolic Tangent",
		operands: []Operand{angleHyp},
		eval:     angular(Hardware.Tanh, fixed.Q20_11, Software.Tanh),
	},
	OP_HYP_ARC_TANGENT: {
		subject:  "Hyperbolic ArcTan in degree",
		unit:     UNIT_DEGREE,
		operands: []Operand{{Name: "the value", Interval: symmetric(IN_ATANH_MAX)}},
		eval: ratio(Hardware.ArcTanh, func(sw Software, num, den float64) float64 {
			return sw.Atanh(num / den)
		}),
	},
	OP_SQUARE_ROOT: {
		subject:  "Square root",
		operands: []Operand{{Name: "the value", Interval: bounds.LeftOpen(0, IN_SQRT_MAX)}},
		eval:     evalSqrt,
	},
}

// angular builds the evaluation of a function of one angle in degrees whose
// accelerator result is returned in format out.
func angular(hw func(Hardware, uint32) (uint32, error), out fixed.Format, sw func(Software, float64) float64) evalFunc {
	return func(ev *Evaluator, in []float64) (hwv, swv []float64, err error) {
		word, err := hw(ev.Hardware, fixed.DegreesToQ31(in[0]))
		if err != nil {
			return
		}

		hwv = []float64{out.Decode(word)}
		swv = []float64{sw(ev.Software, unit.DegToRad(in[0]))}
		return
	}
}

// prescale returns value/1 as a numerator and denominator scaled so the
// larger magnitude is INPUT_SCALING, which keeps both inside Q8.23.
func prescale(value float64) (num, den float64) {
	if math.Abs(value) <= 1 {
		den = INPUT_SCALING
		num = value * den
		return
	}

	den = INPUT_SCALING / math.Abs(value)
	num = math.Copysign(INPUT_SCALING, value)
	return
}

// ratio builds the evaluation of an inverse function of one ratio whose
// result is an angle reported in degrees.
func ratio(hw func(Hardware, uint32, uint32) (uint32, error), sw func(Software, float64, float64) float64) evalFunc {
	return func(ev *Evaluator, in []float64) (hwv, swv []float64, err error) {
		num, den := prescale(in[0])

		word, err := hw(ev.Hardware, fixed.Q8_23.Encode(den), fixed.Q8_23.Encode(num))
		if err != nil {
			return
		}

		hwv = []float64{unit.RadToDeg(fixed.Q31ToRadians(word))}
		swv = []float64{unit.RadToDeg(sw(ev.Software, in[0], 1))}
		return
	}
}

// evalPark rotates (alpha, beta) by -angle on both backends. The
// accelerator's result is Q8.23 and still carries the circular gain, which
// must be divided out.
func evalPark(ev *Evaluator, in []float64) (hw, sw []float64, err error) {
	angle := fixed.DegreesToQ31(in[0])
	alpha := fixed.Q31.Encode(fixed.Q31.Clamp(in[1]))
	beta := fixed.Q31.Encode(fixed.Q31.Clamp(in[2]))

	id, iq, err := ev.Hardware.Park(angle, alpha, beta)
	if err != nil {
		return
	}

	hw = []float64{
		fixed.Q8_23.Decode(id) / cordic.CIRCULAR_GAIN,
		fixed.Q8_23.Decode(iq) / cordic.CIRCULAR_GAIN,
	}

	rad := unit.DegToRad(in[0])
	sin := fixed.Q31.Encode(fixed.Q31.Clamp(ev.Software.Sin(rad)))
	cos := fixed.Q31.Encode(fixed.Q31.Clamp(ev.Software.Cos(rad)))
	swId, swIq := ev.Software.ParkQ31(alpha, beta, sin, cos)

	sw = []float64{fixed.Q31.Decode(swId), fixed.Q31.Decode(swIq)}
	return
}

// evalSqrt takes the root of a UQ31 word. A value below one UQ31 step
// encodes to zero, whose root is zero without a pass.
func evalSqrt(ev *Evaluator, in []float64) (hw, sw []float64, err error) {
	var root uint32

	word := fixed.UQ31.Encode(in[0])
	if word != 0 {
		root, err = ev.Hardware.Sqrt(word)
		if err != nil {
			return
		}
	}

	hw = []float64{fixed.UQ31.Decode(root)}
	sw = []float64{ev.Software.Sqrt(in[0])}
	return
}
