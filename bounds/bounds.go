// Package bounds checks operands against the closed intervals over which the
// accelerator is accurate.
package bounds

import (
	"math"

	"github.com/ezrec/cordic/translate"
)

// Interval is an inclusive range. When OpenLow is set, Low itself is
// rejected as degenerate.
type Interval struct {
	Low     float64
	High    float64
	OpenLow bool
}

// Closed returns the inclusive interval [low, high].
func Closed(low, high float64) Interval {
	return Interval{Low: low, High: high}
}

// LeftOpen returns the interval (low, high].
func LeftOpen(low, high float64) Interval {
	return Interval{Low: low, High: high, OpenLow: true}
}

// String formats the interval for prompts and errors.
func (iv Interval) String() string {
	if iv.OpenLow {
		return translate.From("(%v, %v]", iv.Low, iv.High)
	}
	return translate.From("[%v, %v]", iv.Low, iv.High)
}

// Contains reports whether value passes Check.
func (iv Interval) Contains(value float64) bool {
	return iv.Check(value) == nil
}

// Check returns nil when value is within the interval, ErrDegenerate when it
// equals an open low bound, and *ErrOutOfRange otherwise.
func (iv Interval) Check(value float64) (err error) {
	if math.IsNaN(value) || value < iv.Low || value > iv.High {
		err = &ErrOutOfRange{Value: value, Interval: iv}
		return
	}

	if iv.OpenLow && value == iv.Low {
		err = ErrDegenerate
		return
	}

	return
}
