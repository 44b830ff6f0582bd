// Package unit converts angles between degrees and radians.
package unit

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(x float64) float64 {
	return x * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(x float64) float64 {
	return x * (180 / math.Pi)
}
