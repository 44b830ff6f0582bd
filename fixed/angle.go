package fixed

import (
	"math"
)

// q31PerDegree scales degrees into the accelerator's angle unit, where
// 2^31 is 180 degrees.
const q31PerDegree = float64(1<<31) / 180

// DegreesToQ31 converts an angle in degrees to the accelerator angle unit.
// Valid for (-180, 180).
func DegreesToQ31(deg float64) uint32 {
	return uint32(int64(math.Trunc(deg * q31PerDegree)))
}

// Q31ToRadians converts a word in the accelerator angle unit to radians.
func Q31ToRadians(word uint32) float64 {
	return float64(int32(word)) * (math.Pi / float64(1<<31))
}

// Q31ToDegrees converts a word in the accelerator angle unit to degrees.
func Q31ToDegrees(word uint32) float64 {
	return float64(int32(word)) / q31PerDegree
}
