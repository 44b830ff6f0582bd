// Package mathlib is the floating-point reference the accelerator is
// compared against.
package mathlib

import (
	"math"
)

// Library is the software reference backend.
type Library struct{}

func (Library) Sin(x float64) float64   { return math.Sin(x) }
func (Library) Cos(x float64) float64   { return math.Cos(x) }
func (Library) Tan(x float64) float64   { return math.Tan(x) }
func (Library) Sinh(x float64) float64  { return math.Sinh(x) }
func (Library) Cosh(x float64) float64  { return math.Cosh(x) }
func (Library) Tanh(x float64) float64  { return math.Tanh(x) }
func (Library) Atanh(x float64) float64 { return math.Atanh(x) }
func (Library) Sqrt(x float64) float64  { return math.Sqrt(x) }

// Atan2 returns the angle of (x, y) in radians.
func (Library) Atan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

// ParkQ31 computes the Park transform on Q31 words with the rounding and
// saturation of a DSP library: each product keeps the high word of the
// 64-bit result, and the sums saturate.
//
//	id =  alpha*cos + beta*sin
//	iq = -alpha*sin + beta*cos
func (Library) ParkQ31(alpha, beta, sin, cos uint32) (id, iq uint32) {
	a, b := int64(int32(alpha)), int64(int32(beta))
	s, c := int64(int32(sin)), int64(int32(cos))

	p1 := (a * c) >> 31
	p2 := (b * s) >> 31
	p3 := (a * s) >> 31
	p4 := (b * c) >> 31

	id = saturate(p1 + p2)
	iq = saturate(p4 - p3)
	return
}

func saturate(v int64) uint32 {
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	return uint32(int32(v))
}
