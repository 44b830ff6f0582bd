// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fixed

import (
	"fmt"
	"math"
)

// Format describes a 32-bit fixed-point representation.
type Format struct {
	Name   string // Display name, e.g. "Q1.30".
	Frac   uint   // Number of fractional bits.
	Signed bool   // Two's-complement when set.
}

// Formats used by the accelerator.
var (
	Q31    = Format{Name: "Q31", Frac: 31, Signed: true}
	Q1_30  = Format{Name: "Q1.30", Frac: 30, Signed: true}
	Q20_11 = Format{Name: "Q20.11", Frac: 11, Signed: true}
	Q8_23  = Format{Name: "Q8.23", Frac: 23, Signed: true}
	UQ31   = Format{Name: "UQ31", Frac: 31, Signed: false}
)

// Formats lists every predefined format.
var Formats = []Format{Q31, Q1_30, Q20_11, Q8_23, UQ31}

// String returns the format name.
func (f Format) String() string {
	return f.Name
}

// Scale returns 2^Frac.
func (f Format) Scale() float64 {
	return math.Ldexp(1, int(f.Frac))
}

// Ulp returns the value of one unit in the last fractional bit.
func (f Format) Ulp() float64 {
	return math.Ldexp(1, -int(f.Frac))
}

// Min returns the smallest representable value.
func (f Format) Min() float64 {
	if !f.Signed {
		return 0
	}
	return float64(math.MinInt32) / f.Scale()
}

// Max returns the largest representable value.
func (f Format) Max() float64 {
	if !f.Signed {
		return float64(math.MaxUint32) / f.Scale()
	}
	return float64(math.MaxInt32) / f.Scale()
}

// Contains reports whether v lies in [Min, Max].
func (f Format) Contains(v float64) bool {
	return v >= f.Min() && v <= f.Max()
}

// Clamp limits v to [Min, Max]. NaN clamps to zero.
func (f Format) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < f.Min():
		return f.Min()
	case v > f.Max():
		return f.Max()
	}
	return v
}

// Encode truncates v*2^Frac toward zero and stores it as a 32-bit word.
// Values outside the format wrap.
func (f Format) Encode(v float64) (word uint32) {
	scaled := math.Trunc(v * f.Scale())
	if f.Signed {
		word = uint32(int64(scaled))
	} else {
		word = uint32(uint64(int64(scaled)))
	}
	return
}

// Decode converts a 32-bit word back to a float64.
func (f Format) Decode(word uint32) float64 {
	if f.Signed {
		return float64(int32(word)) / f.Scale()
	}
	return float64(word) / f.Scale()
}

// Hex formats a word for register dumps.
func (f Format) Hex(word uint32) string {
	return fmt.Sprintf("%04X_%04X", word>>16, word&0xffff)
}
