package mathlib

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func word(v float64) uint32 {
	v = math.Max(math.Min(v*(1<<31), math.MaxInt32), math.MinInt32)
	return uint32(int32(v))
}

func value(w uint32) float64 {
	return float64(int32(w)) / (1 << 31)
}

func TestLibrary(t *testing.T) {
	assert := assert.New(t)

	lib := Library{}

	assert.Equal(0.0, lib.Sin(0))
	assert.Equal(1.0, lib.Cos(0))
	assert.InDelta(1.0, lib.Tan(math.Pi/4), 1e-15)
	assert.InDelta(math.Pi/4, lib.Atan2(1, 1), 1e-15)
	assert.Equal(0.5, lib.Sqrt(0.25))
	assert.Equal(0.0, lib.Atanh(0))
	assert.Equal(1.0, lib.Cosh(0))
	assert.Equal(0.0, lib.Sinh(0))
	assert.Equal(0.0, lib.Tanh(0))
}

func TestLibrary_ParkQ31(t *testing.T) {
	assert := assert.New(t)

	lib := Library{}

	table := [](struct {
		deg, alpha, beta float64
	}){
		{0, 1, 0},
		{30, 0.5, -0.25},
		{-45, 0.25, 0.75},
		{90, 0, 1},
	}

	for _, entry := range table {
		rad := entry.deg * math.Pi / 180
		id, iq := lib.ParkQ31(word(entry.alpha), word(entry.beta), word(math.Sin(rad)), word(math.Cos(rad)))
		name := fmt.Sprintf("%+v", entry)
		assert.InDelta(entry.alpha*math.Cos(rad)+entry.beta*math.Sin(rad), value(id), 1e-8, name)
		assert.InDelta(-entry.alpha*math.Sin(rad)+entry.beta*math.Cos(rad), value(iq), 1e-8, name)
	}
}

func TestLibrary_ParkQ31_Saturate(t *testing.T) {
	assert := assert.New(t)

	lib := Library{}

	// (1, 1) rotated by -45 degrees has a length of sqrt(2) on the d axis.
	s := word(math.Sin(math.Pi / 4))
	id, iq := lib.ParkQ31(word(1), word(1), s, s)
	assert.Equal(uint32(math.MaxInt32), id)
	assert.InDelta(0, value(iq), 1e-8)

	id, _ = lib.ParkQ31(word(-1), word(-1), s, s)
	assert.Equal(uint32(0x8000_0000), id)
}
