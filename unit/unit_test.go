package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegToRad(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, DegToRad(0))
	assert.InDelta(math.Pi, DegToRad(180), 1e-15)
	assert.InDelta(-math.Pi/2, DegToRad(-90), 1e-15)
}

func TestRadToDeg(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(45.0, RadToDeg(math.Pi/4), 1e-12)
	for deg := -90.0; deg <= 90; deg += 0.5 {
		assert.InDelta(deg, RadToDeg(DegToRad(deg)), 1e-12)
	}
}
