package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesToQ31(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0), DegreesToQ31(0))
	assert.Equal(uint32(0x4000_0000), DegreesToQ31(90))
	assert.Equal(uint32(0xC000_0000), DegreesToQ31(-90))
	assert.Equal(uint32(0x2000_0000), DegreesToQ31(45))
}

func TestQ31ToRadians(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(math.Pi/2, Q31ToRadians(0x4000_0000), 1e-12)
	assert.InDelta(-math.Pi/4, Q31ToRadians(0xE000_0000), 1e-12)
	assert.InDelta(-180.0, Q31ToDegrees(0x8000_0000), 1e-12)

	for deg := -179.0; deg < 180; deg += 7.5 {
		assert.InDelta(deg, Q31ToDegrees(DegreesToQ31(deg)), 1e-6)
	}
}
