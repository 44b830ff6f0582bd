package bounds

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Check(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		interval Interval
		inside   []float64
		outside  []float64
	}){
		{Closed(-90, 90), []float64{-90, -45.5, 0, 90}, []float64{-90.0001, 90.0001, 180}},
		{Closed(-1, 1), []float64{-1, 0, 1}, []float64{-1.5, 1.0000001}},
		{Closed(-89, 89), []float64{-89, 89}, []float64{-89.5, 89.5}},
		{Closed(-57, 57), []float64{-57, 1, 57}, []float64{-58, 57.01}},
		{Closed(-60, 60), []float64{-60, 60}, []float64{-61, 60.5}},
		{Closed(-0.8, 0.8), []float64{-0.8, 0.8}, []float64{-0.81, 0.80001}},
		{LeftOpen(0, 1), []float64{1e-9, 0.25, 1}, []float64{-0.1, 1.1}},
	}

	for _, entry := range table {
		for _, v := range entry.inside {
			assert.NoError(entry.interval.Check(v), fmt.Sprintf("%v %v", entry.interval, v))
			assert.True(entry.interval.Contains(v))
		}
		for _, v := range entry.outside {
			err := entry.interval.Check(v)
			var oor *ErrOutOfRange
			assert.True(errors.As(err, &oor), fmt.Sprintf("%v %v", entry.interval, v))
			assert.Equal(v, oor.Value)
			assert.Equal(entry.interval, oor.Interval)
			assert.False(entry.interval.Contains(v))
		}
	}
}

func TestInterval_Degenerate(t *testing.T) {
	assert := assert.New(t)

	iv := LeftOpen(0, 1)
	assert.ErrorIs(iv.Check(0), ErrDegenerate)

	// A closed interval accepts its low bound.
	assert.NoError(Closed(0, 1).Check(0))
}

func TestInterval_NaN(t *testing.T) {
	assert := assert.New(t)

	var oor *ErrOutOfRange
	assert.ErrorAs(Closed(-1, 1).Check(math.NaN()), &oor)
}

func TestInterval_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("[-90, 90]", Closed(-90, 90).String())
	assert.Equal("(0, 1]", LeftOpen(0, 1).String())
	assert.Contains((&ErrOutOfRange{Value: 91, Interval: Closed(-90, 90)}).Error(), "[-90, 90]")
}
