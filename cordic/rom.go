package cordic

import (
	"math"
)

const (
	CIRCULAR_GAIN   = 1.646760258121 // Magnitude growth of a circular pass.
	HYPERBOLIC_GAIN = 0.828159360960 // Magnitude growth of a hyperbolic pass.

	GUARD_BITS = 16 // Extra low-order bits carried on X and Y.
	Z_SHIFT    = 31 // Z register to datapath shift.
)

// Iteration schedules, as the shift applied on each clock.
var (
	scheduleCircular   = makeSchedule(0, 31)
	scheduleHyperbolic = makeSchedule(1, 31, 4, 13)
	scheduleLinear     = makeSchedule(-8, 31)
)

// Elementary angle ROMs, indexed by shift, in datapath Z units
// (π == 1<<62).
var (
	romAtan  [32]int64
	romAtanh [32]int64
)

func init() {
	piScale := math.Ldexp(1, 31+Z_SHIFT) / math.Pi
	for shift := range 32 {
		t := math.Ldexp(1, -shift)
		romAtan[shift] = int64(math.Round(math.Atan(t) * piScale))
		if shift > 0 {
			romAtanh[shift] = int64(math.Round(math.Atanh(t) * piScale))
		}
	}
}

// makeSchedule lists shifts first..last, with each repeat shift issued twice.
func makeSchedule(first, last int, repeats ...int) (schedule []int) {
	for shift := first; shift <= last; shift++ {
		schedule = append(schedule, shift)
		for _, rep := range repeats {
			if rep == shift {
				schedule = append(schedule, shift)
			}
		}
	}
	return
}

// schedule returns the iteration schedule for a mode.
func schedule(mode Mode) []int {
	switch mode {
	case MODE_CIRCULAR:
		return scheduleCircular
	case MODE_HYPERBOLIC:
		return scheduleHyperbolic
	default:
		return scheduleLinear
	}
}

// linearStep returns 2^-shift in datapath Z units for linear mode, where
// 1.0 == 1<<(11+Z_SHIFT).
func linearStep(shift int) int64 {
	return int64(1) << (11 + Z_SHIFT - shift)
}

// Gain returns the magnitude growth of a full pass in the given mode, as
// derived from its iteration schedule.
func Gain(mode Mode) (gain float64) {
	gain = 1
	for _, shift := range schedule(mode) {
		t := math.Ldexp(1, -2*shift)
		switch mode {
		case MODE_CIRCULAR:
			gain *= math.Sqrt(1 + t)
		case MODE_HYPERBOLIC:
			gain *= math.Sqrt(1 - t)
		}
	}
	return
}

// Iterations returns the number of clocks a pass in the given mode takes.
func Iterations(mode Mode) int {
	return len(schedule(mode))
}
