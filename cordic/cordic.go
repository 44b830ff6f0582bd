// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cordic

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math"
)

var _cordic_defines = map[string]string{
	"CIRCULAR_GAIN":   fmt.Sprintf("%v", CIRCULAR_GAIN),
	"HYPERBOLIC_GAIN": fmt.Sprintf("%v", HYPERBOLIC_GAIN),
	"MPS_MAX":         fmt.Sprintf("%v", MPS_MAX),
}

// Cordic is the simulation context for the CORDIC coprocessor.
type Cordic struct {
	Verbose bool // Set to enable verbose logging.
	Stall   bool // Set to freeze the datapath; a started pass never ends.

	Control Control // Control word of the current or last pass.
	X       uint32  // X data register.
	Y       uint32  // Y data register.
	Z       uint32  // Z data register.

	Ticks  int // Peripheral clocks since reset.
	Passes int // Completed passes since reset.

	busy     bool
	step     int
	schedule []int
	x, y, z  int64 // Datapath accumulators.
}

// NewCordic creates a new coprocessor in the reset state.
func NewCordic() (cd *Cordic) {
	cd = &Cordic{}
	cd.Reset()
	return
}

// Defines for the coprocessor.
func (cd *Cordic) Defines() iter.Seq2[string, string] {
	return maps.All(_cordic_defines)
}

// Reset clears the registers, aborts any pass and zeros the counters.
func (cd *Cordic) Reset() {
	if cd.Verbose {
		log.Printf("cordic: reset")
	}

	cd.Control = Control{}
	cd.X, cd.Y, cd.Z = 0, 0, 0
	cd.x, cd.y, cd.z = 0, 0, 0
	cd.busy = false
	cd.step = 0
	cd.schedule = nil
	cd.Ticks = 0
	cd.Passes = 0
}

// String returns the register state as a string.
func (cd *Cordic) String() (text string) {
	regs := []string{"ctl", "busy", "x", "y", "z", "step", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ctl":
			strval = cd.Control.String()
		case "busy":
			strval = "false"
			if cd.busy {
				strval = "true"
			}
		case "x", "y", "z":
			val := map[string]uint32{"x": cd.X, "y": cd.Y, "z": cd.Z}[reg]
			strval = fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
		case "step":
			strval = fmt.Sprintf("%d/%d", cd.step, len(cd.schedule))
		case "ticks":
			strval = fmt.Sprintf("%d", cd.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Start loads the control word and data registers and begins a pass.
func (cd *Cordic) Start(ctl Control, x, y, z uint32) (err error) {
	if cd.busy {
		err = ErrBusy
		return
	}

	err = ctl.Validate()
	if err != nil {
		return
	}

	cd.Control = ctl
	cd.X, cd.Y, cd.Z = x, y, z

	cd.x = int64(int32(x)) << GUARD_BITS
	cd.y = int64(int32(y)) << GUARD_BITS
	cd.z = int64(int32(z)) << Z_SHIFT

	cd.schedule = schedule(ctl.Mode)
	cd.step = 0
	cd.busy = true

	if cd.Verbose {
		log.Printf("cordic: start %v x=%08x y=%08x z=%08x", ctl, x, y, z)
	}

	return
}

// Busy reports whether a pass is in progress. The datapath runs while the
// status is polled, so each call advances the coprocessor one clock.
func (cd *Cordic) Busy() bool {
	cd.Tick()
	return cd.busy
}

// Result returns the result registers once the pass is complete.
func (cd *Cordic) Result() (x, y, z uint32, err error) {
	if cd.busy {
		err = ErrBusy
		return
	}

	x, y, z = cd.X, cd.Y, cd.Z
	return
}

// Tick advances the datapath by one clock.
func (cd *Cordic) Tick() {
	if !cd.busy {
		return
	}

	cd.Ticks++

	if cd.Stall {
		return
	}

	cd.iterate(cd.schedule[cd.step])
	cd.step++

	if cd.step == len(cd.schedule) {
		cd.finish()
	}
}

// shiftBy scales v by 2^-shift.
func shiftBy(v int64, shift int) int64 {
	if shift < 0 {
		return v << -shift
	}
	return v >> shift
}

// iterate performs a single micro-rotation.
func (cd *Cordic) iterate(shift int) {
	xs := shiftBy(cd.x, shift)
	ys := shiftBy(cd.y, shift)

	// Direction: rotation drives z to zero, vectoring drives y to zero.
	var d int64 = 1
	switch cd.Control.Function {
	case FUNC_ROTATION:
		if cd.z < 0 {
			d = -1
		}
	case FUNC_VECTORING:
		if (cd.y >= 0) == (cd.x >= 0) {
			d = -1
		}
	}

	switch cd.Control.Mode {
	case MODE_CIRCULAR:
		cd.x, cd.y = cd.x-d*ys, cd.y+d*xs
		cd.z -= d * romAtan[shift]
	case MODE_HYPERBOLIC:
		cd.x, cd.y = cd.x+d*ys, cd.y+d*xs
		cd.z -= d * romAtanh[shift]
	case MODE_LINEAR:
		cd.y += d * xs
		cd.z -= d * linearStep(shift)
	}
}

// finish latches the datapath into the result registers.
func (cd *Cordic) finish() {
	shift := GUARD_BITS + cd.Control.Mps
	cd.X = saturate(cd.x >> shift)
	cd.Y = saturate(cd.y >> shift)
	cd.Z = saturate(cd.z >> Z_SHIFT)

	cd.busy = false
	cd.Passes++

	if cd.Verbose {
		log.Printf("cordic: done %v x=%08x y=%08x z=%08x after %d clocks", cd.Control, cd.X, cd.Y, cd.Z, cd.step)
	}
}

// saturate clamps v to the int32 range and returns its register word.
func saturate(v int64) uint32 {
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	return uint32(int32(v))
}
