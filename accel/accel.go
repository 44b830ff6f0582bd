// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package accel drives the CORDIC coprocessor. Each function takes and
// returns fixed-point register words and hides the gain compensation,
// argument placement and multi-pass sequencing the coprocessor needs.
package accel

import (
	"log"
	"math"
	"sync"

	"github.com/ezrec/cordic/cordic"
)

const (
	DefaultPollLimit = 256 // Status polls allowed per pass.
)

// Device is the coprocessor register interface.
type Device interface {
	Reset()
	Start(ctl cordic.Control, x, y, z uint32) error
	Busy() bool
	Result() (x, y, z uint32, err error)
}

var (
	ctlSinCos  = cordic.Control{Mode: cordic.MODE_CIRCULAR, Function: cordic.FUNC_ROTATION}
	ctlPark    = cordic.Control{Mode: cordic.MODE_CIRCULAR, Function: cordic.FUNC_ROTATION, Mps: 8}
	ctlAtan    = cordic.Control{Mode: cordic.MODE_CIRCULAR, Function: cordic.FUNC_VECTORING}
	ctlSinhCos = cordic.Control{Mode: cordic.MODE_HYPERBOLIC, Function: cordic.FUNC_ROTATION}
	ctlAtanh   = cordic.Control{Mode: cordic.MODE_HYPERBOLIC, Function: cordic.FUNC_VECTORING}
	ctlDivide  = cordic.Control{Mode: cordic.MODE_LINEAR, Function: cordic.FUNC_VECTORING}
)

// Gain compensation preloads.
var (
	invCircularQ31   = uint32(math.Round(math.Ldexp(1/cordic.CIRCULAR_GAIN, 31)))
	invHyperbolicQ30 = uint32(math.Round(math.Ldexp(1/cordic.HYPERBOLIC_GAIN, 30)))
)

// Driver serialises access to one coprocessor.
type Driver struct {
	Verbose   bool // Set to enable verbose logging.
	PollLimit int  // Status polls allowed per pass; zero means DefaultPollLimit.

	device Device
	mutex  sync.Mutex
}

// NewDriver creates a driver for a coprocessor.
func NewDriver(device Device) (drv *Driver) {
	drv = &Driver{
		device:    device,
		PollLimit: DefaultPollLimit,
	}
	return
}

// pass runs one coprocessor pass and busy-waits for it. The caller holds
// the mutex.
func (drv *Driver) pass(ctl cordic.Control, x, y, z uint32) (rx, ry, rz uint32, err error) {
	limit := drv.PollLimit
	if limit <= 0 {
		limit = DefaultPollLimit
	}

	polls := 0
	defer func() {
		if err != nil {
			err = &ErrPass{Control: ctl.String(), Polls: polls, Err: err}
		}
	}()

	err = drv.device.Start(ctl, x, y, z)
	if err != nil {
		return
	}

	for drv.device.Busy() {
		polls++
		if polls >= limit {
			// The unit is wedged; reset it so the next caller starts clean.
			drv.device.Reset()
			err = ErrTimeout
			return
		}
	}

	rx, ry, rz, err = drv.device.Result()
	if err != nil {
		return
	}

	if drv.Verbose {
		log.Printf("accel: %v (%08x, %08x, %08x) -> (%08x, %08x, %08x) in %d polls", ctl, x, y, z, rx, ry, rz, polls)
	}

	return
}

// Sin returns sin(angle) as Q31. The angle is in Q31 units of π.
func (drv *Driver) Sin(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	_, value, _, err = drv.pass(ctlSinCos, invCircularQ31, 0, angle)
	return
}

// Cos returns cos(angle) as Q31.
func (drv *Driver) Cos(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	value, _, _, err = drv.pass(ctlSinCos, invCircularQ31, 0, angle)
	return
}

// Tan returns tan(angle) as Q20.11.
func (drv *Driver) Tan(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	cos, sin, _, err := drv.pass(ctlSinCos, invCircularQ31, 0, angle)
	if err != nil {
		return
	}

	_, _, value, err = drv.pass(ctlDivide, cos, sin, 0)
	return
}

// ArcTan returns atan(y/x) in Q31 units of π. x and y share any signed
// format; x must be positive.
func (drv *Driver) ArcTan(x, y uint32) (value uint32, err error) {
	if int32(x) <= 0 {
		err = ErrDomain
		return
	}

	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	_, _, value, err = drv.pass(ctlAtan, x, y, 0)
	return
}

// Sinh returns sinh(angle) as Q1.30.
func (drv *Driver) Sinh(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	_, value, _, err = drv.pass(ctlSinhCos, invHyperbolicQ30, 0, angle)
	return
}

// Cosh returns cosh(angle) as Q1.30.
func (drv *Driver) Cosh(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	value, _, _, err = drv.pass(ctlSinhCos, invHyperbolicQ30, 0, angle)
	return
}

// Tanh returns tanh(angle) as Q20.11.
func (drv *Driver) Tanh(angle uint32) (value uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	cosh, sinh, _, err := drv.pass(ctlSinhCos, invHyperbolicQ30, 0, angle)
	if err != nil {
		return
	}

	_, _, value, err = drv.pass(ctlDivide, cosh, sinh, 0)
	return
}

// ArcTanh returns atanh(y/x) in Q31 units of π. x must be positive.
func (drv *Driver) ArcTanh(x, y uint32) (value uint32, err error) {
	if int32(x) <= 0 {
		err = ErrDomain
		return
	}

	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	_, _, value, err = drv.pass(ctlAtanh, x, y, 0)
	return
}

// Sqrt returns the square root of an unsigned Q31 value in (0, 1] as
// unsigned Q31.
//
// The argument is normalised by powers of four into [0.25, 1] so the
// hyperbolic pass converges, then the root is shifted back.
func (drv *Driver) Sqrt(value uint32) (root uint32, err error) {
	if value == 0 || value > 1<<31 {
		err = ErrDomain
		return
	}

	shift := 0
	for value < 1<<29 {
		value <<= 2
		shift++
	}

	// x = v + 1/4, y = v - 1/4 in Q1.30, so x^2 - y^2 = v.
	v := value >> 1
	x := v + 1<<28
	y := v - 1<<28

	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	rx, _, _, err := drv.pass(ctlAtanh, x, y, 0)
	if err != nil {
		return
	}

	scaled := (int64(int32(rx)) * int64(invHyperbolicQ30)) >> 30
	root = uint32((scaled << 1) >> shift)
	return
}

// Park rotates (alpha, beta) by -angle. Inputs are Q31; the outputs are
// Q8.23 and still carry the circular gain.
func (drv *Driver) Park(angle, alpha, beta uint32) (id, iq uint32, err error) {
	drv.mutex.Lock()
	defer drv.mutex.Unlock()

	id, iq, _, err = drv.pass(ctlPark, alpha, beta, -angle)
	return
}
