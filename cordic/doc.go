// Package cordic emulates a memory-mapped CORDIC coprocessor.
//
// The coprocessor has three 32-bit data registers (X, Y, Z), a control word
// selecting the coordinate system (linear, circular, hyperbolic) and the
// function (rotation or vectoring), and a busy flag. An operation is started
// by writing the control word and data registers; the datapath then performs
// one shift-and-add iteration per peripheral clock until the schedule for
// the selected mode is exhausted, after which the result registers may be
// read.
//
// Register formats:
//   - X and Y are plain two's-complement integers; the datapath is linear in
//     them, so any common fixed-point format may be used. Results are shifted
//     right by the control word's magnitude prescale (Mps) and saturated.
//   - Z in circular and hyperbolic modes is an angle where 2^31 is π radians.
//   - Z in linear mode is a Q20.11 value.
//
// Circular results carry the gain CIRCULAR_GAIN and hyperbolic results
// HYPERBOLIC_GAIN; the coprocessor never compensates for them.
package cordic
