// Package fixed converts between float64 values and the 32-bit fixed-point
// words used by the CORDIC accelerator.
//
// A Format names how many of the 32 bits are fractional and whether the word
// is two's-complement. Encoding truncates toward zero and never saturates:
// a value outside the format's range silently wraps, so callers must
// validate (or Clamp) before calling Encode. Decoding is exact.
//
// Angles use their own unit: a Q31 word where 2^31 represents π radians
// (180 degrees). DegreesToQ31 and Q31ToRadians convert to and from it.
package fixed
