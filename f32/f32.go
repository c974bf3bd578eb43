// Package f32 provides the single-precision counterpart of the core
// formatter's public entry. A from-scratch 24-bit-mantissa version of
// the unrounded/uscale/trim_zeros machinery would duplicate the core
// almost verbatim with different constants, so this package widens
// the float32 losslessly to float64 and delegates the shortest-digit
// search to the standard library's binary32-correct formatter.
package f32

import "strconv"

// Buffer holds the byte storage for one formatted float32. The zero
// value is ready to use.
type Buffer struct {
	bytes [16]byte
}

// New returns a ready-to-use Buffer.
func New() Buffer { return Buffer{} }

// Format returns the shortest round-trip decimal representation of f
// in scientific notation, in the core package's D[.DDD]e±EE form.
// Unlike the core, zero formats as "0e+00" ("-0e+00" for negative
// zero), and NaN and ±Inf format as "NaN", "+Inf" and "-Inf".
func (buf *Buffer) Format(f float32) string {
	b := strconv.AppendFloat(buf.bytes[:0], float64(f), 'e', -1, 32)
	return string(b)
}

// Format is the unbuffered convenience form of (*Buffer).Format.
func Format(f float32) string {
	var buf Buffer
	return buf.Format(f)
}
