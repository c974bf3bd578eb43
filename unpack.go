package ftoa

import "math/bits"

// shift is the number of extra low bits in the left-justified 64-bit
// mantissa below the 53 bits a binary64 significand actually carries.
const shift = 64 - 53

// minExp is the binary exponent of the smallest normal float64 (and of
// every subnormal before normalization), expressed in the
// left-justified convention used throughout this package (f = m * 2**e
// with m 64 bits wide). unpack gives normalized subnormals exponents
// below minExp.
const minExp = -(1074 + shift)

// unpack decomposes a finite, non-zero float64 into a left-justified
// 64-bit mantissa m (top bit always set) and a binary exponent e such
// that f = m * 2**e. The caller must have already excluded NaN, ±Inf
// and ±0.
func unpack(b uint64) (m uint64, e int) {
	frac := b & (1<<52 - 1)
	bexp := int(b>>52) & (1<<11 - 1)
	m = 1<<63 | (frac << shift)
	if bexp == 0 {
		// Subnormal: no implicit leading bit. Normalize by shifting
		// left until the top bit is set, adjusting e to match.
		m &^= 1 << 63
		e = minExp
		s := bits.LeadingZeros64(m)
		return m << s, e - s
	}
	return m, (bexp - 1) + minExp
}
