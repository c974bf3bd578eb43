package ftoa

import "math/bits"

// Modular inverses of powers of 5, used by trimZeros to test
// divisibility by powers of 10 without dividing.
const (
	inv5    = 0xCCCCCCCCCCCCCCCD // inverse of 5
	inv5p2  = 0x8F5C28F5C28F5C29 // inverse of 5^2
	inv5p4  = 0xD288CE703AFB7E91 // inverse of 5^4
	inv5p8  = 0xC767074B22E90E21 // inverse of 5^8
	maxU64  = ^uint64(0)
)

// trimZeros removes trailing decimal zeros from x*10**p, assuming x
// ends in at most 16 zeros. It returns x', p' with x'*10**p' == x*10**p
// and x' not divisible by 10.
func trimZeros(x uint64, p int) (uint64, int) {
	// Speculative single-zero cut: the common case is no trailing
	// zero at all, so bail out immediately if so.
	d := bits.RotateLeft64(x*inv5, -1)
	if d > maxU64/10 {
		return x, p
	}
	x, p = d, p+1

	// Cascade 8, then 4, then 2, then 1.
	if d := bits.RotateLeft64(x*inv5p8, -8); d <= maxU64/100000000 {
		x, p = d, p+8
	}
	if d := bits.RotateLeft64(x*inv5p4, -4); d <= maxU64/10000 {
		x, p = d, p+4
	}
	if d := bits.RotateLeft64(x*inv5p2, -2); d <= maxU64/100 {
		x, p = d, p+2
	}
	if d := bits.RotateLeft64(x*inv5, -1); d <= maxU64/10 {
		x, p = d, p+1
	}
	return x, p
}
