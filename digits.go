package ftoa

import "math/bits"

// uint64Pow10[x] is 10**x.
var uint64Pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// digits returns the number of decimal digits in d, which must be > 0.
func digits(d uint64) int {
	nd := log10Pow2(64 - bits.LeadingZeros64(d))
	if d >= uint64Pow10[nd] {
		nd++
	}
	return nd
}
