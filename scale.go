package ftoa

import "math/bits"

// uscale returns unround(x * 2**e * 10**p), where c must be
// prescale(e, p, log2Pow10(p)) and x must be left-justified (top bit
// set).
func uscale(x uint64, c scaler) unrounded {
	hi, midHi := bits.Mul64(x, c.pm.hi)
	sticky := uint64(1)
	if hi&(1<<(uint(c.s)&63)-1) == 0 {
		midLo, _ := bits.Mul64(x, c.pm.lo)
		sticky = uint64(fromBool(midHi-midLo > 1))
		if midHi < midLo {
			hi--
		}
	}
	return unrounded((hi >> uint(c.s)) | sticky)
}
