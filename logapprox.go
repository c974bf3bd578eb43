package ftoa

// log10Pow2 returns floor(x * log10(2)), exact for the range of x this
// package uses it over ([-1085, 1024] and nearby shifted values).
//
//	log10(2) ≈ 0.30102999566 ≈ 78913 / 2^18
func log10Pow2(x int) int {
	return (x * 78913) >> 18
}

// log2Pow10 returns floor(x * log2(10)), exact over the decimal
// exponents this package reaches.
//
//	log2(10) ≈ 3.32192809489 ≈ 108853 / 2^15
func log2Pow10(x int) int {
	return (x * 108853) >> 15
}

// skewed returns floor(log10(3/4 * 2**x)) = floor(x*log10(2) - log10(4/3)).
// Used at the power-of-two boundary, where the round-trip interval
// around f is asymmetric.
func skewed(x int) int {
	return (x*631305 - 261663) >> 21
}
