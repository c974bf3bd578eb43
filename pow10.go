package ftoa

import "math/big"

// pow10Min and pow10Max bound the decimal exponents p that short can
// ever request a scaled power of ten for. The true range needed is
// roughly [-292, 324] (derived from e ranging over every binary64
// exponent, including subnormals); the table is built generously wide
// of that to leave headroom rather than chase an exact boundary.
const (
	pow10Min = -400
	pow10Max = 400
)

// pmHiLo encodes the 128-bit normalized mantissa N of a scaled power of
// ten as N = hi*2^64 - lo: hi is the top 64 bits of N rounded up, and lo
// is the amount uscale subtracts back out.
type pmHiLo struct {
	hi, lo uint64
}

// pow10Tab[p-pow10Min] holds the scaled mantissa of 10^p for every p in
// [pow10Min, pow10Max], normalized so hi's top bit is always set.
//
// There is no compile-time way to express this table as a Go literal
// (it requires arbitrary-precision arithmetic to derive), so it is
// built once by init using math/big, matching the "once-only
// initializer" fallback this design calls for when a language lacks
// compile-time constant arrays for this kind of data.
var pow10Tab [pow10Max - pow10Min + 1]pmHiLo

func init() {
	for p := pow10Min; p <= pow10Max; p++ {
		pow10Tab[p-pow10Min] = computePow10(p)
	}
}

// computePow10 returns the table entry for N = ceil(10^p * 2^(127-lp)),
// where lp = log2Pow10(p), encoded as hi = ceil(N / 2^64) and
// lo = hi*2^64 - N.
//
// This is the normalization under which prescale's shift
// s = -(e+lp+3) lines up hi>>s with 4*x*2^e*10^p inside uscale: since
// 2^lp <= 10^p < 2^(lp+1), hi's top bit (bit 63) is set. Rounding N and
// hi up makes x*hi*2^64 an overestimate of the true product, which
// uscale corrects by subtracting the high word of x*lo.
func computePow10(p int) pmHiLo {
	lp := log2Pow10(p)
	shiftAmt := 127 - lp

	num := big.NewInt(10)
	num.Exp(num, big.NewInt(int64(absInt(p))), nil)
	den := big.NewInt(1)
	if p < 0 {
		num, den = den, num
	}

	if shiftAmt >= 0 {
		num.Lsh(num, uint(shiftAmt))
	} else {
		den.Lsh(den, uint(-shiftAmt))
	}

	n, rem := new(big.Int).QuoRem(num, den, new(big.Int)) // num, den both non-negative
	if rem.Sign() != 0 {
		n.Add(n, big.NewInt(1)) // round N up
	}

	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(n, mask).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	if lo != 0 {
		// Round hi up; lo becomes what must be subtracted back out.
		hi++
		lo = -lo
	}

	return pmHiLo{hi: hi, lo: lo}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// scaler holds derived scaling constants for a given (e, p) pair.
type scaler struct {
	pm pmHiLo
	s  int
}

// prescale returns the scaling constants for e, p. lp must equal
// log2Pow10(p).
func prescale(e, p, lp int) scaler {
	return scaler{pm: pow10Tab[p-pow10Min], s: -(e + lp + 3)}
}
