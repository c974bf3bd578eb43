package ftoa

import (
	"math"
	"testing"
)

func TestLog10Pow2Exact(t *testing.T) {
	for x := -1085; x <= 1024; x++ {
		got := log10Pow2(x)
		want := int(math.Floor(float64(x) * math.Log10(2)))
		if got != want {
			t.Errorf("log10Pow2(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestLog2Pow10Exact(t *testing.T) {
	for x := pow10Min; x <= pow10Max; x++ {
		got := log2Pow10(x)
		want := int(math.Floor(float64(x) * math.Log2(10)))
		if got != want {
			t.Errorf("log2Pow10(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestSkewedMatchesDefinition(t *testing.T) {
	// skewed(x) should equal floor(log10(3/4 * 2^x)) for the range of
	// binary exponents short() ever calls it with.
	for x := -1085; x <= 1024; x++ {
		got := skewed(x)
		want := int(math.Floor(math.Log10(0.75) + float64(x)*math.Log10(2)))
		if got != want {
			t.Errorf("skewed(%d) = %d, want %d", x, got, want)
		}
	}
}
