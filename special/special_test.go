package special

import (
	"math"
	"testing"

	"github.com/mvdan-sh/ftoa"
)

func TestNonFinite(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, c := range cases {
		if got := Format(c.f); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestAgreesWithCoreOnFinite(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1, -1, 0.1, 1e300, math.MaxFloat64}
	var buf ftoa.Buffer
	for _, f := range values {
		want := buf.FormatFinite(f)
		if got := Format(f); got != want {
			t.Errorf("Format(%v) = %q, want %q (core)", f, got, want)
		}
	}
}
