package ftoa

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		want string
	}{
		{"zero", 0.0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"one", 1.0, "1e+00"},
		{"tenth", 0.1, "1e-01"},
		{"pi", 3.1415926535897931, "3.141592653589793e+00"},
		{"smallest subnormal", math.Float64frombits(1), "5e-324"},
		{"max", math.MaxFloat64, "1.7976931348623157e+308"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf Buffer
			got := buf.FormatFinite(c.f)
			if got != c.want {
				t.Errorf("FormatFinite(%v) = %q, want %q", c.f, got, c.want)
			}
		})
	}
}

var grammar = regexp.MustCompile(`^-?[0-9](\.[0-9]+)?e[+-][0-9]{2,3}$`)

func TestExponentGrammar(t *testing.T) {
	values := []float64{1, -1, 0.1, 123456789, 1e300, 1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64}
	var buf Buffer
	for _, f := range values {
		got := buf.FormatFinite(f)
		if !grammar.MatchString(got) {
			t.Errorf("FormatFinite(%v) = %q, does not match grammar", f, got)
		}
	}
}

func TestSignHandling(t *testing.T) {
	values := []float64{1, 0.1, 123.456, 1e300, 1e-300, math.MaxFloat64}
	var pos, neg Buffer
	for _, f := range values {
		p := pos.FormatFinite(f)
		n := neg.FormatFinite(-f)
		if n != "-"+p {
			t.Errorf("FormatFinite(%v) = %q, FormatFinite(%v) = %q, want negation", f, p, -f, n)
		}
	}
}

func TestDeterminism(t *testing.T) {
	values := []float64{1, 0.1, 123.456, 1e300, 1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, f := range values {
		var a, b Buffer
		if got, want := a.FormatFinite(f), b.FormatFinite(f); got != want {
			t.Errorf("FormatFinite(%v) not deterministic: %q vs %q", f, got, want)
		}
		first := a.FormatFinite(f)
		second := a.FormatFinite(f)
		if first != second {
			t.Errorf("FormatFinite(%v) not stable across repeated calls: %q vs %q", f, first, second)
		}
	}
}

func TestTrailingZeroInvariant(t *testing.T) {
	values := []float64{1, 10, 100, 1000, 1e10, 1e20, 2, 5, 1.5, 0.1, 1e-10}
	var buf Buffer
	for _, f := range values {
		got := buf.FormatFinite(f)
		sig := got
		if i := strings.IndexByte(sig, 'e'); i >= 0 {
			sig = sig[:i]
		}
		if len(sig) > 0 && sig[len(sig)-1] == '0' {
			t.Errorf("FormatFinite(%v) = %q has a trailing zero digit", f, got)
		}
	}
}
