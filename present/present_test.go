package present

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdan-sh/ftoa/special"
)

func TestDecimalForm(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		want string
	}{
		{"zero", 0, "0.0"},
		{"one", 1, "1.0"},
		{"negative one", -1, "-1.0"},
		{"plain fraction", 123.456, "123.456"},
		{"small fraction", 0.001234, "0.001234"},
		{"round number", 100, "100.0"},
		{"one and a half", 1.5, "1.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Render(c.f, Decimal))
		})
	}
}

func TestScientificUnchanged(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 123.456, 1e30, 1e-30} {
		assert.Equal(t, special.Format(f), Render(f, Scientific))
	}
}

func TestAutoCrossover(t *testing.T) {
	// 1e20 has exponent 20, inside [-4, 21): decimal.
	assert.Equal(t, "100000000000000000000.0", Render(1e20, Auto))
	// 1e21 has exponent 21, outside the crossover: scientific.
	assert.Equal(t, Render(1e21, Scientific), Render(1e21, Auto))
}

func TestNonFinitePassThrough(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		want := Render(f, Scientific)
		for _, n := range []Notation{Decimal, Scientific, Auto} {
			assert.Equal(t, want, Render(f, n))
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 123.456, 1.0 / 3, 1e10, 1e-10}
	for _, f := range values {
		got := Render(f, Decimal)
		back, err := strconv.ParseFloat(got, 64)
		require.NoErrorf(t, err, "Render(%v, Decimal) = %q: failed to parse back", f, got)
		assert.Equal(t, f, back)
	}
}
