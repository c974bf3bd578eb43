// Package verify runs the property checks the core package's tests
// already assert in isolation -- round-trip and shortness -- over a
// configurable random sample, the way the reference implementation's
// own verify pass exercises every alternative formatter it knows
// about. It exists so cmd/ftoafmt can expose the same sweep as a
// standalone, configurable operation instead of only as `go test`.
package verify

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/mvdan-sh/ftoa"
)

// Config controls one verification run.
type Config struct {
	// Samples is the number of random finite float64 values to draw
	// and check. Must be positive.
	Samples int
	// Seed1, Seed2 seed the PCG generator; fixed values make a run
	// reproducible.
	Seed1, Seed2 uint64
}

// Report aggregates the outcome of a verification run.
type Report struct {
	Samples          int
	RoundTripFailure int
	ShortnessRegress int
	LenSum           int64
	LenMax           int
}

// LenAvg returns the mean output length across the run, or 0 if no
// samples were checked.
func (r Report) LenAvg() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.LenSum) / float64(r.Samples)
}

// Run samples cfg.Samples uniformly random float64 bit patterns,
// rejecting non-finite draws, and checks each one round-trips through
// strconv.ParseFloat and matches strconv's own shortest-digit count --
// the reference implementation the shortness property is checked
// against. It returns as soon as ctx is cancelled, reporting whatever
// was gathered so far alongside ctx.Err().
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Samples <= 0 {
		return Report{}, fmt.Errorf("verify: Samples must be positive, got %d", cfg.Samples)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed1, cfg.Seed2))
	var buf ftoa.Buffer
	report := Report{Samples: cfg.Samples}

	for i := 0; i < cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("verify: cancelled after %d/%d samples: %w", i, cfg.Samples, err)
		}

		f := randomFinite(rng)
		if f == 0 {
			continue
		}

		got := buf.FormatFinite(f)
		back, err := strconv.ParseFloat(got, 64)
		if err != nil || back != f {
			report.RoundTripFailure++
		}

		want := strconv.FormatFloat(f, 'e', -1, 64)
		if significantDigits(got) != significantDigits(want) {
			report.ShortnessRegress++
		}

		report.LenSum += int64(len(got))
		if len(got) > report.LenMax {
			report.LenMax = len(got)
		}
	}

	return report, nil
}

func randomFinite(rng *rand.Rand) float64 {
	for {
		f := math.Float64frombits(rng.Uint64())
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
}

func significantDigits(s string) int {
	n := 0
	for _, c := range s {
		switch {
		case c == 'e':
			return n
		case c >= '0' && c <= '9':
			n++
		}
	}
	return n
}
