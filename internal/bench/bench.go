// Package bench times the core formatter against its external
// collaborator and the standard library over a fixed corpus, in the
// style of the reference implementation's multi-implementation
// comparison table. Each implementation gets one min/max/mean
// nanoseconds-per-call summary over the whole corpus; results are not
// broken down by digit length.
package bench

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/mvdan-sh/ftoa"
	"github.com/mvdan-sh/ftoa/special"
)

// Config controls one benchmark run.
type Config struct {
	// CorpusSize is the number of random finite float64 values each
	// implementation is timed against. Must be positive.
	CorpusSize int
	// Trials is the number of repeated timing passes per
	// implementation; the minimum elapsed time across trials is
	// kept, following the reference implementation's own
	// best-of-N timing discipline.
	Trials int
	Seed1, Seed2 uint64
}

// Result is the timing summary for one implementation.
type Result struct {
	Name           string
	MinNanosPerOp  float64
	MaxNanosPerOp  float64
	MeanNanosPerOp float64
}

type impl struct {
	name string
	f    func(float64) string
}

// Run times core, special, and strconv.FormatFloat over a shared
// random corpus and returns one Result per implementation, in a fixed
// order (core, special, strconv).
func Run(cfg Config) ([]Result, error) {
	if cfg.CorpusSize <= 0 {
		return nil, fmt.Errorf("bench: CorpusSize must be positive, got %d", cfg.CorpusSize)
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("bench: Trials must be positive, got %d", cfg.Trials)
	}

	corpus := randomCorpus(cfg.CorpusSize, cfg.Seed1, cfg.Seed2)

	var coreBuf ftoa.Buffer
	impls := []impl{
		{name: "core", f: func(f float64) string { return coreBuf.FormatFinite(f) }},
		{name: "special", f: special.Format},
		{name: "strconv", f: func(f float64) string {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}},
	}

	results := make([]Result, len(impls))
	for i, im := range impls {
		results[i] = timeImpl(im, corpus, cfg.Trials)
	}
	return results, nil
}

func timeImpl(im impl, corpus []float64, trials int) Result {
	minNanos := math.MaxFloat64
	maxNanos := -math.MaxFloat64
	var total float64

	for t := 0; t < trials; t++ {
		start := time.Now()
		for _, f := range corpus {
			_ = im.f(f)
		}
		elapsed := time.Since(start)
		perOp := float64(elapsed.Nanoseconds()) / float64(len(corpus))

		if perOp < minNanos {
			minNanos = perOp
		}
		if perOp > maxNanos {
			maxNanos = perOp
		}
		total += perOp
	}

	return Result{
		Name:           im.name,
		MinNanosPerOp:  minNanos,
		MaxNanosPerOp:  maxNanos,
		MeanNanosPerOp: total / float64(trials),
	}
}

func randomCorpus(n int, seed1, seed2 uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	corpus := make([]float64, n)
	for i := range corpus {
		for {
			f := math.Float64frombits(rng.Uint64())
			if !math.IsNaN(f) && !math.IsInf(f, 0) {
				corpus[i] = f
				break
			}
		}
	}
	return corpus
}
