// Command ftoafmt exposes the formatter, its verification sweep, and
// its benchmark comparison as a CLI: argument parsing, configuration,
// benchmark harnesses, and verification scaffolding that the core
// package itself intentionally leaves out.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvdan-sh/ftoa/f32"
	"github.com/mvdan-sh/ftoa/internal/bench"
	"github.com/mvdan-sh/ftoa/internal/verify"
	"github.com/mvdan-sh/ftoa/present"
)

var errVerificationFailed = errors.New("ftoafmt: verification reported failures")

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("ftoafmt failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ftoafmt",
		Short:         "Shortest round-trip binary-to-decimal formatting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFormatCmd(), newVerifyCmd(), newBenchCmd())
	return root
}

func newFormatCmd() *cobra.Command {
	var notation string
	var f32Input bool

	cmd := &cobra.Command{
		Use:   "format <value>...",
		Short: "Format one or more float64 (or, with --f32, float32) literals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := parseNotation(notation)
			if err != nil {
				return err
			}
			for _, arg := range args {
				if f32Input {
					v, err := strconv.ParseFloat(arg, 32)
					if err != nil {
						return err
					}
					cmd.Println(f32.Format(float32(v)))
					continue
				}
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return err
				}
				cmd.Println(present.Render(v, note))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&notation, "notation", "scientific", `output notation: "decimal", "scientific", or "auto"`)
	cmd.Flags().BoolVar(&f32Input, "f32", false, "parse and format inputs as float32 instead of float64")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var samples int
	var seed1, seed2 uint64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Sample random float64 values and check round-trip and shortness",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := verify.Run(cmd.Context(), verify.Config{
				Samples: samples,
				Seed1:   seed1,
				Seed2:   seed2,
			})
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"samples":           report.Samples,
				"round_trip_fail":   report.RoundTripFailure,
				"shortness_regress": report.ShortnessRegress,
				"len_avg":           report.LenAvg(),
				"len_max":           report.LenMax,
			}).Info("verification complete")
			if report.RoundTripFailure > 0 || report.ShortnessRegress > 0 {
				return errVerificationFailed
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 100000, "number of random samples to check")
	cmd.Flags().Uint64Var(&seed1, "seed1", 1, "first half of the PCG seed")
	cmd.Flags().Uint64Var(&seed2, "seed2", 2, "second half of the PCG seed")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var corpusSize, trials int
	var seed1, seed2 uint64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time core, special, and strconv over a shared random corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := bench.Run(bench.Config{
				CorpusSize: corpusSize,
				Trials:     trials,
				Seed1:      seed1,
				Seed2:      seed2,
			})
			if err != nil {
				return err
			}
			for _, r := range results {
				log.WithFields(logrus.Fields{
					"impl": r.Name,
					"min":  r.MinNanosPerOp,
					"max":  r.MaxNanosPerOp,
					"mean": r.MeanNanosPerOp,
				}).Info("bench result")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&corpusSize, "corpus-size", 100000, "number of random values to time per implementation")
	cmd.Flags().IntVar(&trials, "trials", 3, "number of timing trials; the minimum per-op time is kept")
	cmd.Flags().Uint64Var(&seed1, "seed1", 1, "first half of the PCG seed")
	cmd.Flags().Uint64Var(&seed2, "seed2", 2, "second half of the PCG seed")
	return cmd
}

func parseNotation(s string) (present.Notation, error) {
	switch s {
	case "decimal":
		return present.Decimal, nil
	case "scientific":
		return present.Scientific, nil
	case "auto":
		return present.Auto, nil
	default:
		return 0, fmt.Errorf("ftoafmt: unknown --notation %q", s)
	}
}
