// Package special provides the sign-and-special-value fast path the
// core ftoa package leaves as an external collaborator: it classifies
// NaN and ±Inf before any call reaches ftoa.Buffer.FormatFinite, which
// assumes a finite input.
package special

import (
	"math"

	"github.com/mvdan-sh/ftoa"
)

// Format returns the shortest round-trip decimal representation of f,
// or "NaN", "+Inf", "-Inf" for the non-finite cases ftoa itself does
// not accept. It is total over every float64 bit pattern.
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		var buf ftoa.Buffer
		return buf.FormatFinite(f)
	}
}

// FormatAppend appends the formatted representation of f to dst and
// returns the extended slice.
func FormatAppend(dst []byte, f float64) []byte {
	return append(dst, Format(f)...)
}
