// Package ftoa implements a shortest-round-trip binary64-to-decimal
// formatter. Given a finite float64, FormatFinite produces the shortest
// decimal digit string in scientific notation that parses back, under
// round-to-nearest-even, to exactly the original value.
//
// The algorithm unpacks the IEEE-754 mantissa and exponent, scales the
// mantissa by a precomputed 128-bit power of ten, and selects the
// shortest digit sequence whose value lies in the round-trip interval
// around the input. See short, uscale and trimZeros for the core steps.
//
// The package does not handle NaN, ±Inf, or presentation choices; see
// the special and present packages for those.
package ftoa
