// Package present picks between decimal and scientific notation for a
// float64, the way most dtoa front-ends layer a presentation choice on
// top of a scientific-only core. It never re-derives digits: it always
// starts from the core's shortest scientific rendering and, when asked
// for decimal form, shifts the decimal point over the same digit
// string instead of reformatting from the bits.
package present

import (
	"strconv"
	"strings"

	"github.com/mvdan-sh/ftoa/special"
)

// Notation selects the output form Render produces.
type Notation int

const (
	// Scientific keeps the core's native D[.DDD]e±EE[E] form.
	Scientific Notation = iota
	// Decimal always renders plain decimal, however long that makes
	// the output.
	Decimal
	// Auto applies the same crossover strconv and most dtoa front
	// ends use: decimal for exponents in [-4, 21), scientific
	// otherwise.
	Auto
)

// crossoverLow and crossoverHigh bound the exponent range Auto
// renders as plain decimal, matching strconv's %v/%g heuristic.
const (
	crossoverLow  = -4
	crossoverHigh = 21
)

// Render returns f formatted per notation. It is total over every
// float64 value: NaN and ±Inf pass through special.Format unchanged
// regardless of notation, since neither has a decimal expansion.
func Render(f float64, notation Notation) string {
	sci := special.Format(f)
	if notation == Scientific {
		return sci
	}

	sign, digits, exp, ok := splitScientific(sci)
	if !ok {
		// "0.0", "-0.0", "NaN", "+Inf", "-Inf": no exponent to
		// rewrite.
		return sci
	}

	if notation == Auto && (exp < crossoverLow || exp >= crossoverHigh) {
		return sci
	}

	return sign + toPlainDecimal(digits, exp)
}

// splitScientific decomposes a core-rendered string of the form
// [-]D[.DDD]e±EE[E] into its sign, significant-digit string (with the
// decimal point removed), and base-10 exponent of the leading digit.
// ok is false for inputs with no exponent marker, i.e. "0.0", "-0.0",
// or the special values.
func splitScientific(s string) (sign, digits string, exp int, ok bool) {
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	eIdx := strings.IndexByte(s, 'e')
	if eIdx < 0 {
		return "", "", 0, false
	}
	exp, err := strconv.Atoi(s[eIdx+1:])
	if err != nil {
		return "", "", 0, false
	}
	digits = strings.Replace(s[:eIdx], ".", "", 1)
	return sign, digits, exp, true
}

// toPlainDecimal rewrites a significant-digit string with leading
// digit at position exp (value = 0.digits * 10^(exp+1)) into plain
// decimal notation.
func toPlainDecimal(digits string, exp int) string {
	if exp >= 0 {
		intLen := exp + 1
		if intLen >= len(digits) {
			return digits + strings.Repeat("0", intLen-len(digits)) + ".0"
		}
		return digits[:intLen] + "." + digits[intLen:]
	}
	return "0." + strings.Repeat("0", -exp-1) + digits
}
