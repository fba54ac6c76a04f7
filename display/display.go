// Package display renders solver numbers as calculator text.
//
// Non-finite values are spelled the way a calculator screen shows them
// ("NaN", "Infinity", "-Infinity") so that unguarded numeric edge cases stay
// visible instead of being hidden behind a generic error.
package display

import (
	"math"
	"strconv"
)

const (
	nanText    = "NaN"
	posInfText = "Infinity"
	negInfText = "-Infinity"
)

// Fixed formats v with exactly precision decimals.
// A negative precision falls back to Shortest.
func Fixed(v float64, precision int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if precision < 0 {
		return Shortest(v)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Shortest formats v with the fewest digits that round-trip, never in
// exponent form: 12, 7.5, 0.1.
func Shortest(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return nanText, true
	case math.IsInf(v, 1):
		return posInfText, true
	case math.IsInf(v, -1):
		return negInfText, true
	}

	return "", false
}
