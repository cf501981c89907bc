package keypad

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a result the way a calculator display shows a double: plain
// decimals with at least one fractional digit between 1e-3 and 1e7, and
// scientific notation like 1.0E7 outside that range.
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(f); a >= 1e-3 && a < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	// exp always parses; FormatFloat writes a sign and at least two digits.
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}
