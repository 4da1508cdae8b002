package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice extracts the first run of digits from a free-text price
// string ("$45.000", "USD 899", "1,250.50 por persona"). Commas are
// thousands separators and are stripped; the first decimal point is
// kept. A string with no digits parses to +Inf so it never wins a
// minimum comparison.
func ParsePrice(raw string) float64 {
	start := -1
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return math.Inf(1)
	}

	var b strings.Builder
	sawDot := false
scan:
	for _, r := range raw[start:] {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',':
			// thousands separator
		case r == '.' && !sawDot:
			sawDot = true
			b.WriteRune(r)
		default:
			break scan
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return math.Inf(1)
	}
	return value
}
