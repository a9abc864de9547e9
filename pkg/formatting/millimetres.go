// Package formatting provides human-readable formatting and parsing utilities
// for millimetre dimension values.
package formatting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Millimetres formats a millimetre value to three decimal places,
// the resolution used throughout dimension reporting.
func Millimetres(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Round rounds a millimetre value to three decimal places.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Deviation renders a nominal size and signed deviation as a display bound,
// e.g. "25.000 - 0.030" or "240.000 + 0.072". The rendering is for reports
// only; numeric comparisons never parse it back.
func Deviation(nominal int, deviation float64) string {
	sign := "+"
	if deviation < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s %s %s", Millimetres(float64(nominal)), sign, Millimetres(math.Abs(deviation)))
}

// ParseMeasurement parses a millimetre measurement string into a float64.
// Rejects empty strings and non-numeric input.
func ParseMeasurement(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty measurement")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement: %q", s)
	}

	return v, nil
}
