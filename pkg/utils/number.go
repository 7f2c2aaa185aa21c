package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a display-formatted numeric string ("$1,234.50",
// "85%") into a float. Malformed values degrade to 0, never an error.
func ParseNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	cleaned = strings.NewReplacer("$", "", ",", "", "%", "").Replace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseROAS parses a target-ROAS string, tolerating an "x" multiplier
// suffix or prefix ("4x", "X3.5") and currency formatting.
func ParseROAS(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	cleaned = strings.NewReplacer("$", "", ",", "", "x", "", "X", "").Replace(cleaned)

	value, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}

	return value
}

// FormatNumber renders a float the way the source sheets do for sums:
// no exponent, no trailing zeros ("200", "0.5").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
