package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input into a number. Empty, non-numeric, NaN and
// infinite input all become 0; numeric fields never reject input.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Finite(v)
}

// ParseNonNegative is ParseAmount with negatives clamped to 0, for quantities
// and unit costs.
func ParseNonNegative(s string) float64 {
	return NonNegative(ParseAmount(s))
}

// Finite maps NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative maps NaN, ±Inf and negatives to 0.
func NonNegative(v float64) float64 {
	v = Finite(v)
	if v < 0 {
		return 0
	}
	return v
}
