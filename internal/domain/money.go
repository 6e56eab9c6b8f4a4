package domain

import (
	"fmt"
	"math"
)

// RupeesToPaise converts a float64 rupee amount to int64 paise.
// It validates that the input has at most 2 decimal places and returns
// an error if more precision is provided. Uses math.Round after
// multiplying by 100 to handle floating-point representation issues.
func RupeesToPaise(f float64) (int64, error) {
	// Multiply by 1000 to check for a third decimal place.
	// Round to avoid floating-point artifacts (e.g., 1.10 * 1000 = 1099.9999...).
	scaled := math.Round(f * 1000)
	if math.Mod(scaled, 10) != 0 {
		return 0, fmt.Errorf("monetary values must have at most 2 decimal places")
	}

	paise := math.Round(f * 100)
	return int64(paise), nil
}

// PaiseToRupees converts an int64 paise value to a float64 rupee amount.
func PaiseToRupees(p int64) float64 {
	return float64(p) / 100.0
}
