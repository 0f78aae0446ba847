package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt rounds half away from zero, matching how the report
// displays INR amounts.
func RoundToInt(f float64) int {
	return int(math.Round(f))
}
