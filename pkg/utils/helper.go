package utils

import (
	"strconv"
)

// ParseFloat converts string to float64, returning ok=false when absent or malformed
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}
