package utils

import "fmt"

// CompactUSD renders a USD amount in the short form used across flags and
// commentary: $1.23M, $45.60K, $789.00.
func CompactUSD(amount float64) string {
	switch {
	case amount >= 1000000:
		return fmt.Sprintf("$%.2fM", amount/1000000)
	case amount >= 1000:
		return fmt.Sprintf("$%.2fK", amount/1000)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
