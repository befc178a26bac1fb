package indicators

import "math"

// BollingerResult holds one Bollinger Bands evaluation. PercentB locates the
// current close inside the band in percent.
type BollingerResult struct {
	Upper    float64
	Middle   float64
	Lower    float64
	PercentB float64
}

// Bollinger computes a simple moving average band over the last period closes
// with stdDev standard deviations. ok is false when the series is shorter
// than the period. A degenerate band (upper == lower) reports %B as 50.
func Bollinger(closes []float64, period int, stdDev float64) (BollingerResult, bool) {
	if len(closes) < period {
		return BollingerResult{}, false
	}

	window := closes[len(closes)-period:]
	middle := mean(window)

	variance := 0.0
	for _, v := range window {
		variance += (v - middle) * (v - middle)
	}
	variance /= float64(period)
	std := math.Sqrt(variance)

	upper := middle + stdDev*std
	lower := middle - stdDev*std
	current := closes[len(closes)-1]

	percentB := 50.0
	if upper != lower {
		percentB = (current - lower) / (upper - lower) * 100
	}

	return BollingerResult{Upper: upper, Middle: middle, Lower: lower, PercentB: percentB}, true
}
