package indicators

import "math"

// ADXResult holds the smoothed ADX with the latest directional index pair.
type ADXResult struct {
	ADX     float64
	PlusDI  float64
	MinusDI float64
	Trend   string
}

// ADX computes the average directional index with Wilder-smoothed true range
// and directional movement. ok is false when fewer than 2*period candles are
// supplied or too few DX points accumulate for the final smoothing.
func ADX(highs, lows, closes []float64, period int) (ADXResult, bool) {
	if len(highs) < period*2 || len(lows) < period*2 || len(closes) < period*2 {
		return ADXResult{}, false
	}

	n := len(highs)
	trueRanges := make([]float64, 0, n-1)
	plusDMs := make([]float64, 0, n-1)
	minusDMs := make([]float64, 0, n-1)

	for i := 1; i < n; i++ {
		high, low := highs[i], lows[i]
		prevHigh, prevLow, prevClose := highs[i-1], lows[i-1], closes[i-1]

		tr := math.Max(high-low, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
		trueRanges = append(trueRanges, tr)

		plusDM, minusDM := 0.0, 0.0
		if high-prevHigh > prevLow-low {
			plusDM = math.Max(high-prevHigh, 0)
		}
		if prevLow-low > high-prevHigh {
			minusDM = math.Max(prevLow-low, 0)
		}
		plusDMs = append(plusDMs, plusDM)
		minusDMs = append(minusDMs, minusDM)
	}

	if len(trueRanges) < period {
		return ADXResult{}, false
	}

	atr := sum(trueRanges[:period])
	smoothedPlusDM := sum(plusDMs[:period])
	smoothedMinusDM := sum(minusDMs[:period])

	dxValues := make([]float64, 0, len(trueRanges)-period)
	for i := period; i < len(trueRanges); i++ {
		atr = atr - atr/float64(period) + trueRanges[i]
		smoothedPlusDM = smoothedPlusDM - smoothedPlusDM/float64(period) + plusDMs[i]
		smoothedMinusDM = smoothedMinusDM - smoothedMinusDM/float64(period) + minusDMs[i]

		plusDI, minusDI := 0.0, 0.0
		if atr != 0 {
			plusDI = smoothedPlusDM / atr * 100
			minusDI = smoothedMinusDM / atr * 100
		}
		dx := 0.0
		if diSum := plusDI + minusDI; diSum != 0 {
			dx = math.Abs(plusDI-minusDI) / diSum * 100
		}
		dxValues = append(dxValues, dx)
	}

	if len(dxValues) < period {
		return ADXResult{}, false
	}

	adx := mean(dxValues[:period])
	for i := period; i < len(dxValues); i++ {
		adx = (adx*float64(period-1) + dxValues[i]) / float64(period)
	}

	plusDI, minusDI := 0.0, 0.0
	if atr != 0 {
		plusDI = smoothedPlusDM / atr * 100
		minusDI = smoothedMinusDM / atr * 100
	}

	trend := "Weak/No Trend"
	switch {
	case adx >= 60:
		trend = "Very Strong Trend"
	case adx >= 40:
		trend = "Strong Trend"
	case adx >= 20:
		trend = "Moderate Trend"
	}

	return ADXResult{ADX: adx, PlusDI: plusDI, MinusDI: minusDI, Trend: trend}, true
}

func sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}
