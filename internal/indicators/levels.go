package indicators

import "math"

// Levels holds a support/resistance pair derived from swing points.
type Levels struct {
	Support    float64
	Resistance float64
}

// SupportResistance scans for local swing lows and highs (a candle lower or
// higher than both neighbors) and selects the extreme of each set. When no
// swing points exist the last 5 closes stand in. ok is false for series under
// 10 candles or when the derived support is not below the resistance, which
// happens on very short ambiguous series.
func SupportResistance(highs, lows, closes []float64) (Levels, bool) {
	if len(highs) < 10 || len(lows) < 10 || len(closes) < 10 {
		return Levels{}, false
	}

	var supportLevels, resistanceLevels []float64
	for i := 1; i < len(lows)-1; i++ {
		if lows[i] < lows[i-1] && lows[i] < lows[i+1] {
			supportLevels = append(supportLevels, lows[i])
		}
	}
	for i := 1; i < len(highs)-1; i++ {
		if highs[i] > highs[i-1] && highs[i] > highs[i+1] {
			resistanceLevels = append(resistanceLevels, highs[i])
		}
	}

	if len(supportLevels) == 0 {
		supportLevels = append(supportLevels, closes[len(closes)-5:]...)
	}
	if len(resistanceLevels) == 0 {
		resistanceLevels = append(resistanceLevels, closes[len(closes)-5:]...)
	}

	support, okSupport := minFinite(supportLevels)
	resistance, okResistance := maxFinite(resistanceLevels)
	if !okSupport || !okResistance || support >= resistance {
		return Levels{}, false
	}

	return Levels{Support: support, Resistance: resistance}, true
}

func minFinite(data []float64) (float64, bool) {
	best, found := 0.0, false
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v < best {
			best, found = v, true
		}
	}
	return best, found
}

func maxFinite(data []float64) (float64, bool) {
	best, found := 0.0, false
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}
