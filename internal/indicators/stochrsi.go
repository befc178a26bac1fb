package indicators

// StochRSIResult holds the latest %K/%D pair and its classification.
type StochRSIResult struct {
	K      float64
	D      float64
	Signal string
}

/// StochRSI computes the stochastic RSI: an RSI series min-max normalized over
// a rolling stochPeriod window, smoothed by an SMA(kPeriod) into %K and again
// by an SMA(dPeriod) into %D. ok is false whenever any intermediate series is
// too short.
func StochRSI(closes []float64, rsiPeriod, stochPeriod, kPeriod, dPeriod int) (StochRSIResult, bool) {
	if len(closes) < rsiPeriod+stochPeriod+kPeriod+dPeriod {
		return StochRSIResult{}, false
	}

	rsiValues := make([]float64, 0, len(closes))
	for i := rsiPeriod + 1; i <= len(closes); i++ {
		if v, ok := RSI(closes[i-rsiPeriod-1:i], rsiPeriod); ok {
			rsiValues = append(rsiValues, v)
		}
	}
	if len(rsiValues) < stochPeriod {
		return StochRSIResult{}, false
	}

	stochValues := make([]float64, 0, len(rsiValues))
	for i := stochPeriod; i <= len(rsiValues); i++ {
		window := rsiValues[i-stochPeriod : i]
		minRSI, maxRSI := window[0], window[0]
		for _, v := range window {
			if v < minRSI {
				minRSI = v
			}
			if v > maxRSI {
				maxRSI = v
			}
		}
		stoch := 50.0
		if maxRSI != minRSI {
			stoch = (rsiValues[i-1] - minRSI) / (maxRSI - minRSI) * 100
		}
		stochValues = append(stochValues, stoch)
	}
	if len(stochValues) < kPeriod+dPeriod {
		return StochRSIResult{}, false
	}

	kValues := make([]float64, 0, len(stochValues))
	for i := kPeriod; i <= len(stochValues); i++ {
		kValues = append(kValues, mean(stochValues[i-kPeriod:i]))
	}
	if len(kValues) < dPeriod {
		return StochRSIResult{}, false
	}

	k := kValues[len(kValues)-1]
	d := mean(kValues[len(kValues)-dPeriod:])

	signal := "Neutral"
	switch {
	case k > 80 && d > 80:
		signal = "Overbought"
	case k < 20 && d < 20:
		signal = "Oversold"
	case k > d:
		signal = "Bullish"
	case k < d:
		signal = "Bearish"
	}

	return StochRSIResult{K: k, D: d, Signal: signal}, true
}
