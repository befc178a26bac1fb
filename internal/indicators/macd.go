package indicators

// MACDResult holds the latest MACD line, signal line and histogram values.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes the 12/26/9 moving average convergence divergence. The fast
// and slow EMA series are aligned on the shorter series' tail. ok is false
// when fewer than 26 closes are supplied or the MACD series is too short for
// a 9-period signal.
func MACD(closes []float64) (MACDResult, bool) {
	if len(closes) < 26 {
		return MACDResult{}, false
	}

	ema12 := EMASeries(closes, 12)
	ema26 := EMASeries(closes, 26)
	if len(ema12) == 0 || len(ema26) == 0 {
		return MACDResult{}, false
	}

	offset := len(ema12) - len(ema26)
	macdLine := make([]float64, len(ema26))
	for i := range ema26 {
		macdLine[i] = ema12[i+offset] - ema26[i]
	}

	if len(macdLine) < 9 {
		return MACDResult{}, false
	}
	signalLine := EMASeries(macdLine, 9)

	macd := macdLine[len(macdLine)-1]
	signal := signalLine[len(signalLine)-1]
	return MACDResult{MACD: macd, Signal: signal, Histogram: macd - signal}, true
}
