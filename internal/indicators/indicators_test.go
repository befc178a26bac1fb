package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear builds a strictly increasing close series starting at base.
func linear(n int, base, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base + float64(i)*step
	}
	return out
}

func TestRSI_AllGainsSaturates(t *testing.T) {
	closes := linear(20, 100, 1)

	value, ok := RSI(closes, 14)
	require.True(t, ok)
	assert.Equal(t, 100.0, value)
}

func TestRSI_AllLossesIsZero(t *testing.T) {
	closes := linear(20, 100, -1)

	value, ok := RSI(closes, 14)
	require.True(t, ok)
	assert.Equal(t, 0.0, value)
}

func TestRSI_InsufficientData(t *testing.T) {
	_, ok := RSI(linear(14, 100, 1), 14)
	assert.False(t, ok)
}

func TestRSI_BoundedOnMixedSeries(t *testing.T) {
	closes := []float64{44, 44.3, 44.1, 43.6, 44.3, 44.8, 45.1, 45.4, 45.8, 46.1, 45.9, 46.0, 45.6, 46.2, 46.2, 46.0}

	value, ok := RSI(closes, 14)
	require.True(t, ok)
	assert.Greater(t, value, 0.0)
	assert.Less(t, value, 100.0)
}

func TestEMASeries_FlatSeriesIsFlat(t *testing.T) {
	data := make([]float64, 30)
	for i := range data {
		data[i] = 5.0
	}

	ema := EMASeries(data, 12)
	require.Len(t, ema, len(data)-12+1)
	for _, v := range ema {
		assert.InDelta(t, 5.0, v, 1e-12)
	}
}

func TestEMASeries_TracksTrendAboveSMA(t *testing.T) {
	data := linear(40, 1, 1)

	ema := EMASeries(data, 10)
	require.NotNil(t, ema)
	// On a rising series the EMA lags the price but keeps rising.
	for i := 1; i < len(ema); i++ {
		assert.Greater(t, ema[i], ema[i-1])
	}
	assert.Less(t, ema[len(ema)-1], data[len(data)-1])
}

func TestEMASeries_ShortInput(t *testing.T) {
	assert.Nil(t, EMASeries(linear(5, 1, 1), 10))
}

func TestMACD_InsufficientCloses(t *testing.T) {
	_, ok := MACD(linear(25, 100, 1))
	assert.False(t, ok)
}

func TestMACD_RisingSeriesPositiveMACD(t *testing.T) {
	closes := linear(60, 100, 2)

	result, ok := MACD(closes)
	require.True(t, ok)
	// Fast EMA above slow EMA on a sustained uptrend.
	assert.Greater(t, result.MACD, 0.0)
	assert.Greater(t, result.Signal, 0.0)
}

func TestMACD_FlatSeriesNearZero(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 10.0
	}

	result, ok := MACD(closes)
	require.True(t, ok)
	assert.InDelta(t, 0.0, result.MACD, 1e-9)
	assert.InDelta(t, 0.0, result.Histogram, 1e-9)
}

func TestBollinger_FlatSeriesDegenerateBands(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 3.0
	}

	result, ok := Bollinger(closes, 20, 2)
	require.True(t, ok)
	assert.Equal(t, result.Upper, result.Lower)
	assert.Equal(t, 50.0, result.PercentB)
}

func TestBollinger_LastCloseAtUpperBand(t *testing.T) {
	closes := linear(25, 100, 1)

	result, ok := Bollinger(closes, 20, 2)
	require.True(t, ok)
	assert.Greater(t, result.Upper, result.Middle)
	assert.Less(t, result.Lower, result.Middle)
	assert.Greater(t, result.PercentB, 50.0)
}

func TestBollinger_InsufficientData(t *testing.T) {
	_, ok := Bollinger(linear(10, 100, 1), 20, 2)
	assert.False(t, ok)
}

func TestStochRSI_InsufficientData(t *testing.T) {
	_, ok := StochRSI(linear(20, 100, 1), 14, 14, 3, 3)
	assert.False(t, ok)
}

func TestStochRSI_OverboughtOnUptrend(t *testing.T) {
	closes := linear(60, 100, 1)

	result, ok := StochRSI(closes, 14, 14, 3, 3)
	require.True(t, ok)
	// Constant gains pin RSI at 100 and the stochastic window is flat,
	// which normalizes to the midpoint.
	assert.GreaterOrEqual(t, result.K, 0.0)
	assert.LessOrEqual(t, result.K, 100.0)
	assert.NotEmpty(t, result.Signal)
}

func TestStochRSI_BoundedOnOscillatingSeries(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/3)
	}

	result, ok := StochRSI(closes, 14, 14, 3, 3)
	require.True(t, ok)
	assert.GreaterOrEqual(t, result.K, 0.0)
	assert.LessOrEqual(t, result.K, 100.0)
	assert.GreaterOrEqual(t, result.D, 0.0)
	assert.LessOrEqual(t, result.D, 100.0)
}

func TestADX_InsufficientData(t *testing.T) {
	highs := linear(20, 101, 1)
	lows := linear(20, 99, 1)
	closes := linear(20, 100, 1)

	_, ok := ADX(highs, lows, closes, 14)
	assert.False(t, ok)
}

func TestADX_StrongUptrend(t *testing.T) {
	n := 60
	highs := linear(n, 102, 2)
	lows := linear(n, 98, 2)
	closes := linear(n, 100, 2)

	result, ok := ADX(highs, lows, closes, 14)
	require.True(t, ok)
	assert.Greater(t, result.PlusDI, result.MinusDI)
	assert.Greater(t, result.ADX, 20.0)
	assert.NotEqual(t, "Weak/No Trend", result.Trend)
}

func TestADX_ChoppyMarketWeakTrend(t *testing.T) {
	n := 80
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		mid := 100 + math.Sin(float64(i))
		highs[i] = mid + 1
		lows[i] = mid - 1
		closes[i] = mid
	}

	result, ok := ADX(highs, lows, closes, 14)
	require.True(t, ok)
	assert.Less(t, result.ADX, 40.0)
}

func TestSupportResistance_SwingPoints(t *testing.T) {
	n := 40
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		mid := 100 + 10*math.Sin(float64(i)/2)
		highs[i] = mid + 1
		lows[i] = mid - 1
		closes[i] = mid
	}

	levels, ok := SupportResistance(highs, lows, closes)
	require.True(t, ok)
	assert.Less(t, levels.Support, levels.Resistance)
	assert.InDelta(t, 89, levels.Support, 1.5)
	assert.InDelta(t, 111, levels.Resistance, 1.5)
}

func TestSupportResistance_MonotonicFallsBackToCloses(t *testing.T) {
	// A strictly rising series has no swing lows or highs, so the last 5
	// closes seed both sides.
	highs := linear(20, 102, 1)
	lows := linear(20, 98, 1)
	closes := linear(20, 100, 1)

	levels, ok := SupportResistance(highs, lows, closes)
	require.True(t, ok)
	assert.Equal(t, closes[15], levels.Support)
	assert.Equal(t, closes[19], levels.Resistance)
}

func TestSupportResistance_FlatSeriesRejected(t *testing.T) {
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	closes := make([]float64, 20)
	for i := range closes {
		highs[i], lows[i], closes[i] = 100, 100, 100
	}

	_, ok := SupportResistance(highs, lows, closes)
	assert.False(t, ok)
}

func TestSupportResistance_TooFewCandles(t *testing.T) {
	_, ok := SupportResistance(linear(5, 101, 1), linear(5, 99, 1), linear(5, 100, 1))
	assert.False(t, ok)
}
