package engine

import (
	"math"

	"token_analyzer/internal/entity"
)

// Momentum blend weights per timeframe. They sum to 1 so the score keeps the
// unit of a percentage change.
const (
	weight5m  = 0.1
	weight1h  = 0.25
	weight6h  = 0.35
	weight24h = 0.3
)

// ComputeTechnicalMetrics derives every snapshot-based indicator in one pass.
// Pure arithmetic; each division is guarded against a zero denominator with
// the fallback documented on the corresponding metric.
func ComputeTechnicalMetrics(snap entity.MarketSnapshot) entity.TechnicalMetrics {
	m := entity.TechnicalMetrics{}

	// Momentum: weighted blend favoring the 6h window.
	m.MomentumScore = snap.PriceChange5mPct*weight5m +
		snap.PriceChange1hPct*weight1h +
		snap.PriceChange6hPct*weight6h +
		snap.PriceChange24hPct*weight24h
	m.MomentumLabel = MomentumLabel(m.MomentumScore)

	// Volatility: same blend over absolute changes, scaled by how hot the
	// last hour's volume runs against the 24h hourly average.
	priceVolatility := math.Abs(snap.PriceChange5mPct)*weight5m +
		math.Abs(snap.PriceChange1hPct)*weight1h +
		math.Abs(snap.PriceChange6hPct)*weight6h +
		math.Abs(snap.PriceChange24hPct)*weight24h
	m.RecentVolumeRatio = 1.0
	if snap.Volume24hUsd > 0 {
		m.RecentVolumeRatio = snap.Volume1hUsd / (snap.Volume24hUsd / 24)
	}
	m.VolatilityIndex = priceVolatility * (1 + (m.RecentVolumeRatio-1)*0.5)
	m.VolatilityLabel = VolatilityLabel(m.VolatilityIndex)

	// Buy/sell pressure: per-window buys/sells ratio, 0 when nobody sold.
	m.BuySellRatio24h = buySellRatio(snap.Txns24h)
	m.BuySellRatio1h = buySellRatio(snap.Txns1h)
	m.AvgBuySellRatio = (m.BuySellRatio24h + m.BuySellRatio1h) / 2
	m.PressureLabel = PressureLabel(m.AvgBuySellRatio)

	// Velocity: short-term minus long-term momentum.
	shortTerm := (snap.PriceChange5mPct + snap.PriceChange1hPct) / 2
	longTerm := (snap.PriceChange6hPct + snap.PriceChange24hPct) / 2
	m.Velocity = shortTerm - longTerm
	m.VelocityLabel = VelocityLabel(m.Velocity)

	// Price-range compression: 5m swing relative to the 24h swing.
	volatility5m := math.Abs(snap.PriceChange5mPct)
	volatility24h := math.Abs(snap.PriceChange24hPct)
	m.PriceRangeCompression = 1.0
	if volatility24h > 0 {
		m.PriceRangeCompression = volatility5m / volatility24h
	}
	m.CompressionLabel = CompressionLabel(m.PriceRangeCompression)

	// Volume consistency over 24h-equivalent extrapolations of each window.
	// The fixed multipliers overstate variance for spiky tokens; kept as-is
	// for output compatibility.
	m.VolumeConsistency = volumeConsistency(snap)
	m.ConsistencyLabel = ConsistencyLabel(m.VolumeConsistency)

	m.VolumeLiquidityRatio = 0
	if snap.LiquidityUsd > 0 {
		m.VolumeLiquidityRatio = snap.Volume24hUsd / snap.LiquidityUsd
	}
	m.LiquidityStabilityLabel = LiquidityStabilityLabel(m.VolumeLiquidityRatio)

	m.TxnFrequency1h = snap.Txns1h.Buys + snap.Txns1h.Sells
	m.TxnFrequencyLabel = TxnFrequencyLabel(m.TxnFrequency1h)

	txns24h := snap.Txns24h.Buys + snap.Txns24h.Sells
	m.AvgTradeSize = 0
	if txns24h > 0 {
		m.AvgTradeSize = snap.Volume24hUsd / float64(txns24h)
	}
	m.TradeSizeLabel = TradeSizeLabel(m.AvgTradeSize)

	m.PriceImpact100 = PriceImpact(100, snap.LiquidityUsd)
	m.PriceImpact500 = PriceImpact(500, snap.LiquidityUsd)
	m.PriceImpact1000 = PriceImpact(1000, snap.LiquidityUsd)

	return m
}

func buySellRatio(t entity.TxnSummary) float64 {
	if t.Sells <= 0 {
		return 0
	}
	return float64(t.Buys) / float64(t.Sells)
}

// volumeConsistency extrapolates each window onto a 24h basis and measures
// their relative spread: 100 means every window tells the same story.
func volumeConsistency(snap entity.MarketSnapshot) float64 {
	extrapolated := []float64{
		snap.Volume5mUsd * 288,
		snap.Volume1hUsd * 24,
		snap.Volume6hUsd * 4,
		snap.Volume24hUsd,
	}
	samples := make([]float64, 0, len(extrapolated))
	for _, v := range extrapolated {
		if v > 0 {
			samples = append(samples, v)
		}
	}
	if len(samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(len(samples))
	if mean <= 0 {
		return 0
	}

	variance := 0.0
	for _, v := range samples {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(samples))
	stddev := math.Sqrt(variance)

	return (1 - stddev/mean) * 100
}

// PriceImpact estimates the percentage slippage of a USD buy against the
// available liquidity, capped at 100. Zero liquidity means total impact.
func PriceImpact(buyUsd, liquidityUsd float64) float64 {
	if liquidityUsd == 0 {
		return 100
	}
	return math.Min(100, buyUsd/liquidityUsd*100)
}

// MomentumLabel classifies a momentum score.
func MomentumLabel(score float64) string {
	switch {
	case score > 5:
		return "Strong Bullish"
	case score > 2:
		return "Bullish"
	case score > -2:
		return "Neutral"
	case score > -5:
		return "Bearish"
	default:
		return "Strong Bearish"
	}
}

// VolatilityLabel classifies a volatility index.
func VolatilityLabel(index float64) string {
	switch {
	case index > 10:
		return "Extreme"
	case index > 5:
		return "High"
	case index > 2:
		return "Moderate"
	default:
		return "Low"
	}
}

// PressureLabel classifies the averaged buy/sell ratio.
func PressureLabel(avgRatio float64) string {
	switch {
	case avgRatio > 1.5:
		return "Strong Buy Pressure"
	case avgRatio > 1.1:
		return "Buy Pressure"
	case avgRatio > 0.9:
		return "Balanced"
	case avgRatio > 0.6:
		return "Sell Pressure"
	default:
		return "Strong Sell Pressure"
	}
}

// VelocityLabel classifies momentum acceleration.
func VelocityLabel(velocity float64) string {
	switch {
	case velocity > 3:
		return "Accelerating Up"
	case velocity > 1:
		return "Gaining Momentum"
	case velocity > -1:
		return "Stable"
	case velocity > -3:
		return "Losing Momentum"
	default:
		return "Accelerating Down"
	}
}

// CompressionLabel classifies the 5m/24h volatility ratio.
func CompressionLabel(compression float64) string {
	switch {
	case compression > 2:
		return "Extremely Volatile"
	case compression > 1.5:
		return "High Volatility"
	case compression > 0.8:
		return "Moderate"
	default:
		return "Low Volatility"
	}
}

// ConsistencyLabel classifies volume consistency.
func ConsistencyLabel(consistency float64) string {
	switch {
	case consistency > 70:
		return "Very Steady"
	case consistency > 50:
		return "Steady"
	case consistency > 30:
		return "Moderate"
	default:
		return "Erratic"
	}
}

// LiquidityStabilityLabel classifies the volume-to-liquidity ratio.
func LiquidityStabilityLabel(ratio float64) string {
	switch {
	case ratio > 5:
		return "High Risk - Extreme Volume"
	case ratio > 3:
		return "Moderate Risk"
	case ratio > 1:
		return "Healthy Activity"
	default:
		return "Low Activity"
	}
}

// TxnFrequencyLabel classifies hourly transaction counts.
func TxnFrequencyLabel(txns int) string {
	switch {
	case txns > 100:
		return "Very High"
	case txns > 50:
		return "High"
	case txns > 20:
		return "Moderate"
	default:
		return "Low"
	}
}

// TradeSizeLabel classifies the average 24h trade size in USD.
func TradeSizeLabel(size float64) string {
	switch {
	case size > 10000:
		return "Large Whale Activity"
	case size > 5000:
		return "Medium-Large Trades"
	case size > 1000:
		return "Medium Trades"
	default:
		return "Small Trades"
	}
}
