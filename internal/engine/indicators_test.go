package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token_analyzer/internal/entity"
)

func activeSnapshot() entity.MarketSnapshot {
	return entity.MarketSnapshot{
		PriceUsd:          0.5,
		PriceChange5mPct:  2,
		PriceChange1hPct:  4,
		PriceChange6hPct:  8,
		PriceChange24hPct: 10,
		Volume5mUsd:       500,
		Volume1hUsd:       6000,
		Volume6hUsd:       30000,
		Volume24hUsd:      120000,
		LiquidityUsd:      60000,
		Fdv:               1_000_000,
		Txns5m:            entity.TxnSummary{Buys: 5, Sells: 3},
		Txns1h:            entity.TxnSummary{Buys: 60, Sells: 40},
		Txns6h:            entity.TxnSummary{Buys: 300, Sells: 250},
		Txns24h:           entity.TxnSummary{Buys: 1200, Sells: 1000},
	}
}

func TestComputeTechnicalMetrics_MomentumBlend(t *testing.T) {
	snap := activeSnapshot()

	m := ComputeTechnicalMetrics(snap)

	expected := 2*0.1 + 4*0.25 + 8*0.35 + 10*0.3
	assert.InDelta(t, expected, m.MomentumScore, 1e-9)
	assert.Equal(t, "Strong Bullish", m.MomentumLabel)
}

func TestComputeTechnicalMetrics_UniformChangeIsIdentity(t *testing.T) {
	// The weights sum to 1, so a uniform change across all windows passes
	// through unchanged.
	snap := activeSnapshot()
	snap.PriceChange5mPct = 7
	snap.PriceChange1hPct = 7
	snap.PriceChange6hPct = 7
	snap.PriceChange24hPct = 7

	m := ComputeTechnicalMetrics(snap)
	assert.InDelta(t, 7.0, m.MomentumScore, 1e-9)
}

func TestComputeTechnicalMetrics_ZeroDenominators(t *testing.T) {
	m := ComputeTechnicalMetrics(entity.MarketSnapshot{})

	assert.Equal(t, 1.0, m.RecentVolumeRatio)
	assert.Equal(t, 1.0, m.PriceRangeCompression)
	assert.Equal(t, 0.0, m.BuySellRatio24h)
	assert.Equal(t, 0.0, m.BuySellRatio1h)
	assert.Equal(t, 0.0, m.VolumeLiquidityRatio)
	assert.Equal(t, 0.0, m.AvgTradeSize)
	assert.Equal(t, 0.0, m.VolumeConsistency)
}

func TestComputeTechnicalMetrics_BuySellRatio(t *testing.T) {
	snap := activeSnapshot()
	snap.Txns24h = entity.TxnSummary{Buys: 150, Sells: 100}
	snap.Txns1h = entity.TxnSummary{Buys: 50, Sells: 0}

	m := ComputeTechnicalMetrics(snap)

	assert.InDelta(t, 1.5, m.BuySellRatio24h, 1e-9)
	// No sells in the window reads as zero, not infinity.
	assert.Equal(t, 0.0, m.BuySellRatio1h)
	assert.InDelta(t, 0.75, m.AvgBuySellRatio, 1e-9)
}

func TestComputeTechnicalMetrics_Velocity(t *testing.T) {
	snap := activeSnapshot()
	snap.PriceChange5mPct = 10
	snap.PriceChange1hPct = 8
	snap.PriceChange6hPct = 2
	snap.PriceChange24hPct = 0

	m := ComputeTechnicalMetrics(snap)

	assert.InDelta(t, 8.0, m.Velocity, 1e-9)
	assert.Equal(t, "Accelerating Up", m.VelocityLabel)
}

func TestComputeTechnicalMetrics_PerfectlyConsistentVolume(t *testing.T) {
	snap := activeSnapshot()
	snap.Volume5mUsd = 100
	snap.Volume1hUsd = 1200
	snap.Volume6hUsd = 7200
	snap.Volume24hUsd = 28800

	m := ComputeTechnicalMetrics(snap)

	assert.InDelta(t, 100.0, m.VolumeConsistency, 1e-9)
	assert.Equal(t, "Very Steady", m.ConsistencyLabel)
}

func TestPriceImpact_MonotonicAndCapped(t *testing.T) {
	liq := 10000.0

	assert.InDelta(t, 1.0, PriceImpact(100, liq), 1e-9)
	assert.InDelta(t, 5.0, PriceImpact(500, liq), 1e-9)
	assert.InDelta(t, 10.0, PriceImpact(1000, liq), 1e-9)
	assert.Equal(t, 100.0, PriceImpact(20000, liq))
}

func TestPriceImpact_NoLiquidityIsTotal(t *testing.T) {
	assert.Equal(t, 100.0, PriceImpact(100, 0))
}

func TestLabels_Boundaries(t *testing.T) {
	assert.Equal(t, "Neutral", MomentumLabel(2))
	assert.Equal(t, "Bullish", MomentumLabel(2.01))
	assert.Equal(t, "Strong Bearish", MomentumLabel(-5))

	assert.Equal(t, "Low", VolatilityLabel(2))
	assert.Equal(t, "Extreme", VolatilityLabel(10.5))

	assert.Equal(t, "Balanced", PressureLabel(1.0))
	assert.Equal(t, "Strong Sell Pressure", PressureLabel(0.5))

	assert.Equal(t, "High Risk - Extreme Volume", LiquidityStabilityLabel(6))
	assert.Equal(t, "Healthy Activity", LiquidityStabilityLabel(2))

	assert.Equal(t, "Very High", TxnFrequencyLabel(101))
	assert.Equal(t, "Low", TxnFrequencyLabel(20))

	assert.Equal(t, "Large Whale Activity", TradeSizeLabel(10001))
	assert.Equal(t, "Small Trades", TradeSizeLabel(999))
}

func TestComputeTechnicalMetrics_VolatilityScalesWithVolumeSpike(t *testing.T) {
	base := activeSnapshot()
	base.Volume1hUsd = base.Volume24hUsd / 24 // exactly average hour

	spiky := base
	spiky.Volume1hUsd = base.Volume24hUsd / 24 * 3 // triple the average

	calm := ComputeTechnicalMetrics(base)
	hot := ComputeTechnicalMetrics(spiky)

	require.Greater(t, calm.VolatilityIndex, 0.0)
	assert.Greater(t, hot.VolatilityIndex, calm.VolatilityIndex)
	assert.InDelta(t, calm.VolatilityIndex*2, hot.VolatilityIndex, 1e-9)
}
