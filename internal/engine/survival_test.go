package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token_analyzer/internal/entity"
)

func TestEvaluateSurvival_FreshLaunchStrongMomentum(t *testing.T) {
	snap := activeSnapshot()
	snap.Txns24h = entity.TxnSummary{Buys: 1300, Sells: 1000}
	m := ComputeTechnicalMetrics(snap)
	require.Greater(t, m.MomentumScore, 5.0)
	require.Greater(t, m.BuySellRatio24h, 1.2)

	analysis := EvaluateSurvival(snap, SurvivalInputs{
		TokenAgeDays: 0.5,
		Metrics:      m,
		Socials:      entity.SocialPresence{},
	})

	assert.False(t, analysis.Passed24h)
	assert.InDelta(t, 12.0, analysis.AgeInHours, 1e-9)
	assert.True(t, strings.HasPrefix(analysis.Recommendation, "ACTIVE OPPORTUNITY"))
	assert.Contains(t, analysis.PositiveIndicators,
		"Within 24h launch window - prime momentum phase")
	assert.Contains(t, analysis.Risks,
		"Still in high-risk initial period - watch for dump signals")
}

func TestEvaluateSurvival_DumpSignalsFirstDay(t *testing.T) {
	snap := entity.MarketSnapshot{
		PriceChange24hPct: -40,
		PriceChange6hPct:  -30,
		PriceChange1hPct:  -10,
		Volume24hUsd:      500,
		LiquidityUsd:      2000,
		Txns24h:           entity.TxnSummary{Buys: 10, Sells: 50},
	}
	m := ComputeTechnicalMetrics(snap)

	analysis := EvaluateSurvival(snap, SurvivalInputs{TokenAgeDays: 0.3, Metrics: m})

	assert.True(t, strings.HasPrefix(analysis.Recommendation, "AVOID"))
}

func TestEvaluateSurvival_ScoreClampedLow(t *testing.T) {
	snap := entity.MarketSnapshot{
		PriceChange24hPct: -90,
		PriceChange6hPct:  -70,
		PriceChange1hPct:  -50,
		PriceChange5mPct:  -10,
		Volume24hUsd:      200,
		Volume1hUsd:       1,
		LiquidityUsd:      500,
		Txns24h:           entity.TxnSummary{Buys: 1, Sells: 50},
	}
	m := ComputeTechnicalMetrics(snap)

	analysis := EvaluateSurvival(snap, SurvivalInputs{TokenAgeDays: 1.5, Metrics: m})

	assert.GreaterOrEqual(t, analysis.SurvivalScore, 0)
	assert.LessOrEqual(t, analysis.SurvivalScore, 100)
	assert.Equal(t, "Very Low", SurvivalProbability(analysis.SurvivalScore))
	assert.True(t, strings.HasPrefix(analysis.Recommendation, "DYING"))
}

func TestEvaluateSurvival_EstablishedToken(t *testing.T) {
	snap := activeSnapshot()
	m := ComputeTechnicalMetrics(snap)

	analysis := EvaluateSurvival(snap, SurvivalInputs{
		TokenAgeDays: 30,
		Metrics:      m,
		Socials: entity.SocialPresence{
			HasWebsite: true,
			Platforms:  []entity.SocialPlatform{{Platform: "twitter"}},
		},
		HasEnhancedInfo: true,
	})

	assert.True(t, analysis.Passed24h)
	assert.GreaterOrEqual(t, analysis.SurvivalScore, 70)
	assert.True(t, strings.HasPrefix(analysis.Recommendation, "ESTABLISHED"))
	assert.Contains(t, analysis.PositiveIndicators, "Full social presence - legitimate project")
}

func TestSurvivalProbability_Bands(t *testing.T) {
	assert.Equal(t, "Very High", SurvivalProbability(80))
	assert.Equal(t, "High", SurvivalProbability(79))
	assert.Equal(t, "Moderate", SurvivalProbability(40))
	assert.Equal(t, "Low", SurvivalProbability(39))
	assert.Equal(t, "Very Low", SurvivalProbability(19))
}
