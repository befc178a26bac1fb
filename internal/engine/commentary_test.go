package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"token_analyzer/internal/entity"
)

func TestBuildCommentary_HoneypotOverridesEverything(t *testing.T) {
	snap := activeSnapshot()
	m := ComputeTechnicalMetrics(snap)

	c := BuildCommentary(CommentaryInputs{
		Metrics:      m,
		Risk:         entity.RiskAssessment{Score: 90, Level: "low", Liquidity: entity.LiquidityInfo{Status: "locked"}},
		Survival:     entity.SurvivalAnalysis{Passed24h: true, SurvivalScore: 80},
		Honeypot:     entity.HoneypotFinding{IsHoneypot: true},
		TokenAgeDays: 30,
	})

	assert.Equal(t, "Avoid", c.Recommendation)
	assert.Equal(t, "Avoid / Exit", c.Scenario)
	assert.Equal(t, "Bearish", c.Sentiment)
	assert.Equal(t, "Critical risk factors override all technical signals.", c.SentimentDetail)
	assert.True(t, strings.HasPrefix(c.OverallView, "🚨 CRITICAL: Contract analysis confirms honeypot"))
}

func TestBuildCommentary_WeakFirstDayToken(t *testing.T) {
	c := BuildCommentary(CommentaryInputs{
		Metrics:      ComputeTechnicalMetrics(entity.MarketSnapshot{}),
		Honeypot:     entity.DefaultHoneypotFinding(),
		Survival:     entity.SurvivalAnalysis{Passed24h: false, SurvivalScore: 20},
		TokenAgeDays: 0.2,
	})

	assert.Equal(t, "Wait", c.Recommendation)
	assert.Equal(t, "Watchlist / Research", c.Scenario)
}

func TestBuildCommentary_EstablishedBuy(t *testing.T) {
	snap := activeSnapshot()
	m := ComputeTechnicalMetrics(snap)

	c := BuildCommentary(CommentaryInputs{
		Metrics:      m,
		Risk:         entity.RiskAssessment{Score: 85, Level: "low", Liquidity: entity.LiquidityInfo{Status: "locked"}},
		Survival:     entity.SurvivalAnalysis{Passed24h: true, SurvivalScore: 80},
		Honeypot:     entity.DefaultHoneypotFinding(),
		TokenAgeDays: 30,
	})

	assert.Equal(t, "Buy", c.Recommendation)
	assert.Equal(t, "Accumulate / Enter", c.Scenario)
	assert.Equal(t, "Bullish", c.Sentiment)
}

func TestBuildCommentary_MemeTokenBuyBranch(t *testing.T) {
	snap := activeSnapshot()
	snap.Txns24h = entity.TxnSummary{Buys: 1500, Sells: 1000}
	m := ComputeTechnicalMetrics(snap)

	c := BuildCommentary(CommentaryInputs{
		Metrics:      m,
		Risk:         entity.RiskAssessment{Score: 70, Level: "moderate", Liquidity: entity.LiquidityInfo{Status: "locked"}},
		Survival:     entity.SurvivalAnalysis{Passed24h: true, SurvivalScore: 65},
		Honeypot:     entity.DefaultHoneypotFinding(),
		TokenAgeDays: 3,
	})

	assert.Equal(t, "Buy", c.Recommendation)
	assert.Contains(t, c.RecommendationDetail, "passed 24h survival period")
}

func TestBuildCommentary_CriticalRugNoRecovery(t *testing.T) {
	c := BuildCommentary(CommentaryInputs{
		Metrics:  ComputeTechnicalMetrics(entity.MarketSnapshot{}),
		Honeypot: entity.DefaultHoneypotFinding(),
		RugRisk: entity.RugRiskResult{
			IsHighRisk: true,
			Severity:   entity.RugSeverityCritical,
			Recovery:   entity.RecoveryOutlook{Possible: false},
		},
		Survival:     entity.SurvivalAnalysis{Passed24h: true, SurvivalScore: 10},
		TokenAgeDays: 10,
	})

	assert.Equal(t, "Avoid", c.Recommendation)
	assert.Equal(t, "Token has crashed with no recovery signs. Likely rugged or dead. Do not buy.", c.RecommendationDetail)
	assert.Equal(t, "Bearish", c.Sentiment)
	assert.True(t, strings.HasPrefix(c.OverallView, "🚨 CRITICAL: Token has experienced catastrophic price collapse"))
}

func TestSentiment_BlendedScoreTiers(t *testing.T) {
	base := CommentaryInputs{Honeypot: entity.DefaultHoneypotFinding()}

	base.Metrics = entity.TechnicalMetrics{MomentumScore: 10, AvgBuySellRatio: 1.2}
	sentiment, _ := sentimentFor(base)
	assert.Equal(t, "Bullish", sentiment)

	base.Metrics = entity.TechnicalMetrics{MomentumScore: 0, AvgBuySellRatio: 1.0}
	sentiment, _ = sentimentFor(base)
	assert.Equal(t, "Neutral", sentiment)

	base.Metrics = entity.TechnicalMetrics{MomentumScore: -20, AvgBuySellRatio: 0.5}
	sentiment, _ = sentimentFor(base)
	assert.Equal(t, "Bearish", sentiment)
}

func TestTechnicalView_UsesLowercasedLabels(t *testing.T) {
	m := ComputeTechnicalMetrics(activeSnapshot())

	view := technicalView(m)
	assert.Contains(t, view, strings.ToLower(m.MomentumLabel))
	assert.Contains(t, view, strings.ToLower(m.PressureLabel))
	assert.Contains(t, view, strings.ToLower(m.VolatilityLabel))
}
