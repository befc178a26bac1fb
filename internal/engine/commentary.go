package engine

import (
	"fmt"
	"strings"

	"token_analyzer/internal/entity"
)

// CommentaryInputs collects every upstream result the prose layer reads. The
// flow is strictly one-directional: commentary never feeds back into scores.
type CommentaryInputs struct {
	Metrics      entity.TechnicalMetrics
	Risk         entity.RiskAssessment
	RugRisk      entity.RugRiskResult
	Survival     entity.SurvivalAnalysis
	Honeypot     entity.HoneypotFinding
	TokenAgeDays float64
}

// BuildCommentary derives sentiment, recommendation, scenario and the
// templated prose. The recommendation cascade is an ordered if/else chain
// evaluated top-down with first-match-wins semantics; reordering the branches
// changes behavior.
func BuildCommentary(in CommentaryInputs) entity.Commentary {
	c := entity.Commentary{}
	c.Recommendation, c.RecommendationDetail = recommend(in)
	c.Scenario, c.ScenarioDetail = scenarioFor(c.Recommendation)
	c.Sentiment, c.SentimentDetail = sentimentFor(in)
	c.TechnicalView = technicalView(in.Metrics)
	c.OverallView = overallView(in)
	return c
}

func recommend(in CommentaryInputs) (string, string) {
	m := in.Metrics
	isMemeToken := in.TokenAgeDays < 7

	switch {
	case in.Honeypot.IsHoneypot:
		return "Avoid", "Token flagged as honeypot or has suspicious contract code. Do not buy."
	case !in.Survival.Passed24h && in.Survival.SurvivalScore < 30:
		return "Wait", "Token is less than 24 hours old and showing weak survival signals. Most tokens die in this period - wait for 24h+ and monitor volume/price stability before considering entry."
	case !in.Survival.Passed24h:
		return "Research", "Token under 24 hours old but showing some positive signals. High risk period - only enter with tight stop losses and accept that most tokens die within 24h."
	case in.RugRisk.IsHighRisk && in.RugRisk.Severity == entity.RugSeverityCritical:
		if in.RugRisk.Recovery.Possible {
			return "Avoid", "Severe dump detected but showing early recovery signs. Extreme risk - only for experienced traders with strict stop losses."
		}
		return "Avoid", "Token has crashed with no recovery signs. Likely rugged or dead. Do not buy."
	case in.RugRisk.IsHighRisk && in.RugRisk.Severity == entity.RugSeverityHigh:
		return "Avoid", "Sharp price drop indicates potential rug or major dump. Wait for clear recovery signals."
	case isMemeToken:
		hasStrongMomentum := m.MomentumScore > 5
		hasGoodBuyPressure := m.BuySellRatio24h > 1.1
		hasStabilized := in.TokenAgeDays > 1 && m.VolumeConsistency > 25
		isNotRugged := !in.RugRisk.IsHighRisk
		goodSurvival := in.Survival.SurvivalScore >= 50

		switch {
		case hasStrongMomentum && hasGoodBuyPressure && in.Risk.Score >= 60 && isNotRugged && goodSurvival:
			return "Buy", "Strong bullish momentum with healthy buy pressure. Token passed 24h survival period with favorable metrics."
		case m.MomentumScore > 0 && m.BuySellRatio24h > 0.9 && in.Risk.Score >= 50 && hasStabilized:
			return "Hold", "Positive momentum developing. Token showing signs of stabilization after launch phase."
		case in.Risk.Score < 40 || m.MomentumScore < -10 || m.BuySellRatio24h < 0.7 || in.Survival.SurvivalScore < 30:
			return "Avoid", "Negative momentum and risk factors outweigh potential upside. Token may be dying."
		default:
			return "Research", "Mixed signals. High volatility expected for new launch. Watch for clear trend formation."
		}
	default:
		switch {
		case in.Risk.Score >= 70 && m.MomentumScore > 2 && m.VolatilityIndex < 8:
			return "Buy", "Strong fundamentals with bullish momentum support entry opportunities."
		case in.Risk.Score >= 50 && m.MomentumScore > -2:
			return "Hold", "Decent fundamentals with mixed momentum. Monitor for clearer signals."
		default:
			return "Sell", "Risk factors and negative momentum suggest defensive positioning."
		}
	}
}

func scenarioFor(recommendation string) (string, string) {
	switch recommendation {
	case "Buy":
		return "Accumulate / Enter", "Favorable setup with momentum confirmation supports gradual position building."
	case "Sell", "Avoid":
		return "Avoid / Exit", "Risk-reward unfavorable; capital better deployed elsewhere."
	case "Hold":
		return "Hold / Monitor", "Maintain position and watch for momentum shifts or trend confirmation."
	default:
		return "Watchlist / Research", "Monitor for improved momentum or reduced volatility before considering entry."
	}
}

// sentimentFor is independent of the recommendation cascade: critical risk
// overrides first, otherwise a blended score of momentum and buy pressure is
// thresholded into tiers with distinct detail text.
func sentimentFor(in CommentaryInputs) (string, string) {
	if in.Honeypot.IsHoneypot || (in.RugRisk.IsHighRisk && !in.RugRisk.Recovery.Possible) {
		return "Bearish", "Critical risk factors override all technical signals."
	}
	if in.RugRisk.IsHighRisk && in.RugRisk.Recovery.Possible {
		return "Bearish", "Severe downside pressure with early recovery attempts."
	}

	sentimentScore := in.Metrics.MomentumScore*0.6 + (in.Metrics.AvgBuySellRatio-1)*20
	switch {
	case sentimentScore > 5:
		return "Bullish", "Strong upward momentum with healthy buy pressure supporting continuation."
	case sentimentScore > 2:
		return "Bullish", "Positive momentum developing with buyers stepping in at key levels."
	case sentimentScore > -2:
		return "Neutral", "Balanced forces between buyers and sellers awaiting directional catalyst."
	case sentimentScore > -5:
		return "Bearish", "Downward pressure building as sellers overwhelm demand zones."
	default:
		return "Bearish", "Heavy distribution pattern with sustained selling pressure across timeframes."
	}
}

func technicalView(m entity.TechnicalMetrics) string {
	var velocityClause string
	switch {
	case m.Velocity > 3:
		velocityClause = "continuation potential as accumulation phase develops"
	case m.Velocity < -3:
		velocityClause = "breakdown risk as distribution patterns emerge"
	default:
		velocityClause = "consolidation dynamics requiring catalyst for directional clarity"
	}

	var flowClause string
	switch {
	case m.AvgBuySellRatio > 1.3:
		flowClause = "indicating institutional or whale accumulation patterns"
	case m.AvgBuySellRatio < 0.7:
		flowClause = "reflecting risk-off sentiment and potential capitulation"
	default:
		flowClause = "suggesting equilibrium between buyers and sellers"
	}

	var volatilityClause string
	switch {
	case m.VolatilityIndex > 10:
		volatilityClause = "warranting heightened risk management protocols"
	case m.VolatilityIndex > 5:
		volatilityClause = "requiring active monitoring of position sizes"
	default:
		volatilityClause = "supporting confidence in technical pattern reliability"
	}

	return fmt.Sprintf(
		"Market structure exhibits %s characteristics across multiple timeframes, with %s price action suggesting %s. Order flow analysis reveals %s, %s. The prevailing volatility regime classifies as %s, %s.",
		strings.ToLower(m.MomentumLabel),
		strings.ToLower(m.VelocityLabel),
		velocityClause,
		strings.ToLower(m.PressureLabel),
		flowClause,
		strings.ToLower(m.VolatilityLabel),
		volatilityClause,
	)
}

func overallView(in CommentaryInputs) string {
	var riskPart string
	switch {
	case in.Honeypot.IsHoneypot:
		riskPart = "🚨 CRITICAL: Contract analysis confirms honeypot characteristics - token cannot be safely traded regardless of other metrics."
	case in.RugRisk.IsHighRisk && !in.RugRisk.Recovery.Possible:
		riskPart = "🚨 CRITICAL: Token has experienced catastrophic price collapse with no recovery indicators - characteristic of rug pulls or complete project abandonment. All metrics suggest token is dead."
	case in.RugRisk.IsHighRisk && in.RugRisk.Recovery.Possible:
		riskPart = "⚠️ WARNING: Severe price dump detected. While early recovery signs exist, this exhibits classic post-rug volatility. Only suitable for high-risk traders with disciplined exit strategies."
	default:
		riskPart = fmt.Sprintf("Risk architecture places this asset in the %s category for sophisticated traders operating with disciplined frameworks.", in.Risk.Level)
	}

	var liquidityPart string
	switch in.Risk.Liquidity.Status {
	case "locked":
		liquidityPart = "Liquidity infrastructure demonstrates institutional-grade depth, enabling seamless execution across position sizes."
	case "partial":
		liquidityPart = "Liquidity depth sits at moderate levels; execution quality degrades materially on larger orders requiring staged entry strategies."
	default:
		liquidityPart = "Liquidity environment presents significant constraints; price impact on modest orders creates unfavorable risk-reward dynamics."
	}

	var agePart string
	switch {
	case in.TokenAgeDays > 0 && in.TokenAgeDays < 3:
		agePart = "As a sub-three-day launch, fundamental validation remains absent while volatility persists at extreme levels characteristic of speculative meme token price discovery."
	case in.TokenAgeDays >= 3 && in.TokenAgeDays < 7:
		agePart = fmt.Sprintf("Recent launch dynamics (%.1f-day history) necessitate observation for post-pump stabilization and sideways-climbing consolidation patterns that distinguish sustainable projects from pump-and-dump schemes.", in.TokenAgeDays)
	default:
		agePart = "Sufficient price history exists for statistical pattern recognition and technical framework application."
	}

	var volumePart string
	switch {
	case in.Metrics.VolumeLiquidityRatio > 5:
		volumePart = "Volume significantly exceeding liquidity pools raises red flags for potential manipulation or coordinated pump activity."
	case in.Metrics.VolumeLiquidityRatio > 3:
		volumePart = "Healthy volume-to-liquidity dynamics validate genuine market interest and organic price discovery mechanisms."
	case in.Metrics.VolumeLiquidityRatio > 1:
		volumePart = "Moderate trading activity relative to available liquidity suggests organic participant engagement without manipulation concerns."
	default:
		volumePart = "Subdued volume relative to liquidity depth may indicate waning interest or project dormancy requiring catalyst identification."
	}

	return riskPart + " " + liquidityPart + " " + agePart + " " + volumePart
}
