package engine

import (
	"math"

	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/utils"
)

// SurvivalInputs gathers everything the survival heuristic reads besides the
// snapshot itself.
type SurvivalInputs struct {
	TokenAgeDays    float64
	Metrics         entity.TechnicalMetrics
	Socials         entity.SocialPresence
	HasEnhancedInfo bool
}

// EvaluateSurvival scores how likely the token is to outlive its launch
// window. The score starts at 50, accumulates signed adjustments from the age
// bucket and independent signals, and is clamped to [0,100] at the end.
func EvaluateSurvival(snap entity.MarketSnapshot, in SurvivalInputs) entity.SurvivalAnalysis {
	ageDays := in.TokenAgeDays
	m := in.Metrics

	analysis := entity.SurvivalAnalysis{
		TokenAgeDays:       ageDays,
		AgeInHours:         ageDays * 24,
		Passed24h:          ageDays > 1,
		Risks:              []string{},
		PositiveIndicators: []string{},
	}

	score := 50

	switch {
	case ageDays < 1:
		score += 10
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Within 24h launch window - prime momentum phase")
		analysis.Risks = append(analysis.Risks,
			"Still in high-risk initial period - watch for dump signals")
	case ageDays < 2:
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Passed 24h mark - survived initial pump phase")
		if m.MomentumScore > 0 && m.BuySellRatio24h > 1.0 {
			score += 25
			analysis.PositiveIndicators = append(analysis.PositiveIndicators,
				"Still maintaining momentum post-24h - rare survivor")
		} else {
			score -= 15
			analysis.Risks = append(analysis.Risks,
				"Lost momentum after 24h - typical death pattern")
		}
	case ageDays < 7:
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Survived multiple days - strong validation signal")
		score += 20
	default:
		score += 30
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Established token beyond 1 week - proven longevity")
	}

	// Volume trend against the 24h hourly average.
	volumeTrend := 1.0
	if snap.Volume24hUsd > 0 {
		volumeTrend = snap.Volume1hUsd / (snap.Volume24hUsd / 24)
	}
	if ageDays > 1 {
		switch {
		case volumeTrend > 1.5 && snap.Volume24hUsd > 5000:
			score += 20
			analysis.PositiveIndicators = append(analysis.PositiveIndicators,
				"Volume surging post-24h - strong survival signal")
		case volumeTrend < 0.3 || snap.Volume24hUsd < 1000:
			score -= 25
			analysis.Risks = append(analysis.Risks,
				"Volume dying post-24h - token losing interest")
		case volumeTrend < 0.7:
			score -= 10
			analysis.Risks = append(analysis.Risks,
				"Volume declining - concerning trend")
		}
	} else if snap.Volume24hUsd > 10000 {
		score += 15
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Strong initial volume - high interest")
	}

	if ageDays > 1 {
		switch {
		case m.MomentumScore > 5:
			score += 20
			analysis.PositiveIndicators = append(analysis.PositiveIndicators,
				"Strong bullish momentum - capable of new ATHs")
		case m.MomentumScore < -5:
			score -= 20
			analysis.Risks = append(analysis.Risks,
				"Bearish momentum - unlikely to recover")
		case m.MomentumScore < 0:
			score -= 10
			analysis.Risks = append(analysis.Risks,
				"Negative momentum - needs reversal")
		}
	}

	if m.BuySellRatio24h > 1.3 {
		score += 15
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Strong buy pressure - demand building")
	} else if m.BuySellRatio24h < 0.7 {
		score -= 15
		analysis.Risks = append(analysis.Risks,
			"Heavy selling - weak demand")
	}

	if snap.LiquidityUsd > 50000 {
		score += 10
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Strong liquidity - less rug risk")
	} else if snap.LiquidityUsd < 10000 {
		score -= 15
		analysis.Risks = append(analysis.Risks,
			"Low liquidity - high rug risk")
	}

	if ageDays > 1 {
		isStabilizing := math.Abs(snap.PriceChange1hPct) < 20 && m.MomentumScore > -5
		isClimbing := snap.PriceChange24hPct > 0 && snap.PriceChange6hPct > 0
		if isStabilizing && isClimbing {
			score += 15
			analysis.PositiveIndicators = append(analysis.PositiveIndicators,
				"Stabilizing with upward bias - ideal post-launch pattern")
		} else if math.Abs(snap.PriceChange24hPct) > 80 {
			score -= 15
			analysis.Risks = append(analysis.Risks,
				"Extreme volatility - unstable price action")
		}
	}

	switch {
	case in.Socials.HasWebsite && len(in.Socials.Platforms) > 0 && in.HasEnhancedInfo:
		score += 10
		analysis.PositiveIndicators = append(analysis.PositiveIndicators,
			"Full social presence - legitimate project")
	case !in.Socials.HasWebsite && len(in.Socials.Platforms) == 0:
		score -= 10
		analysis.Risks = append(analysis.Risks,
			"No social presence - potential scam")
	}

	analysis.SurvivalScore = utils.ClampInt(score, 0, 100)
	analysis.SurvivalProbability = SurvivalProbability(analysis.SurvivalScore)
	analysis.Recommendation = survivalRecommendation(analysis, m, snap)

	return analysis
}

// SurvivalProbability maps a clamped survival score to its probability band.
func SurvivalProbability(score int) string {
	switch {
	case score >= 80:
		return "Very High"
	case score >= 60:
		return "High"
	case score >= 40:
		return "Moderate"
	case score >= 20:
		return "Low"
	default:
		return "Very Low"
	}
}

// survivalRecommendation is the six-branch decision table keyed on the 24h
// survival flag, age, and the final score. Branch order is load-bearing.
func survivalRecommendation(a entity.SurvivalAnalysis, m entity.TechnicalMetrics, snap entity.MarketSnapshot) string {
	if !a.Passed24h {
		if m.MomentumScore > 5 && m.BuySellRatio24h > 1.2 && snap.Volume24hUsd > 10000 {
			return "ACTIVE OPPORTUNITY - Token in prime 0-24h window with strong momentum. High risk but potential for gains. Use tight stop losses."
		}
		if m.MomentumScore < -10 || m.BuySellRatio24h < 0.7 {
			return "AVOID - Token showing dump signals in critical first 24h. Likely pump-and-dump."
		}
		return "MONITOR - Token in early phase. Wait for clearer momentum signals or pass 24h mark to assess survival."
	}
	if a.TokenAgeDays < 2 {
		if a.SurvivalScore >= 60 {
			return "SURVIVOR - Token passed 24h with strong metrics. Reduced risk but monitor for momentum maintenance."
		}
		return "DYING - Token past 24h but losing momentum/volume. Typical death pattern for failed launches. Avoid or exit."
	}
	switch {
	case a.SurvivalScore >= 70:
		return "ESTABLISHED - Token survived multiple days with solid fundamentals. Can potentially reach new ATHs with volume."
	case a.SurvivalScore >= 40:
		return "STRUGGLING - Token survived but showing weakness. Needs volume/momentum catalyst for new ATHs."
	default:
		return "DEAD/DYING - Token past initial period but metrics suggest project abandonment. Avoid."
	}
}
