package engine

import (
	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/utils"
)

// RiskInputs gathers the non-snapshot signals the aggregator reads.
type RiskInputs struct {
	Honeypot     entity.HoneypotFinding
	RugRisk      entity.RugRiskResult
	IsRenounced  bool
	TokenAgeDays float64
}

// AggregateRisk produces the final 0-100 risk score. The score starts at 100
// and only decreases; deductions apply in a fixed order so the flag list is
// deterministic. The level is a pure function of the clamped score.
func AggregateRisk(snap entity.MarketSnapshot, in RiskInputs) entity.RiskAssessment {
	score := 100
	flags := []string{}

	if in.Honeypot.IsHoneypot {
		score -= 50
		reason := "Honeypot detected"
		if in.Honeypot.Reason != nil && *in.Honeypot.Reason != "" {
			reason = *in.Honeypot.Reason
		}
		flags = append(flags, reason)
	}

	liquidityStatus := "unknown"
	switch {
	case snap.LiquidityUsd > 50000:
		liquidityStatus = "locked"
	case snap.LiquidityUsd > 10000:
		liquidityStatus = "partial"
		score -= 15
		flags = append(flags, "Moderate liquidity detected")
	default:
		liquidityStatus = "unlocked"
		score -= 30
		flags = append(flags, "Low liquidity - high risk")
	}

	if !in.IsRenounced {
		score -= 15
		flags = append(flags, "Ownership not renounced")
	}

	if in.TokenAgeDays > 0 && in.TokenAgeDays < 3 {
		score -= 10
		flags = append(flags, "Very young token (< 3 days old)")
	} else if in.TokenAgeDays > 0 && in.TokenAgeDays < 7 {
		score -= 5
		flags = append(flags, "Young token (< 1 week old)")
	}

	if snap.Volume24hUsd < 1000 {
		score -= 5
		flags = append(flags, "Low 24h trading volume")
	}

	if in.RugRisk.IsHighRisk {
		switch in.RugRisk.Severity {
		case entity.RugSeverityCritical:
			score -= 60
			flags = append(flags, "CRITICAL: Rug/dump pattern detected - token may be dead")
		case entity.RugSeverityHigh:
			score -= 40
			flags = append(flags, "HIGH RISK: Sharp drop detected - potential rug")
		}
		if !in.RugRisk.Recovery.Possible {
			score -= 20
			flags = append(flags, "No recovery signs - avoid")
		}
	}

	clamped := utils.ClampInt(score, 0, 100)
	return entity.RiskAssessment{
		Score:        clamped,
		Level:        RiskLevel(clamped),
		Flags:        flags,
		Liquidity:    entity.LiquidityInfo{Status: liquidityStatus, Usd: snap.LiquidityUsd},
		TokenAgeDays: in.TokenAgeDays,
	}
}

// RiskLevel maps a clamped risk score to its tier.
func RiskLevel(score int) string {
	switch {
	case score >= 80:
		return "low"
	case score >= 60:
		return "moderate"
	case score >= 40:
		return "elevated"
	default:
		return "high"
	}
}
