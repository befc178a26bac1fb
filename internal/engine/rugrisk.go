package engine

import (
	"fmt"

	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/utils"
)

// Catastrophic-drop trigger thresholds (percent change).
const (
	sharpDrop24hPct = -80.0
	sharpDrop6hPct  = -70.0
	sharpDrop1hPct  = -50.0
	lowMcapUsd      = 20000.0
)

// EvaluateRugRisk checks the snapshot for catastrophic-drop patterns. When no
// trigger fires the all-clear result is returned. Severity never downgrades
// within the pass: the low-mcap branch sets critical, the no-recovery rule can
// escalate high to critical but nothing moves it back down.
func EvaluateRugRisk(snap entity.MarketSnapshot, m entity.TechnicalMetrics) entity.RugRiskResult {
	result := entity.RugRiskResult{
		IsHighRisk: false,
		Severity:   entity.RugSeverityLow,
		Flags:      []string{},
		Recovery:   entity.RecoveryOutlook{Possible: true, Indicators: []string{}},
	}

	hasSharpDrop24h := snap.PriceChange24hPct < sharpDrop24hPct
	hasSharpDrop6h := snap.PriceChange6hPct < sharpDrop6hPct
	if !hasSharpDrop24h && !hasSharpDrop6h {
		return result
	}

	result.IsHighRisk = true

	if hasSharpDrop24h {
		result.Flags = append(result.Flags,
			fmt.Sprintf("Catastrophic 24h drop: %.1f%%", snap.PriceChange24hPct))
	}
	if hasSharpDrop6h {
		result.Flags = append(result.Flags,
			fmt.Sprintf("Severe 6h drop: %.1f%%", snap.PriceChange6hPct))
	}
	if snap.PriceChange1hPct < sharpDrop1hPct {
		result.Flags = append(result.Flags,
			fmt.Sprintf("Sharp 1h drop: %.1f%%", snap.PriceChange1hPct))
	}

	if snap.Fdv > 0 && snap.Fdv < lowMcapUsd {
		result.Flags = append(result.Flags,
			fmt.Sprintf("Extremely low market cap: %s", utils.CompactUSD(snap.Fdv)))
		result.Severity = entity.RugSeverityCritical
	} else {
		result.Severity = entity.RugSeverityHigh
	}

	if m.BuySellRatio24h < 0.7 || m.BuySellRatio1h < 0.6 {
		result.Flags = append(result.Flags,
			fmt.Sprintf("Heavy sell pressure (ratio: %.2f)", m.BuySellRatio24h))
	}

	// Recovery indicators are additive; any combination may apply.
	if snap.PriceChange5mPct > 0 && snap.PriceChange1hPct < snap.PriceChange6hPct {
		result.Recovery.Indicators = append(result.Recovery.Indicators,
			"Recent price stabilization detected")
	}
	if m.BuySellRatio1h > m.BuySellRatio24h && m.BuySellRatio1h > 0.9 {
		result.Recovery.Indicators = append(result.Recovery.Indicators,
			"Buy pressure returning in recent hour")
	}
	avgHourlyVolume := snap.Volume24hUsd / 24
	if snap.Volume1hUsd > avgHourlyVolume*1.5 {
		result.Recovery.Indicators = append(result.Recovery.Indicators,
			"Volume increasing - potential accumulation")
	}

	allNegative := snap.PriceChange5mPct < 0 &&
		snap.PriceChange1hPct < 0 &&
		snap.PriceChange6hPct < 0 &&
		snap.PriceChange24hPct < 0
	volumeDeclining := snap.Volume1hUsd < avgHourlyVolume*0.5

	switch {
	case allNegative && volumeDeclining && len(result.Recovery.Indicators) == 0:
		result.Recovery.Possible = false
		result.Severity = entity.RugSeverityCritical
		result.Flags = append(result.Flags, "No recovery signs - token may be dead")
	case len(result.Recovery.Indicators) > 0:
		result.Recovery.Possible = true
	default:
		// Ambiguous: no indicators fired but the token is not clearly dead
		// either. Pessimistic by default.
		result.Recovery.Possible = false
	}

	return result
}
