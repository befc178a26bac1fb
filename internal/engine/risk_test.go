package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token_analyzer/internal/entity"
)

func TestAggregateRisk_CleanToken(t *testing.T) {
	snap := activeSnapshot()

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:     entity.DefaultHoneypotFinding(),
		IsRenounced:  true,
		TokenAgeDays: 30,
	})

	assert.Equal(t, 100, risk.Score)
	assert.Equal(t, "low", risk.Level)
	assert.Empty(t, risk.Flags)
	assert.Equal(t, "locked", risk.Liquidity.Status)
	assert.Equal(t, snap.LiquidityUsd, risk.Liquidity.Usd)
}

func TestAggregateRisk_HoneypotDominates(t *testing.T) {
	snap := activeSnapshot()
	reason := "Cannot sell all tokens"

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:     entity.HoneypotFinding{IsHoneypot: true, Reason: &reason},
		IsRenounced:  true,
		TokenAgeDays: 30,
	})

	assert.Equal(t, 50, risk.Score)
	assert.Equal(t, "elevated", risk.Level)
	assert.Contains(t, risk.Flags, "Cannot sell all tokens")
}

func TestAggregateRisk_YoungUnrenouncedLowLiquidity(t *testing.T) {
	snap := entity.MarketSnapshot{
		LiquidityUsd: 5000,
		Volume24hUsd: 500,
	}

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:     entity.DefaultHoneypotFinding(),
		IsRenounced:  false,
		TokenAgeDays: 1.5,
	})

	// 100 - 30 (liquidity) - 15 (ownership) - 10 (age) - 5 (volume) = 40
	assert.Equal(t, 40, risk.Score)
	assert.Equal(t, "elevated", risk.Level)
	assert.Equal(t, "unlocked", risk.Liquidity.Status)
	assert.Contains(t, risk.Flags, "Very young token (< 3 days old)")
}

func TestAggregateRisk_UnknownAgeSkipsAgePenalty(t *testing.T) {
	snap := activeSnapshot()

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:    entity.DefaultHoneypotFinding(),
		IsRenounced: true,
	})

	assert.Equal(t, 100, risk.Score)
	assert.NotContains(t, risk.Flags, "Very young token (< 3 days old)")
}

func TestAggregateRisk_RuggedDeadTokenClampsToZero(t *testing.T) {
	snap := entity.MarketSnapshot{LiquidityUsd: 100, Volume24hUsd: 50}

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:    entity.HoneypotFinding{IsHoneypot: true},
		IsRenounced: false,
		RugRisk: entity.RugRiskResult{
			IsHighRisk: true,
			Severity:   entity.RugSeverityCritical,
			Recovery:   entity.RecoveryOutlook{Possible: false},
		},
		TokenAgeDays: 2,
	})

	require.Equal(t, 0, risk.Score)
	assert.Equal(t, "high", risk.Level)
	assert.Contains(t, risk.Flags, "CRITICAL: Rug/dump pattern detected - token may be dead")
	assert.Contains(t, risk.Flags, "No recovery signs - avoid")
}

func TestAggregateRisk_HighSeverityRug(t *testing.T) {
	snap := activeSnapshot()

	risk := AggregateRisk(snap, RiskInputs{
		Honeypot:    entity.DefaultHoneypotFinding(),
		IsRenounced: true,
		RugRisk: entity.RugRiskResult{
			IsHighRisk: true,
			Severity:   entity.RugSeverityHigh,
			Recovery:   entity.RecoveryOutlook{Possible: true},
		},
		TokenAgeDays: 30,
	})

	assert.Equal(t, 60, risk.Score)
	assert.Contains(t, risk.Flags, "HIGH RISK: Sharp drop detected - potential rug")
	assert.NotContains(t, risk.Flags, "No recovery signs - avoid")
}

func TestRiskLevel_Tiers(t *testing.T) {
	assert.Equal(t, "low", RiskLevel(80))
	assert.Equal(t, "moderate", RiskLevel(79))
	assert.Equal(t, "elevated", RiskLevel(59))
	assert.Equal(t, "high", RiskLevel(39))
}
