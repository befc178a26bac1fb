package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token_analyzer/internal/entity"
)

func TestConvertSecurityResult_Clean(t *testing.T) {
	finding := convertSecurityResult(entity.GoPlusTokenResult{
		IsHoneypot:    "0",
		CannotSellAll: "0",
		BuyTax:        "0",
		SellTax:       "0",
	})

	assert.False(t, finding.IsHoneypot)
	assert.True(t, finding.CanSell)
	assert.Nil(t, finding.Reason)
	assert.True(t, finding.Verified)
}

func TestConvertSecurityResult_HoneypotFlag(t *testing.T) {
	finding := convertSecurityResult(entity.GoPlusTokenResult{IsHoneypot: "1"})

	assert.True(t, finding.IsHoneypot)
	require.NotNil(t, finding.Reason)
	assert.Equal(t, "Token flagged as honeypot", *finding.Reason)
}

func TestConvertSecurityResult_CannotSell(t *testing.T) {
	finding := convertSecurityResult(entity.GoPlusTokenResult{CannotSellAll: "1"})

	assert.True(t, finding.IsHoneypot)
	assert.False(t, finding.CanSell)
	require.NotNil(t, finding.Reason)
	assert.Equal(t, "Token cannot be sold", *finding.Reason)
}

func TestConvertSecurityResult_HighSellTax(t *testing.T) {
	finding := convertSecurityResult(entity.GoPlusTokenResult{SellTax: "60"})

	assert.True(t, finding.IsHoneypot)
	assert.True(t, finding.CanSell)
	require.NotNil(t, finding.Reason)
	assert.Equal(t, "Extremely high sell tax: 60%", *finding.Reason)
}

func TestConvertSecurityResult_TotalSellTaxCannotSell(t *testing.T) {
	finding := convertSecurityResult(entity.GoPlusTokenResult{SellTax: "100"})

	assert.True(t, finding.IsHoneypot)
	assert.False(t, finding.CanSell)
	require.NotNil(t, finding.Reason)
	assert.Equal(t, "Token cannot be sold", *finding.Reason)
}

func TestConvertOHLCVList(t *testing.T) {
	raw := [][]float64{
		{1700000300, 1.1, 1.2, 1.0, 1.15, 500},
		{1700000000, 1.0, 1.1, 0.9, 1.1, 1000},
		{1700000600, 1.15, 1.2, 1.1, 0, 200}, // zero close dropped
		{1700000900, 1.1},                    // malformed row dropped
	}

	candles := convertOHLCVList(raw)

	require.Len(t, candles, 2)
	assert.Equal(t, int64(1700000000), candles[0].Timestamp)
	assert.Equal(t, int64(1700000300), candles[1].Timestamp)
	assert.InDelta(t, 1.1, candles[0].Close, 1e-9)
}

func TestDefaultHoneypotFinding_Unverified(t *testing.T) {
	finding := entity.DefaultHoneypotFinding()

	assert.False(t, finding.IsHoneypot)
	assert.True(t, finding.CanSell)
	assert.False(t, finding.Verified)
}
