package entity

// MarketSnapshot is the normalized per-request view of the best trading pair
// for a token. Every field defaults to zero when the upstream data is missing,
// so the scoring engine never has to deal with optional values. Immutable once
// built.
type MarketSnapshot struct {
	PairAddress string `json:"pairAddress"`
	DexName     string `json:"dexName"`

	PriceUsd float64 `json:"priceUsd"`

	PriceChange24hPct float64 `json:"priceChange24hPct"`
	PriceChange6hPct  float64 `json:"priceChange6hPct"`
	PriceChange1hPct  float64 `json:"priceChange1hPct"`
	PriceChange5mPct  float64 `json:"priceChange5mPct"`

	Volume24hUsd float64 `json:"volume24hUsd"`
	Volume6hUsd  float64 `json:"volume6hUsd"`
	Volume1hUsd  float64 `json:"volume1hUsd"`
	Volume5mUsd  float64 `json:"volume5mUsd"`

	LiquidityUsd float64 `json:"liquidityUsd"`
	Fdv          float64 `json:"fdv"`

	Txns24h TxnSummary `json:"txns24h"`
	Txns6h  TxnSummary `json:"txns6h"`
	Txns1h  TxnSummary `json:"txns1h"`
	Txns5m  TxnSummary `json:"txns5m"`

	// Milliseconds since epoch, 0 when unknown. Not part of the market block
	// of the response; token age is reported under risk instead.
	PairCreatedAt int64 `json:"-"`
}

// TokenIdentity holds the on-chain ERC20 metadata resolved via eth_call.
type TokenIdentity struct {
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	Decimals         int    `json:"decimals"`
	OwnerAddress     string `json:"-"`
	IsOwnerRenounced bool   `json:"-"`
}

// SocialPlatform is one social-media presence entry.
type SocialPlatform struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

// SocialPresence summarizes the off-chain footprint of a token, used both in
// the response and by the survival heuristic.
type SocialPresence struct {
	Websites   []string         `json:"websites"`
	Platforms  []SocialPlatform `json:"platforms"`
	HasWebsite bool             `json:"hasWebsite"`
	HasTwitter bool             `json:"hasTwitter"`
}
