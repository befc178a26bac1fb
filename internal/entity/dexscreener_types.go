package entity

// DEXTokenPairs is the envelope returned by the DEX Screener token endpoint.
type DEXTokenPairs struct {
	SchemaVersion string     `json:"schemaVersion"`
	Pairs         []PairData `json:"pairs"`
}

// PairData contains detailed information about a trading pair.
type PairData struct {
	ChainID       string          `json:"chainId"`
	DexID         string          `json:"dexId"`
	URL           string          `json:"url"`
	PairAddress   string          `json:"pairAddress"`
	BaseToken     DEXToken        `json:"baseToken"`
	QuoteToken    DEXToken        `json:"quoteToken"`
	PriceNative   string          `json:"priceNative"`
	PriceUsd      string          `json:"priceUsd"`
	Txns          PairTxns        `json:"txns"`
	Volume        PairVolume      `json:"volume"`
	PriceChange   PairPriceChange `json:"priceChange"`
	Liquidity     *DEXLiquidity   `json:"liquidity"` // Pointer to handle potential nulls
	Fdv           float64         `json:"fdv"`
	MarketCap     float64         `json:"marketCap"`
	PairCreatedAt int64           `json:"pairCreatedAt"`
	Info          *PairInfo       `json:"info"`
}

// DEXToken represents a token in a trading pair.
type DEXToken struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// DEXLiquidity represents the liquidity information for a pair.
type DEXLiquidity struct {
	Usd   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// PairTxns represents transaction counts for a pair.
type PairTxns struct {
	M5  TxnSummary `json:"m5"`
	H1  TxnSummary `json:"h1"`
	H6  TxnSummary `json:"h6"`
	H24 TxnSummary `json:"h24"`
}

// TxnSummary contains buy and sell counts.
type TxnSummary struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// PairVolume represents trading volume over different periods.
type PairVolume struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PairPriceChange represents price change percentage over different periods.
type PairPriceChange struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PairInfo carries the optional websites/socials block attached to a pair.
type PairInfo struct {
	ImageURL string       `json:"imageUrl"`
	Websites []PairSite   `json:"websites"`
	Socials  []PairSocial `json:"socials"`
}

// PairSite is a website entry inside PairInfo.
type PairSite struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PairSocial is a social-media entry inside PairInfo. The feed is not
// consistent about field names, so both type/platform and url/handle are kept.
type PairSocial struct {
	Type     string `json:"type"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Handle   string `json:"handle"`
}

// TokenProfile is an entry from the DEX Screener token-profiles feed.
type TokenProfile struct {
	ChainID      string        `json:"chainId"`
	TokenAddress string        `json:"tokenAddress"`
	Icon         string        `json:"icon"`
	Header       string        `json:"header"`
	Description  string        `json:"description"`
	Links        []ProfileLink `json:"links"`
}

// ProfileLink is a typed link attached to a token profile.
type ProfileLink struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// HasEnhancedInfo reports whether the profile carries anything beyond the address.
func (p *TokenProfile) HasEnhancedInfo() bool {
	return p != nil && (p.Description != "" || p.Icon != "")
}

// TokenBoost is an entry from the DEX Screener token-boosts feed.
type TokenBoost struct {
	ChainID      string  `json:"chainId"`
	TokenAddress string  `json:"tokenAddress"`
	Amount       float64 `json:"amount"`
	TotalAmount  float64 `json:"totalAmount"`
}
