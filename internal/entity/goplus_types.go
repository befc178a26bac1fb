package entity

// GoPlusResponse is the envelope returned by the GoPlus token_security endpoint.
// The result map is keyed by the lowercase contract address.
type GoPlusResponse struct {
	Code    int                          `json:"code"`
	Message string                       `json:"message"`
	Result  map[string]GoPlusTokenResult `json:"result"`
}

// GoPlusTokenResult is the per-token security payload. GoPlus encodes nearly
// everything as strings ("1"/"0" for booleans, decimal fractions for taxes).
type GoPlusTokenResult struct {
	IsHoneypot     string `json:"is_honeypot"`
	CannotSellAll  string `json:"cannot_sell_all"`
	BuyTax         string `json:"buy_tax"`
	SellTax        string `json:"sell_tax"`
	IsOpenSource   string `json:"is_open_source"`
	IsProxy        string `json:"is_proxy"`
	IsMintable     string `json:"is_mintable"`
	OwnerAddress   string `json:"owner_address"`
	CreatorAddress string `json:"creator_address"`
	HolderCount    string `json:"holder_count"`
}

// HoneypotFinding is the engine-facing view of the security check. Verified
// distinguishes "provider said the token is safe" from "provider was
// unreachable and defaults were substituted".
type HoneypotFinding struct {
	IsHoneypot bool    `json:"isHoneypot"`
	CanSell    bool    `json:"canSell"`
	Reason     *string `json:"reason"`
	BuyTaxPct  string  `json:"buyTax,omitempty"`
	SellTaxPct string  `json:"sellTax,omitempty"`
	Verified   bool    `json:"verified"`
}

// DefaultHoneypotFinding is substituted when the security provider is
// unavailable or does not know the token.
func DefaultHoneypotFinding() HoneypotFinding {
	return HoneypotFinding{IsHoneypot: false, CanSell: true, Reason: nil, Verified: false}
}
