package entity

// GeckoTerminalOHLCVResponse is the envelope returned by the GeckoTerminal
// pool OHLCV endpoint. Each list entry is [timestamp, o, h, l, c, v].
type GeckoTerminalOHLCVResponse struct {
	Data struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes struct {
			OHLCVList [][]float64 `json:"ohlcv_list"`
		} `json:"attributes"`
	} `json:"data"`
}

// Candle is a single OHLCV bar. Timestamp is unix seconds.
type Candle struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}
