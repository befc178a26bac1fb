package entity

// CandleInfo describes the span of OHLCV data backing a chart analysis.
type CandleInfo struct {
	Count       int    `json:"count"`
	PeriodHours int    `json:"periodHours"`
	FirstCandle string `json:"firstCandle"`
	LastCandle  string `json:"lastCandle"`
}

// RSIBlock is the chart-analysis RSI section.
type RSIBlock struct {
	Value     float64 `json:"value"`
	Period    int     `json:"period"`
	Timeframe string  `json:"timeframe"`
	Signal    string  `json:"signal"`
}

// MACDBlock is the chart-analysis MACD section.
type MACDBlock struct {
	MACD           *float64 `json:"macd"`
	Signal         *float64 `json:"signal"`
	Histogram      *float64 `json:"histogram"`
	Periods        string   `json:"periods"`
	Timeframe      string   `json:"timeframe"`
	Interpretation string   `json:"interpretation"`
}

// BollingerBlock is the chart-analysis Bollinger Bands section.
type BollingerBlock struct {
	Upper     *float64 `json:"upper"`
	Middle    *float64 `json:"middle"`
	Lower     *float64 `json:"lower"`
	PercentB  float64  `json:"percentB"`
	Period    int      `json:"period"`
	Timeframe string   `json:"timeframe"`
}

// StochRSIBlock is the chart-analysis Stochastic RSI section.
type StochRSIBlock struct {
	K         float64 `json:"k"`
	D         float64 `json:"d"`
	Signal    string  `json:"signal"`
	Timeframe string  `json:"timeframe"`
}

// ADXBlock is the chart-analysis ADX section.
type ADXBlock struct {
	Value   float64 `json:"value"`
	PlusDI  float64 `json:"plusDI"`
	MinusDI float64 `json:"minusDI"`
	Signal  string  `json:"signal"`
}

// TechnicalIndicatorsBlock groups the classic TA indicators; each entry is nil
// when the candle series was too short for it.
type TechnicalIndicatorsBlock struct {
	RSI            *RSIBlock       `json:"rsi"`
	MACD           *MACDBlock      `json:"macd"`
	BollingerBands *BollingerBlock `json:"bollingerBands"`
	StochRSI       *StochRSIBlock  `json:"stochRSI"`
	ADX            *ADXBlock       `json:"adx"`
}

// MomentumWindows holds the four timeframe price changes.
type MomentumWindows struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PriceActionBlock is the chart-analysis price action section.
type PriceActionBlock struct {
	Trend         string          `json:"trend"`
	TrendStrength string          `json:"trendStrength"`
	Momentum      MomentumWindows `json:"momentum"`
	Support       *float64        `json:"support"`
	Resistance    *float64        `json:"resistance"`
}

// VolumeAnalysisBlock is the chart-analysis volume section.
type VolumeAnalysisBlock struct {
	Volume24h float64 `json:"volume24h"`
	Liquidity float64 `json:"liquidity"`
	Signal    string  `json:"signal"`
}

// OrderFlowBlock reports 24h buy/sell counts and the buy share in percent.
type OrderFlowBlock struct {
	Buys        int     `json:"buys"`
	Sells       int     `json:"sells"`
	BuyPressure float64 `json:"buyPressure"`
}

// ChartRecommendationBlock is the chart-analysis recommendation section.
type ChartRecommendationBlock struct {
	Action     string   `json:"action"`
	Confidence string   `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// ChartSecurityBlock is the chart-analysis security section.
type ChartSecurityBlock struct {
	IsHoneypot bool   `json:"isHoneypot"`
	BuyTax     string `json:"buyTax"`
	SellTax    string `json:"sellTax"`
}

// ChartAnalysis is the composed response of the chart-analysis endpoint. The
// shape matches what the chat tool loop consumes.
type ChartAnalysis struct {
	TokenName      string  `json:"tokenName"`
	TokenSymbol    string  `json:"tokenSymbol"`
	TokenAddress   string  `json:"tokenAddress"`
	Logo           *string `json:"logo"`
	PriceUsd       float64 `json:"priceUsd"`
	PriceChange24h float64 `json:"priceChange24h"`
	MarketCap      float64 `json:"marketCap"`

	DataSource       string     `json:"dataSource"`
	DataQuality      string     `json:"dataQuality"`
	Timeframe        string     `json:"timeframe"`
	CandleInfo       CandleInfo `json:"candleInfo"`
	PriceScaleFactor float64    `json:"priceScaleFactor"`

	TechnicalIndicators TechnicalIndicatorsBlock `json:"technicalIndicators"`
	PriceAction         PriceActionBlock         `json:"priceAction"`
	VolumeAnalysis      VolumeAnalysisBlock      `json:"volumeAnalysis"`
	OrderFlow           OrderFlowBlock           `json:"orderFlow"`
	Recommendation      ChartRecommendationBlock `json:"recommendation"`
	Security            ChartSecurityBlock       `json:"security"`
}
