package entity

// RugSeverity orders the rug-risk tiers. Within one evaluation pass severity
// only ever escalates.
type RugSeverity string

const (
	RugSeverityLow      RugSeverity = "low"
	RugSeverityMedium   RugSeverity = "medium"
	RugSeverityHigh     RugSeverity = "high"
	RugSeverityCritical RugSeverity = "critical"
)

// RecoveryOutlook lists the recovery indicators found after a catastrophic
// drop and whether recovery is considered possible at all.
type RecoveryOutlook struct {
	Possible   bool     `json:"possible"`
	Indicators []string `json:"indicators"`
}

// RugRiskResult is the outcome of the catastrophic-drop heuristic.
type RugRiskResult struct {
	IsHighRisk bool            `json:"isHighRisk"`
	Severity   RugSeverity     `json:"severity"`
	Flags      []string        `json:"flags"`
	Recovery   RecoveryOutlook `json:"recovery"`
}

// SurvivalAnalysis scores how likely a token is to outlive its launch window.
type SurvivalAnalysis struct {
	TokenAgeDays        float64  `json:"tokenAgeDays"`
	AgeInHours          float64  `json:"ageInHours"`
	Passed24h           bool     `json:"passed24h"`
	SurvivalScore       int      `json:"survivalScore"`
	SurvivalProbability string   `json:"survivalProbability"`
	Risks               []string `json:"risks"`
	PositiveIndicators  []string `json:"positiveIndicators"`
	Recommendation      string   `json:"recommendation"`
}

// LiquidityInfo reports the liquidity tier used by the risk aggregator.
type LiquidityInfo struct {
	Status string  `json:"status"` // locked, partial, unlocked, unknown
	Usd    float64 `json:"usd"`
}

// RiskAssessment is the final 0-100 risk score with its supporting flags.
type RiskAssessment struct {
	Score        int           `json:"score"`
	Level        string        `json:"level"` // low, moderate, elevated, high
	Flags        []string      `json:"flags"`
	Liquidity    LiquidityInfo `json:"liquidity"`
	TokenAgeDays float64       `json:"tokenAgeDays"`
}

// TechnicalMetrics bundles every derived indicator the engine computes from a
// MarketSnapshot. Numeric value and classification label always travel
// together so the commentary layer never re-derives labels.
type TechnicalMetrics struct {
	MomentumScore float64
	MomentumLabel string

	VolatilityIndex   float64
	VolatilityLabel   string
	RecentVolumeRatio float64

	PriceRangeCompression float64
	CompressionLabel      string

	BuySellRatio24h float64
	BuySellRatio1h  float64
	AvgBuySellRatio float64
	PressureLabel   string

	Velocity      float64
	VelocityLabel string

	VolumeConsistency float64
	ConsistencyLabel  string

	VolumeLiquidityRatio    float64
	LiquidityStabilityLabel string

	TxnFrequency1h    int
	TxnFrequencyLabel string

	AvgTradeSize   float64
	TradeSizeLabel string

	PriceImpact100  float64
	PriceImpact500  float64
	PriceImpact1000 float64
}

// Commentary carries the templated prose derived from all prior results.
type Commentary struct {
	TechnicalView        string `json:"technicalView"`
	OverallView          string `json:"overallView"`
	Sentiment            string `json:"sentiment"`
	SentimentDetail      string `json:"sentimentDetail"`
	Recommendation       string `json:"recommendation"`
	RecommendationDetail string `json:"recommendationDetail"`
	Scenario             string `json:"scenario"`
	ScenarioDetail       string `json:"scenarioDetail"`
}

// MomentumBlock is the technical.momentum section of the response.
type MomentumBlock struct {
	Score          float64 `json:"score"`
	Label          string  `json:"label"`
	PriceChange5m  float64 `json:"priceChange5m"`
	PriceChange1h  float64 `json:"priceChange1h"`
	PriceChange6h  float64 `json:"priceChange6h"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// VolatilityBlock is the technical.volatility section of the response.
type VolatilityBlock struct {
	Index                 float64 `json:"index"`
	Label                 string  `json:"label"`
	RecentVolumeRatio     float64 `json:"recentVolumeRatio"`
	PriceRangeCompression float64 `json:"priceRangeCompression"`
	CompressionLabel      string  `json:"compressionLabel"`
}

// PressureBlock is the technical.pressure section of the response.
type PressureBlock struct {
	BuySellRatio24h float64 `json:"buySellRatio24h"`
	BuySellRatio1h  float64 `json:"buySellRatio1h"`
	Label           string  `json:"label"`
}

// VelocityBlock is the technical.velocity section of the response.
type VelocityBlock struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// MarketHealthBlock is the technical.marketHealth section of the response.
type MarketHealthBlock struct {
	VolumeConsistency       float64 `json:"volumeConsistency"`
	ConsistencyLabel        string  `json:"consistencyLabel"`
	VolumeLiquidityRatio    float64 `json:"volumeLiquidityRatio"`
	LiquidityStabilityLabel string  `json:"liquidityStabilityLabel"`
	TxnFrequency1h          int     `json:"txnFrequency1h"`
	TxnFrequencyLabel       string  `json:"txnFrequencyLabel"`
	AvgTradeSize            float64 `json:"avgTradeSize"`
	TradeSizeLabel          string  `json:"tradeSizeLabel"`
}

// TechnicalBlock is the technical section of the response.
type TechnicalBlock struct {
	Momentum     MomentumBlock     `json:"momentum"`
	Volatility   VolatilityBlock   `json:"volatility"`
	Pressure     PressureBlock     `json:"pressure"`
	Velocity     VelocityBlock     `json:"velocity"`
	MarketHealth MarketHealthBlock `json:"marketHealth"`
}

// PriceImpactBlock estimates slippage for fixed USD buy sizes.
type PriceImpactBlock struct {
	Buy100  float64 `json:"buy100"`
	Buy500  float64 `json:"buy500"`
	Buy1000 float64 `json:"buy1000"`
}

// ProfileBlock is the optional profile section of the response.
type ProfileBlock struct {
	Description     *string       `json:"description"`
	Icon            *string       `json:"icon"`
	Header          *string       `json:"header"`
	Links           []ProfileLink `json:"links"`
	HasEnhancedInfo bool          `json:"hasEnhancedInfo"`
}

// BoostBlock is the optional boost section of the response.
type BoostBlock struct {
	Active float64 `json:"active"`
	Total  float64 `json:"total"`
}

// TokenAnalysis is the composed response of the analyze-token endpoint.
type TokenAnalysis struct {
	Address          string           `json:"address"`
	Token            TokenIdentity    `json:"token"`
	Chain            string           `json:"chain"`
	Profile          *ProfileBlock    `json:"profile"`
	Socials          SocialPresence   `json:"socials"`
	Boost            *BoostBlock      `json:"boost"`
	Honeypot         HoneypotFinding  `json:"honeypot"`
	Risk             RiskAssessment   `json:"risk"`
	Market           MarketSnapshot   `json:"market"`
	PriceImpact      PriceImpactBlock `json:"priceImpact"`
	Technical        TechnicalBlock   `json:"technical"`
	Commentary       Commentary       `json:"commentary"`
	RugRisk          RugRiskResult    `json:"rugRisk"`
	SurvivalAnalysis SurvivalAnalysis `json:"survivalAnalysis"`
}
