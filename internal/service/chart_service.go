package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"token_analyzer/internal/client"
	"token_analyzer/internal/engine"
	"token_analyzer/internal/entity"
	"token_analyzer/internal/indicators"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minCandlesForAnalysis matches the slowest indicator (MACD 12/26/9).
const minCandlesForAnalysis = 26

// ChartService produces the OHLCV-backed technical analysis document.
type ChartService interface {
	AnalyzeChart(ctx context.Context, address string) (*entity.ChartAnalysis, error)
}

// chartServiceImpl is the implementation of ChartService.
type chartServiceImpl struct {
	dexClient    client.DEXScreenerClient
	gtClient     client.GeckoTerminalClient
	goPlus       client.GoPlusClient
	lookbackDays int
	logger       *zap.Logger
}

// NewChartService creates a new instance of chartServiceImpl.
func NewChartService(
	dexClient client.DEXScreenerClient,
	gtClient client.GeckoTerminalClient,
	goPlus client.GoPlusClient,
	lookbackDays int,
	logger *zap.Logger,
) ChartService {
	return &chartServiceImpl{
		dexClient:    dexClient,
		gtClient:     gtClient,
		goPlus:       goPlus,
		lookbackDays: lookbackDays,
		logger:       logger.Named("ChartService"),
	}
}

// candleParams picks timeframe and aggregation so the lookback yields enough
// candles for the indicators.
func candleParams(days int) (timeframe string, aggregate int, label string) {
	switch {
	case days <= 3:
		return "minute", 15, "15m"
	case days <= 14:
		return "hour", 1, "1h"
	default:
		return "hour", 4, "4h"
	}
}

// AnalyzeChart implements the ChartService interface. The pool comes from the
// deepest BSC pair; OHLCV and the security payload are fetched concurrently.
func (s *chartServiceImpl) AnalyzeChart(ctx context.Context, address string) (*entity.ChartAnalysis, error) {
	pairs, err := s.dexClient.GetTokenPairs(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trading pairs for %s: %w", address, err)
	}

	pair, ok := engine.BestPair(pairs)
	if !ok {
		return nil, fmt.Errorf("no BSC trading pairs found for %s", address)
	}

	timeframe, aggregate, tfLabel := candleParams(s.lookbackDays)

	var (
		candles  []entity.Candle
		security entity.GoPlusTokenResult
		secOK    bool
		profiles []entity.TokenProfile
	)
	eg, childCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		fetched, err := s.gtClient.GetPoolOHLCV(childCtx, pair.PairAddress, timeframe, aggregate, 500)
		if err != nil {
			return fmt.Errorf("OHLCV fetch for pool %s: %w", pair.PairAddress, err)
		}
		candles = fetched
		return nil
	})
	eg.Go(func() error {
		security, secOK = s.goPlus.RawSecurity(childCtx, address)
		return nil
	})
	eg.Go(func() error {
		fetched, err := s.dexClient.GetLatestProfiles(childCtx)
		if err != nil {
			s.logger.Debug("Profiles feed unavailable", zap.Error(err))
			return nil
		}
		profiles = fetched
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(candles) < minCandlesForAnalysis {
		return nil, fmt.Errorf("only %d candles available for %s, need at least %d",
			len(candles), address, minCandlesForAnalysis)
	}

	s.logger.Debug("Running chart analysis",
		zap.String("address", address),
		zap.String("poolAddress", pair.PairAddress),
		zap.Int("candleCount", len(candles)))

	return s.buildAnalysis(address, pair, candles, tfLabel, security, secOK, matchProfile(profiles, address)), nil
}

func (s *chartServiceImpl) buildAnalysis(
	address string,
	pair entity.PairData,
	candles []entity.Candle,
	tfLabel string,
	security entity.GoPlusTokenResult,
	secOK bool,
	profile *entity.TokenProfile,
) *entity.ChartAnalysis {
	closes := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
		highs[i] = c.High
		lows[i] = c.Low
	}

	priceUsd, _ := strconv.ParseFloat(pair.PriceUsd, 64)
	scale := priceScaleFactor(closes, priceUsd)

	marketCap := pair.MarketCap
	if marketCap == 0 {
		marketCap = pair.Fdv
	}

	analysis := &entity.ChartAnalysis{
		TokenName:      pair.BaseToken.Name,
		TokenSymbol:    pair.BaseToken.Symbol,
		TokenAddress:   address,
		Logo:           tokenLogo(profile, pair.Info),
		PriceUsd:       priceUsd,
		PriceChange24h: pair.PriceChange.H24,
		MarketCap:      marketCap,

		DataSource:       "GeckoTerminal OHLCV",
		DataQuality:      "real",
		Timeframe:        tfLabel,
		CandleInfo:       candleInfo(candles),
		PriceScaleFactor: roundTo(scale, 4),
	}

	// Indicators, each nil on its own insufficient-data condition.
	rsi, rsiOK := indicators.RSI(closes, 14)
	if rsiOK {
		analysis.TechnicalIndicators.RSI = &entity.RSIBlock{
			Value:     roundTo(rsi, 2),
			Period:    14,
			Timeframe: "1h",
			Signal:    rsiSignal(rsi),
		}
	}

	macd, macdOK := indicators.MACD(closes)
	if macdOK {
		analysis.TechnicalIndicators.MACD = &entity.MACDBlock{
			MACD:           formatPrice(macd.MACD * scale),
			Signal:         formatPrice(macd.Signal * scale),
			Histogram:      formatPrice(macd.Histogram * scale),
			Periods:        "12/26/9",
			Timeframe:      "1h",
			Interpretation: macdInterpretation(macd.Histogram),
		}
	}

	bollinger, bollingerOK := indicators.Bollinger(closes, 20, 2)
	if bollingerOK {
		analysis.TechnicalIndicators.BollingerBands = &entity.BollingerBlock{
			Upper:     formatPrice(bollinger.Upper * scale),
			Middle:    formatPrice(bollinger.Middle * scale),
			Lower:     formatPrice(bollinger.Lower * scale),
			PercentB:  roundTo(bollinger.PercentB, 0),
			Period:    20,
			Timeframe: "1h",
		}
	}

	stochRSI, stochOK := indicators.StochRSI(closes, 14, 14, 3, 3)
	if stochOK {
		analysis.TechnicalIndicators.StochRSI = &entity.StochRSIBlock{
			K:         roundTo(stochRSI.K, 2),
			D:         roundTo(stochRSI.D, 2),
			Signal:    stochRSI.Signal,
			Timeframe: "1h",
		}
	}

	adx, adxOK := indicators.ADX(highs, lows, closes, 14)
	if adxOK {
		analysis.TechnicalIndicators.ADX = &entity.ADXBlock{
			Value:   roundTo(adx.ADX, 2),
			PlusDI:  roundTo(adx.PlusDI, 2),
			MinusDI: roundTo(adx.MinusDI, 2),
			Signal:  adxSignal(adx.ADX),
		}
	}

	avgMomentum := (pair.PriceChange.M5 + pair.PriceChange.H1 + pair.PriceChange.H6 + pair.PriceChange.H24) / 4
	trend, strength := trendFor(avgMomentum)

	analysis.PriceAction = entity.PriceActionBlock{
		Trend:         trend,
		TrendStrength: strength,
		Momentum: entity.MomentumWindows{
			M5:  pair.PriceChange.M5,
			H1:  pair.PriceChange.H1,
			H6:  pair.PriceChange.H6,
			H24: pair.PriceChange.H24,
		},
	}
	if levels, ok := indicators.SupportResistance(highs, lows, closes); ok {
		analysis.PriceAction.Support = formatPrice(levels.Support * scale)
		analysis.PriceAction.Resistance = formatPrice(levels.Resistance * scale)
	}

	liquidity := 0.0
	if pair.Liquidity != nil {
		liquidity = pair.Liquidity.Usd
	}
	volumeSignal := volumeSignalFor(pair.Volume.H24, liquidity)
	analysis.VolumeAnalysis = entity.VolumeAnalysisBlock{
		Volume24h: pair.Volume.H24,
		Liquidity: liquidity,
		Signal:    volumeSignal,
	}

	analysis.OrderFlow = orderFlow(pair.Txns.H24)

	action, confidence := chartAction(analysis.TechnicalIndicators.RSI, macd, macdOK, avgMomentum, volumeSignal)
	analysis.Recommendation = entity.ChartRecommendationBlock{
		Action:     action,
		Confidence: confidence,
		Reasoning:  chartReasoning(analysis.TechnicalIndicators.RSI, macd, macdOK, avgMomentum, liquidity),
	}

	analysis.Security = securityBlock(security, secOK)
	return analysis
}

func candleInfo(candles []entity.Candle) entity.CandleInfo {
	first := candles[0]
	last := candles[len(candles)-1]
	return entity.CandleInfo{
		Count:       len(candles),
		PeriodHours: int(math.Round(float64(last.Timestamp-first.Timestamp) / 3600)),
		FirstCandle: time.Unix(first.Timestamp, 0).UTC().Format(time.RFC3339),
		LastCandle:  time.Unix(last.Timestamp, 0).UTC().Format(time.RFC3339),
	}
}

// priceScaleFactor detects ratio-quoted OHLCV (wrapped-token pools) by
// comparing the average candle close to the USD price from the pair feed. It
// only ever scales up; near-1 factors mean the candles are already USD.
func priceScaleFactor(closes []float64, actualUsdPrice float64) float64 {
	sum := 0.0
	for _, c := range closes {
		sum += c
	}
	avg := sum / float64(len(closes))
	if avg == 0 {
		return 1
	}
	if actualUsdPrice == 0 {
		actualUsdPrice = avg
	}
	raw := actualUsdPrice / avg
	if raw > 2 {
		return raw
	}
	return 1
}

func rsiSignal(rsi float64) string {
	switch {
	case rsi > 70:
		return "Overbought"
	case rsi < 30:
		return "Oversold"
	case rsi > 50:
		return "Bullish"
	default:
		return "Bearish"
	}
}

func macdInterpretation(histogram float64) string {
	switch {
	case histogram > 0:
		return "Bullish"
	case histogram < 0:
		return "Bearish"
	default:
		return "Neutral"
	}
}

func adxSignal(adx float64) string {
	switch {
	case adx > 50:
		return "Very Strong"
	case adx > 25:
		return "Strong"
	case adx > 20:
		return "Moderate"
	default:
		return "Weak"
	}
}

func trendFor(avgMomentum float64) (trend, strength string) {
	switch {
	case avgMomentum > 10:
		return "Strong Bullish", "Strong"
	case avgMomentum > 3:
		return "Bullish", "Moderate"
	case avgMomentum < -10:
		return "Strong Bearish", "Strong"
	case avgMomentum < -3:
		return "Bearish", "Moderate"
	default:
		return "Neutral", "Weak"
	}
}

func volumeSignalFor(volume24h, liquidity float64) string {
	if liquidity <= 0 {
		return "Normal"
	}
	ratio := volume24h / liquidity
	switch {
	case ratio > 2:
		return "Very High"
	case ratio > 1:
		return "High"
	case ratio < 0.1:
		return "Low"
	default:
		return "Normal"
	}
}

func orderFlow(txns entity.TxnSummary) entity.OrderFlowBlock {
	flow := entity.OrderFlowBlock{Buys: txns.Buys, Sells: txns.Sells, BuyPressure: 50}
	if txns.Buys > 0 && txns.Sells > 0 {
		flow.BuyPressure = float64(txns.Buys) / float64(txns.Buys+txns.Sells) * 100
	}
	return flow
}

func chartReasoning(rsi *entity.RSIBlock, macd indicators.MACDResult, macdOK bool, avgMomentum, liquidity float64) []string {
	reasoning := []string{}
	if rsi != nil {
		if rsi.Value > 70 {
			reasoning = append(reasoning, "RSI overbought - potential pullback")
		} else if rsi.Value < 30 {
			reasoning = append(reasoning, "RSI oversold - potential bounce")
		}
	}
	if macdOK {
		if macd.Histogram > 0 {
			reasoning = append(reasoning, "MACD bullish crossover")
		} else if macd.Histogram < 0 {
			reasoning = append(reasoning, "MACD bearish crossover")
		}
	}
	if avgMomentum > 5 {
		reasoning = append(reasoning, "Strong momentum")
	} else if avgMomentum < -5 {
		reasoning = append(reasoning, "Weak momentum")
	}
	if liquidity > 0 && liquidity < 10000 {
		reasoning = append(reasoning, "Low liquidity warning")
	}
	return reasoning
}

// chartAction is the rule table combining RSI extremes with MACD direction;
// momentum breaks ties at lower confidence.
func chartAction(rsi *entity.RSIBlock, macd indicators.MACDResult, macdOK bool, avgMomentum float64, volumeSignal string) (action, confidence string) {
	switch {
	case rsi != nil && rsi.Value < 30 && macdOK && macd.Histogram > 0:
		return "Buy", "High"
	case rsi != nil && rsi.Value > 70 && macdOK && macd.Histogram < 0:
		return "Sell", "High"
	case avgMomentum > 10 && volumeSignal == "High":
		return "Buy", "Medium"
	case avgMomentum < -10:
		return "Sell", "Medium"
	default:
		return "Hold", "Medium"
	}
}

func securityBlock(security entity.GoPlusTokenResult, ok bool) entity.ChartSecurityBlock {
	block := entity.ChartSecurityBlock{BuyTax: "0", SellTax: "0"}
	if !ok {
		return block
	}
	block.IsHoneypot = security.IsHoneypot == "1" || security.CannotSellAll == "1"
	block.BuyTax = taxPercent(security.BuyTax)
	block.SellTax = taxPercent(security.SellTax)
	return block
}

// taxPercent renders the provider's fractional tax ("0.05") as a percent
// string ("5.0").
func taxPercent(fraction string) string {
	if fraction == "" {
		return "0"
	}
	value, err := strconv.ParseFloat(fraction, 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(roundTo(value*100, 1), 'f', 1, 64)
}

func tokenLogo(profile *entity.TokenProfile, info *entity.PairInfo) *string {
	if profile != nil && profile.Icon != "" {
		icon := profile.Icon
		return &icon
	}
	if info == nil || info.ImageURL == "" {
		return nil
	}
	url := info.ImageURL
	return &url
}

// formatPrice rounds with precision scaled to magnitude, keeping tiny token
// prices readable without scientific notation.
func formatPrice(price float64) *float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil
	}
	var rounded float64
	abs := math.Abs(price)
	switch {
	case abs == 0:
		rounded = 0
	case abs < 0.0001:
		rounded = roundTo(price, 10)
	case abs < 0.01:
		rounded = roundTo(price, 8)
	case abs < 1:
		rounded = roundTo(price, 6)
	case abs < 100:
		rounded = roundTo(price, 4)
	default:
		rounded = roundTo(price, 2)
	}
	return &rounded
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
