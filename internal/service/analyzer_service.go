package service

import (
	"context"
	"strings"
	"time"

	"token_analyzer/internal/client"
	"token_analyzer/internal/client/chainreader"
	"token_analyzer/internal/engine"
	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/metrics"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const analyzedChain = "bsc"

// AnalyzerService composes the full token analysis from upstream data.
type AnalyzerService interface {
	AnalyzeToken(ctx context.Context, address string) (*entity.TokenAnalysis, error)
}

// analyzerServiceImpl is the implementation of AnalyzerService.
type analyzerServiceImpl struct {
	dexClient    client.DEXScreenerClient
	goPlusClient client.GoPlusClient
	tokenReader  chainreader.TokenReader
	logger       *zap.Logger
	resultsCache *cache.Cache
	now          func() time.Time
}

// NewAnalyzerService creates a new instance of analyzerServiceImpl.
func NewAnalyzerService(
	dexClient client.DEXScreenerClient,
	goPlusClient client.GoPlusClient,
	tokenReader chainreader.TokenReader,
	cacheTTL time.Duration,
	logger *zap.Logger,
) AnalyzerService {
	return &analyzerServiceImpl{
		dexClient:    dexClient,
		goPlusClient: goPlusClient,
		tokenReader:  tokenReader,
		logger:       logger.Named("AnalyzerService"),
		resultsCache: cache.New(cacheTTL, 10*time.Minute),
		now:          time.Now,
	}
}

// AnalyzeToken implements the AnalyzerService interface. Upstream fetches run
// concurrently; each degrades to its documented default on failure so the
// engine always receives structurally valid input. Results are cached briefly
// per lowercase address.
func (s *analyzerServiceImpl) AnalyzeToken(ctx context.Context, address string) (*entity.TokenAnalysis, error) {
	cacheKey := strings.ToLower(address)
	if cached, found := s.resultsCache.Get(cacheKey); found {
		if analysis, ok := cached.(*entity.TokenAnalysis); ok {
			metrics.AnalysisCacheHitsTotal.Inc()
			s.logger.Debug("Returning cached analysis", zap.String("address", address))
			return analysis, nil
		}
	}

	s.logger.Info("Analyzing token", zap.String("address", address))

	var (
		identity entity.TokenIdentity
		honeypot entity.HoneypotFinding
		pairs    []entity.PairData
		profiles []entity.TokenProfile
		boosts   []entity.TokenBoost
	)

	eg, childCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		identity = s.tokenReader.ReadIdentity(childCtx, address)
		return nil
	})
	eg.Go(func() error {
		honeypot = s.goPlusClient.CheckToken(childCtx, address)
		return nil
	})
	eg.Go(func() error {
		fetched, err := s.dexClient.GetTokenPairs(childCtx, address)
		if err != nil {
			s.logger.Warn("Pair fetch failed, continuing with empty market data",
				zap.String("address", address), zap.Error(err))
			return nil
		}
		pairs = fetched
		return nil
	})
	eg.Go(func() error {
		fetched, err := s.dexClient.GetLatestProfiles(childCtx)
		if err != nil {
			s.logger.Debug("Profile fetch failed, continuing without profile",
				zap.String("address", address), zap.Error(err))
			return nil
		}
		profiles = fetched
		return nil
	})
	eg.Go(func() error {
		fetched, err := s.dexClient.GetLatestBoosts(childCtx)
		if err != nil {
			s.logger.Debug("Boost fetch failed, continuing without boost info",
				zap.String("address", address), zap.Error(err))
			return nil
		}
		boosts = fetched
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	analysis := s.compose(address, identity, honeypot, pairs, profiles, boosts)
	s.resultsCache.Set(cacheKey, analysis, cache.DefaultExpiration)

	s.logger.Info("Token analysis complete",
		zap.String("address", address),
		zap.Int("riskScore", analysis.Risk.Score),
		zap.String("riskLevel", analysis.Risk.Level),
		zap.String("recommendation", analysis.Commentary.Recommendation))
	return analysis, nil
}

// compose runs the scoring engine over the fetched inputs and assembles the
// response document. Pure given its inputs apart from the clock.
func (s *analyzerServiceImpl) compose(
	address string,
	identity entity.TokenIdentity,
	honeypot entity.HoneypotFinding,
	pairs []entity.PairData,
	profiles []entity.TokenProfile,
	boosts []entity.TokenBoost,
) *entity.TokenAnalysis {
	snap := engine.BuildMarketSnapshot(pairs)

	var socials entity.SocialPresence
	if best, ok := engine.BestPair(pairs); ok {
		socials = engine.ExtractSocials(best.Info)
	} else {
		socials = engine.ExtractSocials(nil)
	}

	profile := matchProfile(profiles, address)
	boost := matchBoost(boosts, address)

	ageDays := engine.TokenAgeDays(snap.PairCreatedAt, s.now())
	metrics := engine.ComputeTechnicalMetrics(snap)
	rugRisk := engine.EvaluateRugRisk(snap, metrics)
	survival := engine.EvaluateSurvival(snap, engine.SurvivalInputs{
		TokenAgeDays:    ageDays,
		Metrics:         metrics,
		Socials:         socials,
		HasEnhancedInfo: profile.HasEnhancedInfo(),
	})
	risk := engine.AggregateRisk(snap, engine.RiskInputs{
		Honeypot:     honeypot,
		RugRisk:      rugRisk,
		IsRenounced:  identity.IsOwnerRenounced,
		TokenAgeDays: ageDays,
	})
	commentary := engine.BuildCommentary(engine.CommentaryInputs{
		Metrics:      metrics,
		Risk:         risk,
		RugRisk:      rugRisk,
		Survival:     survival,
		Honeypot:     honeypot,
		TokenAgeDays: ageDays,
	})

	return &entity.TokenAnalysis{
		Address:  address,
		Token:    identity,
		Chain:    analyzedChain,
		Profile:  profileBlock(profile),
		Socials:  socials,
		Boost:    boostBlock(boost),
		Honeypot: honeypot,
		Risk:     risk,
		Market:   snap,
		PriceImpact: entity.PriceImpactBlock{
			Buy100:  metrics.PriceImpact100,
			Buy500:  metrics.PriceImpact500,
			Buy1000: metrics.PriceImpact1000,
		},
		Technical: entity.TechnicalBlock{
			Momentum: entity.MomentumBlock{
				Score:          metrics.MomentumScore,
				Label:          metrics.MomentumLabel,
				PriceChange5m:  snap.PriceChange5mPct,
				PriceChange1h:  snap.PriceChange1hPct,
				PriceChange6h:  snap.PriceChange6hPct,
				PriceChange24h: snap.PriceChange24hPct,
			},
			Volatility: entity.VolatilityBlock{
				Index:                 metrics.VolatilityIndex,
				Label:                 metrics.VolatilityLabel,
				RecentVolumeRatio:     metrics.RecentVolumeRatio,
				PriceRangeCompression: metrics.PriceRangeCompression,
				CompressionLabel:      metrics.CompressionLabel,
			},
			Pressure: entity.PressureBlock{
				BuySellRatio24h: metrics.BuySellRatio24h,
				BuySellRatio1h:  metrics.BuySellRatio1h,
				Label:           metrics.PressureLabel,
			},
			Velocity: entity.VelocityBlock{
				Value: metrics.Velocity,
				Label: metrics.VelocityLabel,
			},
			MarketHealth: entity.MarketHealthBlock{
				VolumeConsistency:       metrics.VolumeConsistency,
				ConsistencyLabel:        metrics.ConsistencyLabel,
				VolumeLiquidityRatio:    metrics.VolumeLiquidityRatio,
				LiquidityStabilityLabel: metrics.LiquidityStabilityLabel,
				TxnFrequency1h:          metrics.TxnFrequency1h,
				TxnFrequencyLabel:       metrics.TxnFrequencyLabel,
				AvgTradeSize:            metrics.AvgTradeSize,
				TradeSizeLabel:          metrics.TradeSizeLabel,
			},
		},
		Commentary:       commentary,
		RugRisk:          rugRisk,
		SurvivalAnalysis: survival,
	}
}

// matchProfile finds the BSC profile entry for the address, nil when absent.
func matchProfile(profiles []entity.TokenProfile, address string) *entity.TokenProfile {
	for i := range profiles {
		if profiles[i].ChainID == analyzedChain &&
			strings.EqualFold(profiles[i].TokenAddress, address) {
			return &profiles[i]
		}
	}
	return nil
}

// matchBoost finds the BSC boost entry for the address, nil when absent.
func matchBoost(boosts []entity.TokenBoost, address string) *entity.TokenBoost {
	for i := range boosts {
		if boosts[i].ChainID == analyzedChain &&
			strings.EqualFold(boosts[i].TokenAddress, address) {
			return &boosts[i]
		}
	}
	return nil
}

func profileBlock(profile *entity.TokenProfile) *entity.ProfileBlock {
	if profile == nil {
		return nil
	}
	return &entity.ProfileBlock{
		Description:     optionalString(profile.Description),
		Icon:            optionalString(profile.Icon),
		Header:          optionalString(profile.Header),
		Links:           profile.Links,
		HasEnhancedInfo: profile.HasEnhancedInfo(),
	}
}

func boostBlock(boost *entity.TokenBoost) *entity.BoostBlock {
	if boost == nil {
		return nil
	}
	return &entity.BoostBlock{Active: boost.Amount, Total: boost.TotalAmount}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
