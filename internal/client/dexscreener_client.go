package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DEXScreenerClient defines the interface for interacting with the DEX Screener API.
type DEXScreenerClient interface {
	GetTokenPairs(ctx context.Context, tokenAddress string) ([]entity.PairData, error)
	GetLatestProfiles(ctx context.Context) ([]entity.TokenProfile, error)
	GetLatestBoosts(ctx context.Context) ([]entity.TokenBoost, error)
}

// dexScreenerClientImpl is the implementation of DEXScreenerClient.
type dexScreenerClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewDEXScreenerClient creates a new instance of dexScreenerClientImpl.
func NewDEXScreenerClient(baseURL string, timeout time.Duration, rps float64, burst int, logger *zap.Logger) DEXScreenerClient {
	return &dexScreenerClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger.Named("DEXScreenerClient"),
	}
}

// GetTokenPairs implements the DEXScreenerClient interface. The endpoint
// returns pairs across every chain the token trades on; chain filtering is the
// caller's concern.
func (c *dexScreenerClientImpl) GetTokenPairs(ctx context.Context, tokenAddress string) ([]entity.PairData, error) {
	if tokenAddress == "" {
		return nil, fmt.Errorf("tokenAddress cannot be empty")
	}

	requestURL := fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, tokenAddress)

	rawBody, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var wrapper entity.DEXTokenPairs
	if err := json.Unmarshal(rawBody, &wrapper); err != nil {
		c.logger.Error("Failed to unmarshal DEX Screener token pairs response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal DEX Screener response from %s: %w", requestURL, err)
	}

	if len(wrapper.Pairs) == 0 {
		c.logger.Warn("DEXScreener returned 200 OK with 0 pairs. Token may not be listed.",
			zap.String("url", requestURL),
			zap.String("tokenAddress", tokenAddress))
	}

	c.logger.Debug("Successfully unmarshalled DEX Screener token pairs response",
		zap.String("tokenAddress", tokenAddress),
		zap.Int("pairCount", len(wrapper.Pairs)))
	return wrapper.Pairs, nil
}

// GetLatestProfiles implements the DEXScreenerClient interface.
func (c *dexScreenerClientImpl) GetLatestProfiles(ctx context.Context) ([]entity.TokenProfile, error) {
	requestURL := c.baseURL + "/token-profiles/latest/v1"

	rawBody, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var profiles []entity.TokenProfile
	if err := json.Unmarshal(rawBody, &profiles); err != nil {
		c.logger.Error("Failed to unmarshal DEX Screener token profiles response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal DEX Screener profiles response from %s: %w", requestURL, err)
	}

	c.logger.Debug("Successfully unmarshalled DEX Screener token profiles response",
		zap.Int("profileCount", len(profiles)))
	return profiles, nil
}

// GetLatestBoosts implements the DEXScreenerClient interface.
func (c *dexScreenerClientImpl) GetLatestBoosts(ctx context.Context) ([]entity.TokenBoost, error) {
	requestURL := c.baseURL + "/token-boosts/latest/v1"

	rawBody, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var boosts []entity.TokenBoost
	if err := json.Unmarshal(rawBody, &boosts); err != nil {
		c.logger.Error("Failed to unmarshal DEX Screener token boosts response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal DEX Screener boosts response from %s: %w", requestURL, err)
	}

	c.logger.Debug("Successfully unmarshalled DEX Screener token boosts response",
		zap.Int("boostCount", len(boosts)))
	return boosts, nil
}

// get performs a rate-limited GET and returns the body of a 200 response. The
// body is copied out of the pooled response before release.
func (c *dexScreenerClientImpl) get(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait for %s: %w", requestURL, err)
	}

	c.logger.Debug("Requesting data from DEX Screener", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			metrics.UpstreamErrorsTotal.WithLabelValues("dexscreener").Inc()
			c.logger.Error("Failed to execute request to DEX Screener", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			metrics.UpstreamErrorsTotal.WithLabelValues("dexscreener").Inc()
			c.logger.Error("Failed to execute request to DEX Screener (with default timeout)", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	rawBody := resp.Body()

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("dexscreener").Inc()
		c.logger.Error("DEX Screener API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, fmt.Errorf("DEX Screener API request to %s failed with status %d: %s", requestURL, resp.StatusCode(), string(rawBody))
	}

	body := make([]byte, len(rawBody))
	copy(body, rawBody)
	return body, nil
}
