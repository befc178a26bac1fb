package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/metrics"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// geckoTerminalAPIVersion pins the response schema via the Accept header.
const geckoTerminalAPIVersion = "application/json;version=20230302"

// GeckoTerminalClient defines the interface for the GeckoTerminal OHLCV API.
type GeckoTerminalClient interface {
	GetPoolOHLCV(ctx context.Context, poolAddress, timeframe string, aggregate, limit int) ([]entity.Candle, error)
}

// geckoTerminalClientImpl is the implementation of GeckoTerminalClient.
type geckoTerminalClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	network string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewGeckoTerminalClient creates a new instance of geckoTerminalClientImpl.
func NewGeckoTerminalClient(baseURL, network string, timeout time.Duration, rps float64, burst int, logger *zap.Logger) GeckoTerminalClient {
	return &geckoTerminalClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		network: network,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger.Named("GeckoTerminalClient"),
	}
}

// GetPoolOHLCV implements the GeckoTerminalClient interface. Candles come back
// chronologically ascending with zero/negative closes filtered out.
func (c *geckoTerminalClientImpl) GetPoolOHLCV(ctx context.Context, poolAddress, timeframe string, aggregate, limit int) ([]entity.Candle, error) {
	requestURL := fmt.Sprintf("%s/api/v2/networks/%s/pools/%s/ohlcv/%s?aggregate=%d&limit=%d&currency=usd",
		c.baseURL, c.network, poolAddress, timeframe, aggregate, limit)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait for %s: %w", requestURL, err)
	}

	c.logger.Debug("Requesting OHLCV from GeckoTerminal",
		zap.String("poolAddress", poolAddress),
		zap.String("timeframe", timeframe),
		zap.Int("aggregate", aggregate))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, geckoTerminalAPIVersion)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	var err error
	if ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("geckoterminal").Inc()
		c.logger.Error("Failed to execute request to GeckoTerminal", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("geckoterminal").Inc()
		c.logger.Error("GeckoTerminal API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("GeckoTerminal API request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	var payload entity.GeckoTerminalOHLCVResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		c.logger.Error("Failed to unmarshal GeckoTerminal response", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal GeckoTerminal response from %s: %w", requestURL, err)
	}

	candles := convertOHLCVList(payload.Data.Attributes.OHLCVList)

	c.logger.Debug("Successfully unmarshalled GeckoTerminal OHLCV response",
		zap.String("poolAddress", poolAddress),
		zap.Int("candleCount", len(candles)))
	return candles, nil
}

// convertOHLCVList maps raw [timestamp,o,h,l,c,v] tuples to candles, dropping
// malformed entries and candles without a positive close, and sorts the result
// chronologically.
func convertOHLCVList(list [][]float64) []entity.Candle {
	candles := make([]entity.Candle, 0, len(list))
	for _, row := range list {
		if len(row) < 6 {
			continue
		}
		candle := entity.Candle{
			Timestamp: int64(row[0]),
			Open:      row[1],
			High:      row[2],
			Low:       row[3],
			Close:     row[4],
			Volume:    row[5],
		}
		if candle.Close <= 0 {
			continue
		}
		candles = append(candles, candle)
	}
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Timestamp < candles[j].Timestamp
	})
	return candles
}
