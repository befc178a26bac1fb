package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"token_analyzer/internal/entity"
	"token_analyzer/internal/pkg/metrics"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// GoPlusClient defines the interface for the GoPlus token security API.
type GoPlusClient interface {
	// CheckToken never returns an error: any upstream failure degrades to the
	// default finding with Verified=false so scoring can always proceed.
	CheckToken(ctx context.Context, tokenAddress string) entity.HoneypotFinding
	// RawSecurity exposes the full provider payload for callers that need
	// fields beyond the honeypot verdict. Returns false when unavailable.
	RawSecurity(ctx context.Context, tokenAddress string) (entity.GoPlusTokenResult, bool)
}

// goPlusClientImpl is the implementation of GoPlusClient.
type goPlusClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	chain   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewGoPlusClient creates a new instance of goPlusClientImpl.
func NewGoPlusClient(baseURL, chain string, timeout time.Duration, rps float64, burst int, logger *zap.Logger) GoPlusClient {
	return &goPlusClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		chain:   chain,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger.Named("GoPlusClient"),
	}
}

// CheckToken implements the GoPlusClient interface.
func (c *goPlusClientImpl) CheckToken(ctx context.Context, tokenAddress string) entity.HoneypotFinding {
	result, ok := c.RawSecurity(ctx, tokenAddress)
	if !ok {
		return entity.DefaultHoneypotFinding()
	}
	return convertSecurityResult(result)
}

// RawSecurity implements the GoPlusClient interface.
func (c *goPlusClientImpl) RawSecurity(ctx context.Context, tokenAddress string) (entity.GoPlusTokenResult, bool) {
	requestURL := fmt.Sprintf("%s/api/v1/token_security/%s?contract_addresses=%s", c.baseURL, c.chain, tokenAddress)

	c.logger.Debug("Requesting token security from GoPlus", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Warn("Rate limiter interrupted for GoPlus request", zap.String("url", requestURL), zap.Error(err))
		return entity.GoPlusTokenResult{}, false
	}

	deadline, ok := ctx.Deadline()
	var err error
	if ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("goplus").Inc()
		c.logger.Warn("GoPlus request failed, substituting default security verdict",
			zap.String("tokenAddress", tokenAddress), zap.Error(err))
		return entity.GoPlusTokenResult{}, false
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("goplus").Inc()
		c.logger.Warn("GoPlus API returned non-200, substituting default security verdict",
			zap.String("tokenAddress", tokenAddress),
			zap.Int("statusCode", resp.StatusCode()))
		return entity.GoPlusTokenResult{}, false
	}

	var payload entity.GoPlusResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		c.logger.Warn("Failed to unmarshal GoPlus response, substituting default security verdict",
			zap.String("tokenAddress", tokenAddress), zap.Error(err))
		return entity.GoPlusTokenResult{}, false
	}

	result, found := payload.Result[strings.ToLower(tokenAddress)]
	if !found {
		c.logger.Debug("GoPlus has no data for token", zap.String("tokenAddress", tokenAddress))
		return entity.GoPlusTokenResult{}, false
	}
	return result, true
}

// convertSecurityResult maps the string-encoded provider payload to the
// engine-facing finding. A sell tax above 50% counts as a honeypot even when
// the provider's own honeypot flag is clear.
func convertSecurityResult(result entity.GoPlusTokenResult) entity.HoneypotFinding {
	isHoneypot := result.IsHoneypot == "1"
	cannotSell := result.CannotSellAll == "1" || result.SellTax == "100"
	sellTax, _ := strconv.ParseFloat(result.SellTax, 64)
	highSellTax := sellTax > 50

	var reason *string
	switch {
	case isHoneypot:
		r := "Token flagged as honeypot"
		reason = &r
	case cannotSell:
		r := "Token cannot be sold"
		reason = &r
	case highSellTax:
		r := fmt.Sprintf("Extremely high sell tax: %s%%", result.SellTax)
		reason = &r
	}

	return entity.HoneypotFinding{
		IsHoneypot: isHoneypot || cannotSell || highSellTax,
		CanSell:    !cannotSell,
		Reason:     reason,
		BuyTaxPct:  result.BuyTax,
		SellTaxPct: result.SellTax,
		Verified:   true,
	}
}
