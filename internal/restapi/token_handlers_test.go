package restapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"token_analyzer/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAnalyzer struct {
	analysis *entity.TokenAnalysis
	err      error
	calls    int
}

func (s *stubAnalyzer) AnalyzeToken(_ context.Context, _ string) (*entity.TokenAnalysis, error) {
	s.calls++
	return s.analysis, s.err
}

type stubChartService struct {
	analysis *entity.ChartAnalysis
	err      error
}

func (s *stubChartService) AnalyzeChart(_ context.Context, _ string) (*entity.ChartAnalysis, error) {
	return s.analysis, s.err
}

const validAddress = "0x1234567890abcdef1234567890abcdef12345678"

func newTestRouter(analyzer *stubAnalyzer, chart *stubChartService) http.Handler {
	handler := NewTokenHandler(analyzer, chart, zap.NewNop())
	return SetupRouter(handler, zap.NewNop())
}

func TestAnalyzeTokenHandler_RejectsInvalidAddress(t *testing.T) {
	analyzer := &stubAnalyzer{}
	router := newTestRouter(analyzer, &stubChartService{})

	for _, address := range []string{
		"",
		"notanaddress",
		"0x123",
		"0x1234567890abcdef1234567890abcdef123456789", // 41 hex chars
		"0xzzzz567890abcdef1234567890abcdef12345678", // non-hex
		"1234567890abcdef1234567890abcdef12345678", // missing prefix
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/analyze-token?address="+address, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "address %q", address)
		assert.JSONEq(t, `{"error": "Invalid BNB token address"}`, w.Body.String())
	}
	assert.Zero(t, analyzer.calls)
}

func TestAnalyzeTokenHandler_ReturnsAnalysis(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &entity.TokenAnalysis{
		Address: validAddress,
		Chain:   "bsc",
		Token:   entity.TokenIdentity{Name: "Test Token", Symbol: "TEST", Decimals: 18},
	}}
	router := newTestRouter(analyzer, &stubChartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze-token?address="+validAddress, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"address":"`+validAddress+`"`)
	assert.Contains(t, w.Body.String(), `"chain":"bsc"`)
	assert.Equal(t, 1, analyzer.calls)
}

func TestAnalyzeTokenHandler_ServiceFailure(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("upstream down")}
	router := newTestRouter(analyzer, &stubChartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze-token?address="+validAddress, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Failed to analyze token"}`, w.Body.String())
}

func TestChartAnalysisHandler_ReturnsDocument(t *testing.T) {
	chart := &stubChartService{analysis: &entity.ChartAnalysis{
		TokenAddress: validAddress,
		TokenSymbol:  "TEST",
		DataSource:   "GeckoTerminal OHLCV",
		Timeframe:    "1h",
	}}
	router := newTestRouter(&stubAnalyzer{}, chart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chart-analysis?address="+validAddress, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dataSource":"GeckoTerminal OHLCV"`)
}

func TestChartAnalysisHandler_PropagatesErrorMessage(t *testing.T) {
	chart := &stubChartService{err: errors.New("no BSC trading pairs found for " + validAddress)}
	router := newTestRouter(&stubAnalyzer{}, chart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chart-analysis?address="+validAddress, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no BSC trading pairs")
}

func TestChartAnalysisHandler_RejectsInvalidAddress(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{}, &stubChartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chart-analysis?address=bogus", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{}, &stubChartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
