package restapi

import (
	"net/http"
	"regexp"

	"token_analyzer/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var bscAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// TokenHandler handles the token analysis HTTP endpoints.
type TokenHandler struct {
	analyzerService service.AnalyzerService
	chartService    service.ChartService
	logger          *zap.Logger
}

// NewTokenHandler creates a new instance of TokenHandler.
func NewTokenHandler(analyzerService service.AnalyzerService, chartService service.ChartService, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{
		analyzerService: analyzerService,
		chartService:    chartService,
		logger:          logger.Named("TokenHandler"),
	}
}

// AnalyzeTokenHandler handles GET /api/analyze-token?address=0x...
func (h *TokenHandler) AnalyzeTokenHandler(c *gin.Context) {
	address := c.Query("address")
	if !bscAddressPattern.MatchString(address) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid BNB token address"})
		return
	}

	analysis, err := h.analyzerService.AnalyzeToken(c.Request.Context(), address)
	if err != nil {
		h.logger.Error("Token analysis failed",
			zap.String("address", address),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze token"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// ChartAnalysisHandler handles GET /api/chart-analysis?address=0x...
func (h *TokenHandler) ChartAnalysisHandler(c *gin.Context) {
	address := c.Query("address")
	if !bscAddressPattern.MatchString(address) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid BNB token address"})
		return
	}

	analysis, err := h.chartService.AnalyzeChart(c.Request.Context(), address)
	if err != nil {
		h.logger.Error("Chart analysis failed",
			zap.String("address", address),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
