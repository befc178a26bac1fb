package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configures the Gin engine with middleware and all API routes.
func SetupRouter(tokenHandler *TokenHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(logger))
	router.Use(MetricsMiddleware())
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/analyze-token", tokenHandler.AnalyzeTokenHandler)
		api.GET("/chart-analysis", tokenHandler.ChartAnalysisHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
