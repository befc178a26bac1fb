package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"token_analyzer/internal/client"
	"token_analyzer/internal/client/chainreader"
	"token_analyzer/internal/config"
	"token_analyzer/internal/pkg/logger"
	"token_analyzer/internal/pkg/metrics"
	"token_analyzer/internal/restapi"
	"token_analyzer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	// Bootstrap logging with logrus until the config is loaded; the config
	// loader itself logs through logrus.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()
	logger.BridgeSlog(zapLogger)

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	// Upstream clients.
	dexScreenerClient := client.NewDEXScreenerClient(
		cfg.DEXScreener.BaseURL,
		time.Duration(cfg.DEXScreener.RequestTimeoutMillis)*time.Millisecond,
		cfg.DEXScreener.RateLimitPerSecond,
		cfg.DEXScreener.BurstLimit,
		zapLogger,
	)
	zapLogger.Info("DEXScreener client initialized")

	goPlusClient := client.NewGoPlusClient(
		cfg.GoPlus.BaseURL,
		cfg.GoPlus.ChainID,
		time.Duration(cfg.GoPlus.RequestTimeoutMillis)*time.Millisecond,
		cfg.GoPlus.RateLimitPerSecond,
		cfg.GoPlus.BurstLimit,
		zapLogger,
	)
	zapLogger.Info("GoPlus client initialized")

	geckoTerminalClient := client.NewGeckoTerminalClient(
		cfg.GeckoTerminal.BaseURL,
		cfg.GeckoTerminal.Network,
		time.Duration(cfg.GeckoTerminal.RequestTimeoutMillis)*time.Millisecond,
		cfg.GeckoTerminal.RateLimitPerSecond,
		cfg.GeckoTerminal.BurstLimit,
		zapLogger,
	)
	zapLogger.Info("GeckoTerminal client initialized")

	tokenReader, err := chainreader.NewTokenReader(
		cfg.RpcClient.Endpoint,
		time.Duration(cfg.RpcClient.ConnectTimeoutMs)*time.Millisecond,
		time.Duration(cfg.RpcClient.CallTimeoutMs)*time.Millisecond,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("Failed to connect to BSC RPC endpoint", zap.Error(err))
	}
	zapLogger.Info("BSC token reader initialized", zap.String("endpoint", cfg.RpcClient.Endpoint))

	// Services.
	analyzerService := service.NewAnalyzerService(
		dexScreenerClient,
		goPlusClient,
		tokenReader,
		time.Duration(cfg.Analyzer.CacheTTLSeconds)*time.Second,
		zapLogger,
	)
	chartService := service.NewChartService(
		dexScreenerClient,
		geckoTerminalClient,
		goPlusClient,
		cfg.Analyzer.ChartLookbackDays,
		zapLogger,
	)
	zapLogger.Info("Analysis services initialized")

	tokenHandler := restapi.NewTokenHandler(analyzerService, chartService, zapLogger)
	router := restapi.SetupRouter(tokenHandler, zapLogger)

	// Pprof endpoints. Protect these in a production deployment.
	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.POST("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofRouter.GET("/block", gin.WrapH(pprof.Handler("block")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofRouter.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
		pprofRouter.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
	}
	zapLogger.Info("Pprof endpoints enabled under /debug/pprof")

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
