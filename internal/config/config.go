package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	DEXScreener   DEXScreenerConfig   `yaml:"dexScreener"`
	GoPlus        GoPlusConfig        `yaml:"goPlus"`
	GeckoTerminal GeckoTerminalConfig `yaml:"geckoTerminal"`
	RpcClient     RpcClientConfig     `yaml:"rpcClient"`
	Analyzer      AnalyzerConfig      `yaml:"analyzer"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// DEXScreenerConfig holds the configuration for the DEX Screener client.
type DEXScreenerConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// GoPlusConfig holds the configuration for the GoPlus security client.
type GoPlusConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	ChainID              string  `yaml:"chainID"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// GeckoTerminalConfig holds the configuration for the GeckoTerminal OHLCV client.
type GeckoTerminalConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	Network              string  `yaml:"network"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	BurstLimit           int     `yaml:"burstLimit"`
}

// RpcClientConfig holds configuration for the BSC JSON-RPC client.
type RpcClientConfig struct {
	Endpoint         string `yaml:"endpoint"`
	ConnectTimeoutMs int64  `yaml:"connectTimeoutMs"`
	CallTimeoutMs    int64  `yaml:"callTimeoutMs"`
}

// AnalyzerConfig holds configuration for the analysis services.
type AnalyzerConfig struct {
	CacheTTLSeconds   int `yaml:"cacheTTLSeconds"`
	ChartLookbackDays int `yaml:"chartLookbackDays"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// LoadConfig loads configuration from a YAML file and fills in defaults for
// any upstream endpoint that is not set.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}

	if cfg.DEXScreener.BaseURL == "" {
		cfg.DEXScreener.BaseURL = "https://api.dexscreener.com"
		logrus.Infof("DEXScreener.BaseURL not set, defaulting to %s", cfg.DEXScreener.BaseURL)
	}
	if cfg.DEXScreener.RequestTimeoutMillis == 0 {
		cfg.DEXScreener.RequestTimeoutMillis = 10000
	}
	if cfg.DEXScreener.RateLimitPerSecond == 0 {
		// Public endpoint allows 300 req/min.
		cfg.DEXScreener.RateLimitPerSecond = 5
	}
	if cfg.DEXScreener.BurstLimit == 0 {
		cfg.DEXScreener.BurstLimit = 5
	}

	if cfg.GoPlus.BaseURL == "" {
		cfg.GoPlus.BaseURL = "https://api.gopluslabs.io"
		logrus.Infof("GoPlus.BaseURL not set, defaulting to %s", cfg.GoPlus.BaseURL)
	}
	if cfg.GoPlus.ChainID == "" {
		// BSC chain id on the GoPlus API.
		cfg.GoPlus.ChainID = "56"
	}
	if cfg.GoPlus.RequestTimeoutMillis == 0 {
		cfg.GoPlus.RequestTimeoutMillis = 10000
	}
	if cfg.GoPlus.RateLimitPerSecond == 0 {
		cfg.GoPlus.RateLimitPerSecond = 2
	}
	if cfg.GoPlus.BurstLimit == 0 {
		cfg.GoPlus.BurstLimit = 2
	}

	if cfg.GeckoTerminal.BaseURL == "" {
		cfg.GeckoTerminal.BaseURL = "https://api.geckoterminal.com"
		logrus.Infof("GeckoTerminal.BaseURL not set, defaulting to %s", cfg.GeckoTerminal.BaseURL)
	}
	if cfg.GeckoTerminal.Network == "" {
		cfg.GeckoTerminal.Network = "bsc"
	}
	if cfg.GeckoTerminal.RequestTimeoutMillis == 0 {
		cfg.GeckoTerminal.RequestTimeoutMillis = 15000
	}
	if cfg.GeckoTerminal.RateLimitPerSecond == 0 {
		// Free tier allows 30 req/min.
		cfg.GeckoTerminal.RateLimitPerSecond = 0.5
	}
	if cfg.GeckoTerminal.BurstLimit == 0 {
		cfg.GeckoTerminal.BurstLimit = 1
	}

	if cfg.RpcClient.Endpoint == "" {
		cfg.RpcClient.Endpoint = "https://bsc-dataseed.binance.org"
		logrus.Infof("RpcClient.Endpoint not set, defaulting to %s", cfg.RpcClient.Endpoint)
	}
	if cfg.RpcClient.ConnectTimeoutMs == 0 {
		cfg.RpcClient.ConnectTimeoutMs = 5000
	}
	if cfg.RpcClient.CallTimeoutMs == 0 {
		cfg.RpcClient.CallTimeoutMs = 10000
	}

	if cfg.Analyzer.CacheTTLSeconds == 0 {
		cfg.Analyzer.CacheTTLSeconds = 60
		logrus.Infof("Analyzer.CacheTTLSeconds not set, defaulting to %d", cfg.Analyzer.CacheTTLSeconds)
	}
	if cfg.Analyzer.ChartLookbackDays == 0 {
		cfg.Analyzer.ChartLookbackDays = 14
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}
