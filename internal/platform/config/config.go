package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultMaxBridgeDepth bounds how many bridges may nest while resolving one pair.
const DefaultMaxBridgeDepth = 8

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	CrossMatrixFile    string
	FXTablesFile       string
	MaxBridgeDepth     int
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CROSS_MATRIX_FILE", "")
	viper.SetDefault("FX_TABLES_FILE", "")
	viper.SetDefault("MAX_BRIDGE_DEPTH", DefaultMaxBridgeDepth)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	level, err := ParseLogLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		LogLevel:           level,
		CrossMatrixFile:    viper.GetString("CROSS_MATRIX_FILE"),
		FXTablesFile:       viper.GetString("FX_TABLES_FILE"),
		MaxBridgeDepth:     viper.GetInt("MAX_BRIDGE_DEPTH"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MaxBridgeDepth <= 0 {
		slog.Warn("MAX_BRIDGE_DEPTH must be positive, using default", slog.Int("default", DefaultMaxBridgeDepth))
		cfg.MaxBridgeDepth = DefaultMaxBridgeDepth
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// ParseLogLevel maps debug, info, warn and error (any case) to a slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
