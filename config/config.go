// Package config resolves runtime settings from the environment and the
// command line. Flags override environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by Load.
const (
	EnvCatalog      = "BESTBUY_CATALOG"
	EnvAtomicOrders = "BESTBUY_ATOMIC_ORDERS"
	EnvLogLevel     = "LOG_LEVEL"
	EnvDev          = "BESTBUY_DEV"
)

const defaultLogLevel = "info"

// Config holds the settings of one run.
type Config struct {
	// CatalogPath is a YAML catalog file. Empty selects the built-in catalog.
	CatalogPath string
	// AtomicOrders places orders all-or-nothing instead of line by line.
	AtomicOrders bool
	LogLevel     zapcore.Level
	Development  bool
}

// Load builds a Config from the environment, then applies args (without the
// program name) on top.
func Load(args []string) (*Config, error) {
	atomicDefault, err := getEnvBool(EnvAtomicOrders, false)
	if err != nil {
		return nil, err
	}
	devDefault, err := getEnvBool(EnvDev, false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	var level string

	fs := pflag.NewFlagSet("bestbuy", pflag.ContinueOnError)
	fs.StringVar(&cfg.CatalogPath, "catalog", os.Getenv(EnvCatalog), "path to a YAML product catalog (default: built-in catalog)")
	fs.BoolVar(&cfg.AtomicOrders, "atomic-orders", atomicDefault, "reject the whole order when any line cannot be filled")
	fs.StringVar(&level, "log-level", getEnv(EnvLogLevel, defaultLogLevel), "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Development, "dev", devDefault, "human-readable development logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return cfg, nil
}

// NewLogger builds the process logger. Output goes to stderr so it never
// mixes with the menu.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zc.Build()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}
