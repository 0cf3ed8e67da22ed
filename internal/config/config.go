// Package config loads runtime configuration for the CLI from the
// environment: read, default, validate, return one error listing everything
// wrong at once.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the two settings the parser CLI needs at startup.
type Config struct {
	SolanaRPCURL string
	LogLevel     string
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Load reads environment variables, applies defaults, and validates. It
// attempts to load a .env file first; a missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var errs []string

	cfg.SolanaRPCURL = strings.TrimSpace(os.Getenv("SOLANA_RPC_URL"))
	if cfg.SolanaRPCURL == "" {
		cfg.SolanaRPCURL = "https://api.mainnet-beta.solana.com"
	}

	logLevel := strings.TrimSpace(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}
	if _, ok := allowedLogLevels[logLevel]; !ok {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of debug|info|warn|error, got %q", logLevel))
	}
	cfg.LogLevel = logLevel

	if len(errs) > 0 {
		return Config{}, errors.New("config validation error:\n  - " + strings.Join(errs, "\n  - "))
	}

	return cfg, nil
}

// MustLoad exits with a readable error instead of returning one, for use at
// the top of main().
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nFATAL: %v\n\n", err)
		os.Exit(1)
	}
	return cfg
}

// RedactedSummary returns a safe, loggable snapshot of the config.
func (c Config) RedactedSummary() string {
	return fmt.Sprintf("config{ solana_rpc=%s, log_level=%s }", redactURL(c.SolanaRPCURL), c.LogLevel)
}

func redactURL(u string) string {
	parts := strings.Split(u, "api-key=")
	if len(parts) < 2 {
		return u
	}
	tail := parts[1]
	if i := strings.IndexAny(tail, "&;"); i >= 0 {
		tail = tail[:i]
	}
	return strings.Replace(u, "api-key="+tail, "api-key=***", 1)
}
