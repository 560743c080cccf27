package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Request limits
	MaxBodyBytes int64

	// Pruning defaults
	DefaultMaxTokens int

	// Token counting: "tiktoken" for exact BPE counts, "estimate" for the
	// offline word heuristic.
	TokenCounter  string
	TokenEncoding string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("PAGETRIM_API_KEY"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 10485760), // 10MB

		DefaultMaxTokens: envInt("DEFAULT_MAX_TOKENS", 2048),

		TokenCounter:  envOr("TOKEN_COUNTER", "tiktoken"),
		TokenEncoding: envOr("TOKEN_ENCODING", "cl100k_base"),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10485760
	}
	if cfg.DefaultMaxTokens <= 0 {
		cfg.DefaultMaxTokens = 2048
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PAGETRIM_API_KEY is required")
	}
	switch c.TokenCounter {
	case "tiktoken", "estimate":
	default:
		return fmt.Errorf("TOKEN_COUNTER must be tiktoken or estimate, got %q", c.TokenCounter)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
