package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth; empty disables the bearer check.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Outline depth
	DefaultDepth int
	MaxDepth     int

	// Batch fan-out
	MaxConcurrentBuilds int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("SECTREE_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultDepth: envInt("DEFAULT_DEPTH", 2),
		MaxDepth:     envInt("MAX_DEPTH", 8),

		MaxConcurrentBuilds: envInt("MAX_CONCURRENT_BUILDS", 4),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultDepth <= 0 {
		cfg.DefaultDepth = 2
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 8
	}
	if cfg.MaxConcurrentBuilds <= 0 {
		cfg.MaxConcurrentBuilds = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DefaultDepth > c.MaxDepth {
		return fmt.Errorf("DEFAULT_DEPTH (%d) exceeds MAX_DEPTH (%d)", c.DefaultDepth, c.MaxDepth)
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
