package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Dataset source. DatasetURL takes precedence when set; otherwise the
	// dataset is read from DatasetPath.
	DatasetPath string
	DatasetURL  string

	// Extraction service
	ExtractorURL string

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		DatasetPath: envOr("DATASET_PATH", "data/topics.json"),
		DatasetURL:  os.Getenv("DATASET_URL"),

		ExtractorURL: envOr("EXTRACTOR_URL", "http://localhost:8000"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DatasetPath == "" && c.DatasetURL == "" {
		return fmt.Errorf("DATASET_PATH or DATASET_URL is required")
	}
	if c.ExtractorURL == "" {
		return fmt.Errorf("EXTRACTOR_URL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
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
