// ABOUTME: Configuration management for the feed builder with environment variable support
// ABOUTME: Defines build, HTTP and logging settings plus optional .env loading

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPageFallbackEntryLimit caps entries per source when page fallback is on
const DefaultPageFallbackEntryLimit = 12

// Config holds all application configuration
type Config struct {
	// Build contains pipeline settings
	Build BuildConfig

	// HTTP contains outbound request settings
	HTTP HTTPConfig

	// Log contains logger settings
	Log LogConfig

	// SourcesFile is a YAML catalog path; empty uses the built-in catalog
	SourcesFile string
}

// BuildConfig holds pipeline configuration
type BuildConfig struct {
	// OutputDir receives one JSON file per category
	OutputDir string

	// Workers bounds concurrent sources within a category
	Workers int

	// PerSourceLimit caps entries per feed. -1 picks a default from PageFallback.
	PerSourceLimit int

	// PageFallback enables fetching article pages for og:image
	PageFallback bool
}

// HTTPConfig holds outbound request configuration
type HTTPConfig struct {
	// Timeout bounds a feed fetch
	Timeout time.Duration

	// PageTimeout bounds an article page fetch
	PageTimeout time.Duration

	// PolitenessDelay spaces requests to the same host
	PolitenessDelay time.Duration

	// MaxBodyBytes caps a response body
	MaxBodyBytes int64

	// UserAgent is sent on every request; empty uses the client default
	UserAgent string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadDotEnv loads variables from a .env file without overriding the environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Values that are set but cannot be parsed are reported as errors.
func LoadFromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		Build: BuildConfig{
			OutputDir:      getEnvOrDefault("STREAMIC_OUTPUT_DIR", "data"),
			Workers:        getEnvAsInt("STREAMIC_WORKERS", 4, &errs),
			PerSourceLimit: getEnvAsInt("STREAMIC_PER_SOURCE_LIMIT", -1, &errs),
			PageFallback:   getEnvAsBool("STREAMIC_PAGE_FALLBACK", false, &errs),
		},
		HTTP: HTTPConfig{
			Timeout:         getEnvAsDuration("STREAMIC_TIMEOUT", 20*time.Second, &errs),
			PageTimeout:     getEnvAsDuration("STREAMIC_PAGE_TIMEOUT", 10*time.Second, &errs),
			PolitenessDelay: getEnvAsDuration("STREAMIC_POLITENESS_DELAY", 300*time.Millisecond, &errs),
			MaxBodyBytes:    int64(getEnvAsInt("STREAMIC_MAX_BODY_BYTES", 10*1024*1024, &errs)),
			UserAgent:       getEnvOrDefault("STREAMIC_USER_AGENT", ""),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		SourcesFile: getEnvOrDefault("STREAMIC_SOURCES_FILE", ""),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EntryLimit returns the per-source entry cap to use, 0 meaning unlimited
func (c *Config) EntryLimit() int {
	if c.Build.PerSourceLimit >= 0 {
		return c.Build.PerSourceLimit
	}
	if c.Build.PageFallback {
		return DefaultPageFallbackEntryLimit
	}
	return 0
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as int or a default
func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, value))
		return defaultValue
	}
	return n
}

// getEnvAsBool returns the environment variable as bool or a default
func getEnvAsBool(key string, defaultValue bool, errs *[]error) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a boolean", key, value))
		return defaultValue
	}
	return b
}

// getEnvAsDuration returns the environment variable as a duration or a default
func getEnvAsDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a duration", key, value))
		return defaultValue
	}
	return d
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Build.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	if c.Build.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if c.Build.PerSourceLimit < -1 {
		return errors.New("per-source limit cannot be negative")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if c.Build.PageFallback && c.HTTP.PageTimeout <= 0 {
		return errors.New("page timeout must be positive when page fallback is enabled")
	}

	if c.HTTP.PolitenessDelay < 0 {
		return errors.New("politeness delay cannot be negative")
	}

	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
