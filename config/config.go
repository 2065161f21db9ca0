package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultPageSize is the page size used by the main explore feed
	DefaultPageSize = 12
	// FeaturedPageSize is the smaller page size used by the daily/featured bootstrap
	FeaturedPageSize = 3
)

// Config holds all configuration for the client
type Config struct {
	// APIBaseURL is the base URL of the recipe API, including any path prefix
	APIBaseURL string

	// AIBackendURL is the base URL of the auxiliary AI-suggestion backend
	AIBackendURL string

	// GoogleClientID is the OAuth client id used to obtain the credential
	// submitted to POST /auth/google. Optional; google sign-in is disabled
	// when empty.
	GoogleClientID string

	// StateDir is where the local session store keeps its database
	StateDir string

	// PageSize is the number of recipes requested per explore page
	PageSize int

	// HTTPTimeout applies to every outbound API request
	HTTPTimeout time.Duration
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to development defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIBaseURL:     os.Getenv("FORKFUL_API_BASE_URL"),
		AIBackendURL:   os.Getenv("FORKFUL_BACKEND_URL"),
		GoogleClientID: os.Getenv("FORKFUL_GOOGLE_CLIENT_ID"),
		StateDir:       os.Getenv("FORKFUL_STATE_DIR"),
		PageSize:       DefaultPageSize,
		HTTPTimeout:    30 * time.Second,
	}

	if cfg.APIBaseURL == "" {
		if IsProduction() {
			return nil, fmt.Errorf("FORKFUL_API_BASE_URL is required in production")
		}
		cfg.APIBaseURL = "http://localhost:3000/api"
	}
	if cfg.AIBackendURL == "" {
		cfg.AIBackendURL = "http://localhost:5000"
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".forkful")
	}

	if v := os.Getenv("FORKFUL_PAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORKFUL_PAGE_SIZE %q: %w", v, err)
		}
		cfg.PageSize = size
	}
	if v := os.Getenv("FORKFUL_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORKFUL_HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
