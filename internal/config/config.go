// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Public site identity
	BaseURL  string // canonical origin used in sitemaps and structured data
	SiteName string

	// Content store (headless, read-only)
	ContentAPIURL     string
	ContentProjectID  string
	ContentDataset    string
	ContentAPIVersion string
	ContentCDNURL     string

	// Valkey (Redis-compatible page cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// SMTP relay for lead notifications
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Sales mailbox receiving lead submissions.
	SalesEmail string

	// Cloudflare Turnstile (bot mitigation). Empty secret disables verification.
	TurnstileSiteKey   string
	TurnstileSecretKey string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		BaseURL:  strings.TrimRight(envOrDefault("BASE_URL", "http://localhost:8080"), "/"),
		SiteName: envOrDefault("SITE_NAME", "Steelgate Machinery"),

		ContentAPIURL:     strings.TrimRight(envOrDefault("CONTENT_API_URL", "https://api.sanity.io"), "/"),
		ContentProjectID:  os.Getenv("CONTENT_PROJECT_ID"),
		ContentDataset:    envOrDefault("CONTENT_DATASET", "production"),
		ContentAPIVersion: envOrDefault("CONTENT_API_VERSION", "2023-12-31"),
		ContentCDNURL:     strings.TrimRight(envOrDefault("CONTENT_CDN_URL", "https://cdn.sanity.io"), "/"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: envOrDefault("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),

		SalesEmail: envOrDefault("SALES_EMAIL", "sales@steelgatemachinery.com"),

		TurnstileSiteKey:   os.Getenv("TURNSTILE_SITE_KEY"),
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
	}

	if cfg.Env == "production" {
		if cfg.ContentProjectID == "" {
			return nil, fmt.Errorf("CONTENT_PROJECT_ID must be set in production")
		}
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST must be set in production")
		}
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
