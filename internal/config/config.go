// Package config loads server configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset. It is only fit for
// local development.
const DevJWTSecret = "gymparty-dev-secret-change-me"

const (
	BlobBackendLocal    = "local"
	BlobBackendSupabase = "supabase"
)

// Config is the full server configuration.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	DBPath     string `env:"DB_PATH" envDefault:"./data/gymparty.db"`
	StaticPath string `env:"STATIC_PATH"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	AttendanceTimezone string        `env:"ATTENDANCE_TIMEZONE" envDefault:"UTC"`
	PartyMaxMembers    int           `env:"PARTY_MAX_MEMBERS" envDefault:"5"`
	PartyTTL           time.Duration `env:"PARTY_TTL" envDefault:"24h"`

	BlobBackend       string `env:"BLOB_BACKEND" envDefault:"local"`
	BlobDir           string `env:"BLOB_DIR" envDefault:"./data/photos"`
	BlobPublicBaseURL string `env:"BLOB_PUBLIC_BASE_URL" envDefault:"/photos"`

	SupabaseProjectURL     string `env:"SUPABASE_PROJECT_URL"`
	SupabaseServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseBucket         string `env:"SUPABASE_BUCKET" envDefault:"checkins"`

	PhotoMaxDimension int `env:"PHOTO_MAX_DIMENSION" envDefault:"1280"`

	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	location *time.Location
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	loc, err := time.LoadLocation(c.AttendanceTimezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("ATTENDANCE_TIMEZONE: %w", err))
	}
	c.location = loc

	if c.PartyMaxMembers < 1 {
		errs = append(errs, fmt.Errorf("PARTY_MAX_MEMBERS must be at least 1, got %d", c.PartyMaxMembers))
	}
	if c.PartyTTL <= 0 {
		errs = append(errs, fmt.Errorf("PARTY_TTL must be positive, got %s", c.PartyTTL))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}

	switch c.BlobBackend {
	case BlobBackendLocal:
	case BlobBackendSupabase:
		if c.SupabaseProjectURL == "" || c.SupabaseServiceRoleKey == "" {
			errs = append(errs, errors.New("BLOB_BACKEND=supabase requires SUPABASE_PROJECT_URL and SUPABASE_SERVICE_ROLE_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("BLOB_BACKEND must be %q or %q, got %q", BlobBackendLocal, BlobBackendSupabase, c.BlobBackend))
	}

	if c.OTelEnabled && c.OTelEndpoint == "" {
		errs = append(errs, errors.New("OTEL_ENABLED requires OTEL_ENDPOINT"))
	}

	return errors.Join(errs...)
}

// Location is the attendance time zone. Valid after Validate.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// UsesDevSecret reports whether tokens are signed with DevJWTSecret.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == ""
}

// Secret returns the JWT signing secret.
func (c *Config) Secret() string {
	if c.JWTSecret == "" {
		return DevJWTSecret
	}
	return c.JWTSecret
}
