// Package config centralizes environment configuration so no other package
// reads env vars directly. Values are loaded once at startup and passed to
// services via dependency injection.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// TokenTTL is the validity window of issued auth tokens. Matched by the
// cookie max-age set by the auth handler.
const TokenTTL = 7 * 24 * time.Hour

type Config struct {
	// Env is "development" or "production".
	Env string

	// HTTPAddr is the listen address (default ":8080").
	HTTPAddr string

	// DatabaseURL is the Postgres DSN.
	DatabaseURL string

	// JWTSecret signs auth tokens. Required; startup fails without it.
	JWTSecret string

	// JWTIssuer is the iss claim on issued tokens. Optional.
	JWTIssuer string

	// CookieDomain scopes the auth cookie. Empty means host-only.
	CookieDomain string

	// SecureCookies marks the auth cookie Secure; disable for local HTTP.
	SecureCookies bool

	// AllowedOrigins is the CORS allowlist for the browser frontend.
	AllowedOrigins []string

	// GeminiAPIKey enables the hosted generator. Empty means mock-only.
	GeminiAPIKey string

	// GeminiModel is the generative model name.
	GeminiModel string

	// ResendAPIKey enables outbound contact email. Empty disables sending.
	ResendAPIKey string

	// ContactFrom and ContactTo are the sender and recipient of contact
	// form submissions.
	ContactFrom string
	ContactTo   string
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load reads configuration from the environment, after loading a .env file
// when one is present. The only hard requirement is the signing secret; the
// process must refuse to start rather than issue unsigned tokens.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		CookieDomain:   os.Getenv("COOKIE_DOMAIN"),
		SecureCookies:  os.Getenv("COOKIE_SECURE") != "false",
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		ContactFrom:    os.Getenv("CONTACT_FROM"),
		ContactTo:      os.Getenv("CONTACT_TO"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
