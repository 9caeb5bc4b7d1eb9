package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Persistence (optional, enables voicing history)
	DatabaseURL string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	CloudWatchEnabled bool   // Force CloudWatch metrics outside production

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	// - "jwt": Validate HS256 bearer tokens signed with JWTSecret
	AuthMode  string
	JWTSecret string

	// CORS
	CORSOrigins []string

	// Voicing defaults
	DefaultKey     string
	DefaultTopNote string

	// Note event / MIDI export defaults
	TempoBPM      int
	BeatsPerChord float64
	Velocity      int
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		CloudWatchEnabled: getEnv("CLOUDWATCH_ENABLED", "false") == "true",
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
		JWTSecret:         getEnv("JWT_SECRET", ""),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		DefaultKey:        getEnv("DEFAULT_KEY", "C"),
		DefaultTopNote:    getEnv("DEFAULT_TOP_NOTE", "B4"),
		TempoBPM:          getEnvInt("TEMPO_BPM", 60),
		BeatsPerChord:     getEnvFloat("BEATS_PER_CHORD", 1.0),
		Velocity:          getEnvInt("VELOCITY", 100),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsJWTMode returns true if bearer tokens are validated locally
func (c *Config) IsJWTMode() bool {
	return c.AuthMode == "jwt"
}

// IsProduction reports whether ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HistoryEnabled reports whether a database is configured
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}
