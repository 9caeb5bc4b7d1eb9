package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/magda-voicer/internal/api"
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/database"
	"github.com/Conceptual-Machines/magda-voicer/internal/metrics"
	"github.com/Conceptual-Machines/magda-voicer/internal/theory"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	sentryFlushTimeout = 2 * time.Second
	releasePrefix      = "magda-voicer@"
)

// Run starts the HTTP API and blocks until the listener fails
func Run(cfg *config.Config, version string) error {
	if err := validateDefaults(cfg); err != nil {
		return err
	}

	flush := InitSentry(cfg, version)
	defer flush()

	db, err := OpenDatabase(cfg)
	if err != nil {
		sentry.CaptureException(err)
		return err
	}

	cw, err := metrics.NewClient(context.Background(), cfg.Environment, cfg.CloudWatchEnabled)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(db, cfg, version, cw)

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// validateDefaults rejects a DEFAULT_KEY or DEFAULT_TOP_NOTE no request could use
func validateDefaults(cfg *config.Config) error {
	if _, err := theory.ParseKey(cfg.DefaultKey); err != nil {
		return fmt.Errorf("invalid DEFAULT_KEY: %w", err)
	}
	if _, err := theory.ParseNote(cfg.DefaultTopNote); err != nil {
		return fmt.Errorf("invalid DEFAULT_TOP_NOTE: %w", err)
	}
	return nil
}

// InitSentry configures Sentry when a DSN is set. The returned func flushes
// pending events and is always safe to call.
func InitSentry(cfg *config.Config, version string) func() {
	if cfg.SentryDSN == "" {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          releasePrefix + version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		EnableLogs:       true,
		Debug:            !cfg.IsProduction(),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
			}
			return event
		},
	})
	if err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return func() {}
	}

	log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, version)
	return func() { sentry.Flush(sentryFlushTimeout) }
}

// OpenDatabase connects and migrates when DATABASE_URL is set.
// It returns a nil DB otherwise, which disables voicing history.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.HistoryEnabled() {
		log.Println("💾 Database not configured, voicing history disabled")
		return nil, nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrateOrClose(db); err != nil {
		return nil, err
	}

	log.Println("💾 Database connected, voicing history enabled")
	return db, nil
}

// migrateOrClose runs migrations and closes the pool if they fail
func migrateOrClose(db *gorm.DB) error {
	if err := database.Migrate(db); err != nil {
		if cerr := database.Close(db); cerr != nil {
			log.Printf("Failed to close database after migration error: %v", cerr)
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string, len(headers))
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
