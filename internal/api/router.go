package api

import (
	"github.com/Conceptual-Machines/magda-voicer/internal/api/handlers"
	"github.com/Conceptual-Machines/magda-voicer/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/logger"
	"github.com/Conceptual-Machines/magda-voicer/internal/metrics"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires middleware and routes. db and cw may be nil.
func SetupRouter(db *gorm.DB, cfg *config.Config, version string, cw *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(middleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(middleware.RequestTracking(cw))

	router.Use(middleware.CORS(cfg.CORSOrigins))

	history := services.NewHistoryService(db)
	stats := metrics.NewVoicingStats()

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg, history, stats)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware(cfg))
	{
		voicingHandler := handlers.NewVoicingHandler(cfg, history, cw, stats)
		v1.GET("/keys/:key/diatonic", voicingHandler.Diatonic)
		v1.POST("/voicings", voicingHandler.VoiceChord)
		v1.POST("/progressions", voicingHandler.VoiceProgression)
		v1.POST("/progressions/midi", voicingHandler.ExportMIDI)

		historyHandler := handlers.NewHistoryHandler(history)
		v1.GET("/history", historyHandler.Recent)
	}

	return router
}

func authMiddleware(cfg *config.Config) gin.HandlerFunc {
	switch {
	case cfg.IsGatewayMode():
		logger.Info("Auth mode: gateway (trusting X-User-* headers)", nil)
		return middleware.GatewayAuth()
	case cfg.IsJWTMode():
		logger.Info("Auth mode: jwt", nil)
		return middleware.JWTAuth(cfg.JWTSecret)
	default:
		logger.Info("Auth mode: none", nil)
		return middleware.NoAuth()
	}
}
