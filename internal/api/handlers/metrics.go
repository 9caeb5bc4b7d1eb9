package handlers

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/metrics"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/gin-gonic/gin"
)

// MetricsHandler reports voicing counters and the defaults requests fall back to
type MetricsHandler struct {
	startTime time.Time
	version   string
	cfg       *config.Config
	history   *services.HistoryService
	stats     *metrics.VoicingStats
}

func NewMetricsHandler(version string, cfg *config.Config, history *services.HistoryService, stats *metrics.VoicingStats) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		cfg:       cfg,
		history:   history,
		stats:     stats,
	}
}

type MetricsResponse struct {
	Status    string                  `json:"status"`
	Version   string                  `json:"version"`
	Uptime    string                  `json:"uptime"`
	StartTime string                  `json:"start_time"`
	Voicing   metrics.VoicingSnapshot `json:"voicing"`
	Defaults  VoicingDefaults         `json:"defaults"`
	AuthMode  string                  `json:"auth_mode"`
	History   bool                    `json:"history"`
	Rhythms   []string                `json:"rhythms"`
}

// VoicingDefaults are applied when a request leaves the field out
type VoicingDefaults struct {
	Key           string  `json:"key"`
	TopNote       string  `json:"top_note"`
	TempoBPM      int     `json:"tempo_bpm"`
	BeatsPerChord float64 `json:"beats_per_chord"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, MetricsResponse{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		Voicing:   h.stats.Snapshot(),
		Defaults: VoicingDefaults{
			Key:           h.cfg.DefaultKey,
			TopNote:       h.cfg.DefaultTopNote,
			TempoBPM:      h.cfg.TempoBPM,
			BeatsPerChord: h.cfg.BeatsPerChord,
		},
		AuthMode: h.cfg.AuthMode,
		History:  h.history.Enabled(),
		Rhythms:  services.RhythmNames(),
	})
}
