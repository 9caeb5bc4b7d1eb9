package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/magda-voicer/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/logger"
	"github.com/Conceptual-Machines/magda-voicer/internal/metrics"
	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/gin-gonic/gin"
)

// Global metrics instance
var sentryMetrics = metrics.NewSentryMetrics()

type VoicingHandler struct {
	cfg          *config.Config
	progressions *services.ProgressionService
	history      *services.HistoryService
	cw           *metrics.Client
	stats        *metrics.VoicingStats
}

func NewVoicingHandler(cfg *config.Config, history *services.HistoryService, cw *metrics.Client, stats *metrics.VoicingStats) *VoicingHandler {
	return &VoicingHandler{
		cfg:          cfg,
		progressions: services.NewProgressionService(cfg.DefaultKey, cfg.DefaultTopNote),
		history:      history,
		cw:           cw,
		stats:        stats,
	}
}

// Diatonic lists the seven diatonic chords of the key in the path
func (h *VoicingHandler) Diatonic(c *gin.Context) {
	overview, err := h.progressions.Diatonic(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// VoiceChord voices a single degree symbol
func (h *VoicingHandler) VoiceChord(c *gin.Context) {
	var req models.VoicingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	voiced, err := h.progressions.VoiceChord(req.Key, models.ChordRequest{
		Chord:   req.Chord,
		TopNote: req.TopNote,
	})
	duration := time.Since(start)
	key := h.keyName(req.Key)
	h.recordMetrics(c, key, 1, duration, err == nil)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.LogVoicing(c.Request.Context(), key, voiced.Symbol, voiced.Notes, duration, logger.WithContext(c))
	h.recordHistory(c, key, []models.VoicedChord{voiced})

	c.JSON(http.StatusOK, gin.H{
		"key":      key,
		"chord":    voiced.Chord,
		"symbol":   voiced.Symbol,
		"root":     voiced.Root,
		"quality":  voiced.Quality,
		"top_note": voiced.TopNote,
		"notes":    voiced.Notes,
		"midi":     voiced.MIDI,
	})
}

// VoiceProgression voices every chord and lays them out as note events
func (h *VoicingHandler) VoiceProgression(c *gin.Context) {
	req, progression, ok := h.voiceProgression(c)
	if !ok {
		return
	}

	events, chordEvents, err := services.ToNoteEvents(progression, h.eventOptions(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProgressionResponse{
		Progression: progression,
		Events:      events,
		ChordEvents: chordEvents,
	})
}

// ExportMIDI returns the voiced progression as a Standard MIDI File
func (h *VoicingHandler) ExportMIDI(c *gin.Context) {
	req, progression, ok := h.voiceProgression(c)
	if !ok {
		return
	}

	tempo := req.TempoBPM
	if tempo <= 0 {
		tempo = h.cfg.TempoBPM
	}

	events, _, err := services.ToNoteEvents(progression, h.eventOptions(req))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteMIDI(&buf, events, tempo, progression.Key); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", midiFilename))
	c.Data(http.StatusOK, midiContentType, buf.Bytes())
}

func (h *VoicingHandler) voiceProgression(c *gin.Context) (models.ProgressionRequest, models.Progression, bool) {
	var req models.ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, models.Progression{}, false
	}
	if _, err := services.LookupRhythm(req.Rhythm); err != nil {
		respondError(c, err)
		return req, models.Progression{}, false
	}

	start := time.Now()
	progression, err := h.progressions.VoiceProgression(req.Key, req.Chords)
	duration := time.Since(start)
	key := h.keyName(req.Key)
	h.recordMetrics(c, key, len(req.Chords), duration, err == nil)
	if err != nil {
		respondError(c, err)
		return req, models.Progression{}, false
	}

	fields := logger.WithContext(c)
	fields["chord_count"] = len(progression.Chords)
	logger.Info("Progression voiced", fields)
	h.recordHistory(c, progression.Key, progression.Chords)

	return req, progression, true
}

func (h *VoicingHandler) eventOptions(req models.ProgressionRequest) services.EventOptions {
	opts := services.EventOptions{
		BeatsPerChord: req.BeatsPerChord,
		Velocity:      req.Velocity,
		Rhythm:        req.Rhythm,
		Arpeggiate:    req.Arpeggiate,
	}
	if opts.BeatsPerChord <= 0 {
		opts.BeatsPerChord = h.cfg.BeatsPerChord
	}
	if opts.Velocity <= 0 {
		opts.Velocity = h.cfg.Velocity
	}
	return opts
}

func (h *VoicingHandler) keyName(key string) string {
	if key == "" {
		return h.cfg.DefaultKey
	}
	return key
}

func (h *VoicingHandler) recordMetrics(c *gin.Context, key string, chords int, duration time.Duration, success bool) {
	sentryMetrics.RecordVoicing(c.Request.Context(), key, chords, duration, success)
	h.cw.RecordVoicing(chords, success)
	h.stats.Record(chords, duration, success)
}

// recordHistory never fails the request; a lost history row is only logged
func (h *VoicingHandler) recordHistory(c *gin.Context, key string, chords []models.VoicedChord) {
	userID, _ := middleware.UserID(c)
	if err := h.history.Record(c.GetString("request_id"), userID, key, chords); err != nil {
		fields := logger.WithContext(c)
		fields["error"] = err.Error()
		logger.Warn("Failed to record voicing history", fields)
	}
}
