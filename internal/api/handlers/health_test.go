package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/magda-voicer/internal/metrics"
	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", NewHealthHandler(nil).HealthCheck)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "disabled", resp["database"])
}

func TestHistoryDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/history", NewHistoryHandler(services.NewHistoryService(nil)).Recent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsHandler(t *testing.T) {
	stats := metrics.NewVoicingStats()
	voicing := setupVoicingRouterWithStats(stats)
	postJSON(t, voicing, "/progressions", models.ProgressionRequest{
		Chords: []models.ChordRequest{{Chord: "2"}, {Chord: "5"}, {Chord: "1"}},
	})
	postJSON(t, voicing, "/voicings", map[string]string{"chord": "1x"})

	router := gin.New()
	router.GET("/metrics", NewMetricsHandler("1.2.3", testConfig(), services.NewHistoryService(nil), stats).GetMetrics)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
	assert.False(t, resp.History)
	assert.Equal(t, "B4", resp.Defaults.TopNote)
	assert.Contains(t, resp.Rhythms, "quarters")
	assert.Equal(t, int64(2), resp.Voicing.Requests)
	assert.Equal(t, int64(1), resp.Voicing.Failures)
	assert.Equal(t, int64(3), resp.Voicing.ChordsVoiced)
}
