package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/magda-voicer/internal/logger"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	history *services.HistoryService
}

func NewHistoryHandler(history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Recent returns the latest voiced chords, newest first
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := defaultHistoryPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > maxHistoryPageSize {
		limit = maxHistoryPageSize
	}

	logs, err := h.history.Recent(limit)
	if errors.Is(err, services.ErrHistoryDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Error("Failed to load voicing history", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": logs,
		"count": len(logs),
	})
}
