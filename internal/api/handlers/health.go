package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-voicer/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API.
// The service stays healthy without a database; history is just disabled.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	status := http.StatusOK
	overall := "healthy"

	if h.db != nil {
		if err := database.Ping(h.db); err != nil {
			dbStatus = "unreachable"
			status = http.StatusServiceUnavailable
			overall = "degraded"
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
	})
}
