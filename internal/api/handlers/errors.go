package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/magda-voicer/internal/logger"
	"github.com/Conceptual-Machines/magda-voicer/internal/services"
	"github.com/Conceptual-Machines/magda-voicer/internal/theory"
	"github.com/gin-gonic/gin"
)

// respondError maps caller mistakes to 400 and everything else to 500
func respondError(c *gin.Context, err error) {
	if theory.IsInputError(err) || errors.Is(err, services.ErrUnknownRhythm) ||
		errors.Is(err, services.ErrTimelineTooLong) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error("Voicing request failed", err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Internal server error",
		"request_id": c.GetString("request_id"),
	})
}
