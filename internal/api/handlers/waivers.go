package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type WaiverHandler struct {
	analytics *services.AnalyticsService
}

func NewWaiverHandler(analyticsService *services.AnalyticsService) *WaiverHandler {
	return &WaiverHandler{analytics: analyticsService}
}

// Recommendations returns ranked waiver-wire pickups for a league and date.
// A date with no scheduled games is a 404; a date where every candidate is
// excluded is an empty 200.
func (h *WaiverHandler) Recommendations(c *gin.Context) {
	var req models.WaiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := h.analytics.Waivers(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "recommendations": recs})
}
