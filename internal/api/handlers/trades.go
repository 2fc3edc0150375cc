package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type TradeHandler struct {
	analytics *services.AnalyticsService
}

func NewTradeHandler(analyticsService *services.AnalyticsService) *TradeHandler {
	return &TradeHandler{analytics: analyticsService}
}

// Analyze values both sides of a proposed trade and labels the outcome.
func (h *TradeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.analytics.AnalyzeTrade(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// History lists previously analyzed trades, newest first.
func (h *TradeHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.analytics.TradeHistory(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": records})
}
