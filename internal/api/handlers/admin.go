package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/database"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type AdminHandler struct {
	provider  *services.StatsProviderClient
	snapshots *services.SnapshotService
	analytics *services.AnalyticsService
}

func NewAdminHandler(provider *services.StatsProviderClient, snapshots *services.SnapshotService, analyticsService *services.AnalyticsService) *AdminHandler {
	return &AdminHandler{provider: provider, snapshots: snapshots, analytics: analyticsService}
}

// Sync pulls one date's games and box scores from the stats provider and
// invalidates memoized analytics.
func (h *AdminHandler) Sync(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}

	result, err := h.provider.SyncGameDate(c.Request.Context(), database.GetDB(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analytics.InvalidateMemo()
	c.JSON(http.StatusOK, result)
}

// TakeSnapshot triggers an immediate value snapshot outside the daily
// schedule.
func (h *AdminHandler) TakeSnapshot(c *gin.Context) {
	if err := h.snapshots.TakeSnapshot(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "snapshot recorded"})
}

// Snapshots returns value history, optionally filtered by player and period.
func (h *AdminHandler) Snapshots(c *gin.Context) {
	history, err := h.snapshots.History(c.Query("player_id"), c.DefaultQuery("period", "month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ProviderStatus reports remaining provider quota for today.
func (h *AdminHandler) ProviderStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests_remaining": h.provider.RequestsRemaining()})
}
