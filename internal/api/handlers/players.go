package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type PlayerHandler struct {
	players   *services.PlayerService
	analytics *services.AnalyticsService
}

func NewPlayerHandler(players *services.PlayerService, analyticsService *services.AnalyticsService) *PlayerHandler {
	return &PlayerHandler{players: players, analytics: analyticsService}
}

func (h *PlayerHandler) Search(c *gin.Context) {
	results, err := h.players.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *PlayerHandler) Get(c *gin.Context) {
	player, err := h.players.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// FantasyLog returns the player's per-game fantasy points under the
// requested (or default) scoring configuration.
func (h *PlayerHandler) FantasyLog(c *gin.Context) {
	entries, err := h.analytics.FantasyLog(c.Param("id"), c.Query("owner_id"), c.Query("config_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player_id": c.Param("id"), "log": entries})
}

// Consistency grades the player's recent variability.
func (h *PlayerHandler) Consistency(c *gin.Context) {
	window, _ := strconv.Atoi(c.DefaultQuery("window", "14"))

	result, err := h.analytics.Consistency(c.Param("id"), c.Query("owner_id"), c.Query("config_id"), window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
