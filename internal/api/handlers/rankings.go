package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type RankingHandler struct {
	analytics *services.AnalyticsService
}

func NewRankingHandler(analyticsService *services.AnalyticsService) *RankingHandler {
	return &RankingHandler{analytics: analyticsService}
}

// Rankings returns the ordered player ranking for the requested metric.
// Players without eligible games are listed under insufficient_data rather
// than ranked with a sentinel value.
func (h *RankingHandler) Rankings(c *gin.Context) {
	window, _ := strconv.Atoi(c.DefaultQuery("window", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	ranking, config, err := h.analytics.Rankings(services.RankingsRequest{
		OwnerID:  c.Query("owner_id"),
		ConfigID: c.Query("config_id"),
		Metric:   analytics.Metric(c.DefaultQuery("metric", string(analytics.MetricAverage))),
		Window:   window,
		Position: c.Query("position"),
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config_id":         config.ID,
		"entries":           ranking.Entries,
		"insufficient_data": ranking.InsufficientData,
	})
}

// HotPlayers returns players whose recent average significantly exceeds
// their baseline, hottest first.
func (h *RankingHandler) HotPlayers(c *gin.Context) {
	recent, _ := strconv.Atoi(c.DefaultQuery("recent", "0"))
	baseline, _ := strconv.Atoi(c.DefaultQuery("baseline", "0"))

	entries, err := h.analytics.HotPlayers(c.Query("owner_id"), c.Query("config_id"), recent, baseline)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hot_players": entries})
}
