package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

type ScoringConfigHandler struct {
	configs   *services.ConfigService
	analytics *services.AnalyticsService
}

func NewScoringConfigHandler(configs *services.ConfigService, analyticsService *services.AnalyticsService) *ScoringConfigHandler {
	return &ScoringConfigHandler{configs: configs, analytics: analyticsService}
}

func (h *ScoringConfigHandler) List(c *gin.Context) {
	configs, err := h.configs.List(c.Query("owner_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

func (h *ScoringConfigHandler) Get(c *gin.Context) {
	config, err := h.configs.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *ScoringConfigHandler) Create(c *gin.Context) {
	var req models.CreateScoringConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.configs.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analytics.InvalidateMemo()
	c.JSON(http.StatusCreated, config)
}

func (h *ScoringConfigHandler) Update(c *gin.Context) {
	var req models.UpdateScoringConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.configs.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.analytics.InvalidateMemo()
	c.JSON(http.StatusOK, config)
}

// Delete removes a configuration. Deleting an owner's default while other
// configurations remain requires ?successor_id= naming the new default.
func (h *ScoringConfigHandler) Delete(c *gin.Context) {
	if err := h.configs.Delete(c.Param("id"), c.Query("successor_id")); err != nil {
		respondError(c, err)
		return
	}
	h.analytics.InvalidateMemo()
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
