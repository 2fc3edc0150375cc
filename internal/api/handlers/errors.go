package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

// respondError maps core and storage errors onto HTTP status codes. Analytics
// failures are categorical, never coerced to empty results: a zero value and
// "no data" must stay distinguishable to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidConfiguration),
		errors.Is(err, analytics.ErrInvalidTradeProposal),
		errors.Is(err, services.ErrDefaultRequiresSuccessor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, analytics.ErrInsufficientSample),
		errors.Is(err, analytics.ErrNotEvaluable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, analytics.ErrNoGamesOnDate),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
