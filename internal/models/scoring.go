package models

import (
	"time"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
)

// SystemOwnerID owns the seeded league-default scoring configurations.
const SystemOwnerID = "system"

// ScoringConfiguration is a named multiplier set owned by one user. At most
// one configuration per owner carries IsDefault; the invariant is enforced in
// ConfigService, not here.
type ScoringConfiguration struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	OwnerID    string    `json:"owner_id" gorm:"not null;index"`
	Name       string    `json:"name" gorm:"not null"`
	IsDefault  bool      `json:"is_default" gorm:"index"`
	Points     float64   `json:"points"`
	Rebounds   float64   `json:"rebounds"`
	Assists    float64   `json:"assists"`
	Steals     float64   `json:"steals"`
	Blocks     float64   `json:"blocks"`
	ThreesMade float64   `json:"threes_made"`
	Turnovers  float64   `json:"turnovers"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Weights converts the row into the core's weight mapping.
func (c *ScoringConfiguration) Weights() analytics.ScoringWeights {
	return analytics.ScoringWeights{
		analytics.CategoryPoints:     c.Points,
		analytics.CategoryRebounds:   c.Rebounds,
		analytics.CategoryAssists:    c.Assists,
		analytics.CategorySteals:     c.Steals,
		analytics.CategoryBlocks:     c.Blocks,
		analytics.CategoryThreesMade: c.ThreesMade,
		analytics.CategoryTurnovers:  c.Turnovers,
	}
}

// Validate checks the multipliers through the core's rules.
func (c *ScoringConfiguration) Validate() error {
	return analytics.ValidateWeights(c.Weights())
}

type CreateScoringConfigRequest struct {
	OwnerID    string  `json:"owner_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	IsDefault  bool    `json:"is_default"`
	Points     float64 `json:"points"`
	Rebounds   float64 `json:"rebounds"`
	Assists    float64 `json:"assists"`
	Steals     float64 `json:"steals"`
	Blocks     float64 `json:"blocks"`
	ThreesMade float64 `json:"threes_made"`
	Turnovers  float64 `json:"turnovers"`
}

type UpdateScoringConfigRequest struct {
	Name       *string  `json:"name"`
	IsDefault  *bool    `json:"is_default"`
	Points     *float64 `json:"points"`
	Rebounds   *float64 `json:"rebounds"`
	Assists    *float64 `json:"assists"`
	Steals     *float64 `json:"steals"`
	Blocks     *float64 `json:"blocks"`
	ThreesMade *float64 `json:"threes_made"`
	Turnovers  *float64 `json:"turnovers"`
}
