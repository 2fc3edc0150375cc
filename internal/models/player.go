package models

import (
	"time"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
)

type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
)

type Player struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Team      string    `json:"team" gorm:"index"`
	Position  Position  `json:"position" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerGameStatLine is one player's box score for one game. Immutable once
// recorded; keyed by (player, game).
type PlayerGameStatLine struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerID   string    `json:"player_id" gorm:"not null;uniqueIndex:idx_player_game"`
	GameID     string    `json:"game_id" gorm:"not null;uniqueIndex:idx_player_game"`
	GameDate   time.Time `json:"game_date" gorm:"not null;index"`
	Opponent   string    `json:"opponent"`
	Points     float64   `json:"points"`
	Rebounds   float64   `json:"rebounds"`
	Assists    float64   `json:"assists"`
	Steals     float64   `json:"steals"`
	Blocks     float64   `json:"blocks"`
	ThreesMade float64   `json:"threes_made"`
	Turnovers  float64   `json:"turnovers"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatLine converts the row into the core's category mapping.
func (s *PlayerGameStatLine) StatLine() analytics.StatLine {
	return analytics.StatLine{
		analytics.CategoryPoints:     s.Points,
		analytics.CategoryRebounds:   s.Rebounds,
		analytics.CategoryAssists:    s.Assists,
		analytics.CategorySteals:     s.Steals,
		analytics.CategoryBlocks:     s.Blocks,
		analytics.CategoryThreesMade: s.ThreesMade,
		analytics.CategoryTurnovers:  s.Turnovers,
	}
}

// GameLine converts the row into the core's ranking input.
func (s *PlayerGameStatLine) GameLine() analytics.GameLine {
	return analytics.GameLine{
		GameID:   s.GameID,
		Date:     s.GameDate,
		Opponent: s.Opponent,
		Stats:    s.StatLine(),
	}
}

// FantasyLogEntry is one game of a player's fantasy-point log.
type FantasyLogEntry struct {
	GameID        string    `json:"game_id"`
	GameDate      time.Time `json:"game_date"`
	Opponent      string    `json:"opponent"`
	FantasyPoints float64   `json:"fantasy_points"`
}
