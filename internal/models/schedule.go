package models

import "time"

// Game is one scheduled league game.
type Game struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	GameDate  time.Time `json:"game_date" gorm:"not null;index"`
	HomeTeam  string    `json:"home_team" gorm:"not null"`
	AwayTeam  string    `json:"away_team" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamDefense holds a team's defensive strength rating for the season. Below
// league average means easier to score against.
type TeamDefense struct {
	Team            string    `json:"team" gorm:"primaryKey"`
	Season          string    `json:"season" gorm:"primaryKey"`
	DefensiveRating float64   `json:"defensive_rating"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RosterEntry records which league member owns a player. Players without an
// entry for a league are on the waiver wire.
type RosterEntry struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	LeagueID string `json:"league_id" gorm:"not null;uniqueIndex:idx_league_player"`
	PlayerID string `json:"player_id" gorm:"not null;uniqueIndex:idx_league_player"`
	OwnerID  string `json:"owner_id" gorm:"not null;index"`
}
