package models

import "time"

// PlayerValueSnapshot stores a player's daily fantasy value under the system
// default configuration, for historical trend charts.
type PlayerValueSnapshot struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SnapshotDate time.Time `json:"snapshot_date" gorm:"not null;uniqueIndex:idx_snapshot_player"`
	PlayerID     string    `json:"player_id" gorm:"not null;uniqueIndex:idx_snapshot_player"`
	ConfigID     string    `json:"config_id"`
	Value        float64   `json:"value"`
	GamesCounted int       `json:"games_counted"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValueHistoryResponse is the API response for snapshot history.
type ValueHistoryResponse struct {
	Snapshots []PlayerValueSnapshot `json:"snapshots"`
	Period    string                `json:"period"` // "week", "month", "season", "all"
}
