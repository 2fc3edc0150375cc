package models

// WaiverRequest asks for ranked pickup recommendations for a league on a
// date. ExcludeTopN protects the best currently ranked players from being
// suggested as routine pickups.
type WaiverRequest struct {
	LeagueID    string   `json:"league_id" binding:"required"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	ConfigID    string   `json:"config_id"`
	OwnerID     string   `json:"owner_id"`
	Window      int      `json:"window"`
	ExcludeTopN int      `json:"exclude_top_n"`
	ExcludeIDs  []string `json:"exclude_ids"`
	Limit       int      `json:"limit"`
}
