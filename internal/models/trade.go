package models

import "time"

// TradeRecord is one analyzed trade persisted to the history log. The
// valuation itself is pure; storing the outcome is a service-layer concern.
type TradeRecord struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ConfigID       string    `json:"config_id" gorm:"index"`
	SideA          string    `json:"side_a" gorm:"not null"` // comma-joined player IDs
	SideB          string    `json:"side_b" gorm:"not null"`
	SideAValue     float64   `json:"side_a_value"`
	SideBValue     float64   `json:"side_b_value"`
	NetValue       float64   `json:"net_value"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

type AnalyzeTradeRequest struct {
	SideA               []string `json:"side_a" binding:"required"`
	SideB               []string `json:"side_b" binding:"required"`
	ConfigID            string   `json:"config_id"`
	OwnerID             string   `json:"owner_id"`
	Window              int      `json:"window"`
	WeightByConsistency bool     `json:"weight_by_consistency"`
}
