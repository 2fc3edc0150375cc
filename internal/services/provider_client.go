package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/metrics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

const (
	providerTimeout = 10 * time.Second
	// providerRPS caps request throughput against the provider; the daily
	// quota is tracked separately.
	providerRPS   = 5
	providerBurst = 10
)

// StatsProviderClient pulls box scores, schedules and defensive ratings from
// the external stats provider. Requests are throttled by a token bucket and
// a daily quota.
type StatsProviderClient struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	dailyLimit int
	logger     zerolog.Logger

	mu             sync.Mutex
	requestsToday  int
	lastRequestDay time.Time
}

func NewStatsProviderClient(baseURL, apiKey string, dailyLimit int, logger zerolog.Logger) *StatsProviderClient {
	if dailyLimit <= 0 {
		dailyLimit = 500
	}
	return &StatsProviderClient{
		client:     &http.Client{Timeout: providerTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(providerRPS, providerBurst),
		dailyLimit: dailyLimit,
		logger:     logger,
	}
}

// providerBoxScore is one player's box score row in the provider payload.
type providerBoxScore struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Position   string  `json:"position"`
	GameID     string  `json:"game_id"`
	Opponent   string  `json:"opponent"`
	Points     float64 `json:"points"`
	Rebounds   float64 `json:"rebounds"`
	Assists    float64 `json:"assists"`
	Steals     float64 `json:"steals"`
	Blocks     float64 `json:"blocks"`
	ThreesMade float64 `json:"threes_made"`
	Turnovers  float64 `json:"turnovers"`
}

type providerGame struct {
	GameID   string `json:"game_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

type providerDefense struct {
	Team            string  `json:"team"`
	Season          string  `json:"season"`
	DefensiveRating float64 `json:"defensive_rating"`
}

type providerDayResponse struct {
	Games     []providerGame     `json:"games"`
	BoxScores []providerBoxScore `json:"box_scores"`
	Defense   []providerDefense  `json:"defense"`
}

// SyncResult summarizes one sync run.
type SyncResult struct {
	Date            string `json:"date"`
	GamesUpserted   int    `json:"games_upserted"`
	LinesUpserted   int    `json:"lines_upserted"`
	PlayersUpserted int    `json:"players_upserted"`
}

func (c *StatsProviderClient) checkQuota() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if c.lastRequestDay.Before(today) {
		c.requestsToday = 0
		c.lastRequestDay = today
	}
	if c.requestsToday >= c.dailyLimit {
		return false
	}
	c.requestsToday++
	metrics.ProviderQuotaRemaining.Set(float64(c.dailyLimit - c.requestsToday))
	return true
}

func (c *StatsProviderClient) fetchDay(ctx context.Context, date string) (*providerDayResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("stats provider not configured")
	}
	if !c.checkQuota() {
		return nil, fmt.Errorf("stats provider daily quota exceeded")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("date", date)
	reqURL := fmt.Sprintf("%s/v1/league/day?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	metrics.ProviderRequestsTotal.Inc()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload providerDayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return &payload, nil
}

// SyncGameDate pulls one date's schedule, box scores and defensive ratings
// into the database. Stat lines are keyed by (player, game) and never
// modified once written; re-syncing a date is a no-op for existing rows.
func (c *StatsProviderClient) SyncGameDate(ctx context.Context, db *gorm.DB, date string) (*SyncResult, error) {
	gameDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	payload, err := c.fetchDay(ctx, date)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Date: date}
	now := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, g := range payload.Games {
			game := models.Game{
				ID:        g.GameID,
				GameDate:  gameDate,
				HomeTeam:  g.HomeTeam,
				AwayTeam:  g.AwayTeam,
				CreatedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&game).Error; err != nil {
				return err
			}
			result.GamesUpserted++
		}

		for _, box := range payload.BoxScores {
			player := models.Player{
				ID:        box.PlayerID,
				Name:      box.PlayerName,
				Team:      box.Team,
				Position:  models.Position(box.Position),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "team", "position", "updated_at"}),
			}).Create(&player).Error; err != nil {
				return err
			}
			result.PlayersUpserted++

			line := models.PlayerGameStatLine{
				PlayerID:   box.PlayerID,
				GameID:     box.GameID,
				GameDate:   gameDate,
				Opponent:   box.Opponent,
				Points:     box.Points,
				Rebounds:   box.Rebounds,
				Assists:    box.Assists,
				Steals:     box.Steals,
				Blocks:     box.Blocks,
				ThreesMade: box.ThreesMade,
				Turnovers:  box.Turnovers,
				CreatedAt:  now,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&line).Error; err != nil {
				return err
			}
			result.LinesUpserted++
		}

		for _, d := range payload.Defense {
			defense := models.TeamDefense{
				Team:            d.Team,
				Season:          d.Season,
				DefensiveRating: d.DefensiveRating,
				UpdatedAt:       now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "team"}, {Name: "season"}},
				DoUpdates: clause.AssignmentColumns([]string{"defensive_rating", "updated_at"}),
			}).Create(&defense).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StatLinesSyncedTotal.Add(float64(result.LinesUpserted))
	c.logger.Info().
		Str("date", date).
		Int("games", result.GamesUpserted).
		Int("lines", result.LinesUpserted).
		Msg("game date synced")
	return result, nil
}

// RequestsRemaining reports the provider quota left today.
func (c *StatsProviderClient) RequestsRemaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if c.lastRequestDay.Before(today) {
		return c.dailyLimit
	}
	remaining := c.dailyLimit - c.requestsToday
	if remaining < 0 {
		return 0
	}
	return remaining
}
