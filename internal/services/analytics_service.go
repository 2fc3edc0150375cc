package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/metrics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

const (
	// defaultWindow is the game window used when a request does not supply
	// one.
	defaultWindow = 14

	// hotRecentWindow / hotBaselineWindow are the default comparison windows
	// for trend detection.
	hotRecentWindow   = 5
	hotBaselineWindow = 30

	// computeWorkers bounds the fan-out for per-player computations.
	computeWorkers = 8
)

// AnalyticsService binds persistence to the pure analytics core: it loads
// stat lines and configurations, resolves the effective scoring
// configuration, and memoizes ranking computations.
type AnalyticsService struct {
	db      *gorm.DB
	configs *ConfigService
	memo    *analytics.Memo
	logger  zerolog.Logger
}

func NewAnalyticsService(db *gorm.DB, configs *ConfigService, memoSize int, logger zerolog.Logger) (*AnalyticsService, error) {
	memo, err := analytics.NewMemo(memoSize)
	if err != nil {
		return nil, err
	}
	return &AnalyticsService{db: db, configs: configs, memo: memo, logger: logger}, nil
}

// InvalidateMemo drops cached computations. Called after a stat sync or
// configuration change so a cached result is never stale.
func (s *AnalyticsService) InvalidateMemo() {
	s.memo.Invalidate()
}

// loadPlayerStats loads game logs for the given players, or for every player
// when ids is empty. Results are ordered by player ID for determinism.
func (s *AnalyticsService) loadPlayerStats(ids []string) ([]analytics.PlayerStats, error) {
	var players []models.Player
	query := s.db.Order("id ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}

	var lines []models.PlayerGameStatLine
	lineQuery := s.db.Order("game_date ASC, game_id ASC")
	if len(ids) > 0 {
		lineQuery = lineQuery.Where("player_id IN ?", ids)
	}
	if err := lineQuery.Find(&lines).Error; err != nil {
		return nil, err
	}

	byPlayer := make(map[string][]analytics.GameLine, len(players))
	for i := range lines {
		byPlayer[lines[i].PlayerID] = append(byPlayer[lines[i].PlayerID], lines[i].GameLine())
	}

	stats := make([]analytics.PlayerStats, 0, len(players))
	for _, p := range players {
		stats = append(stats, analytics.PlayerStats{
			PlayerID: p.ID,
			Position: string(p.Position),
			Lines:    byPlayer[p.ID],
		})
	}
	return stats, nil
}

// RankingsRequest selects metric, window and filters for a ranking.
type RankingsRequest struct {
	OwnerID  string
	ConfigID string
	Metric   analytics.Metric
	Window   int
	Position string
	Limit    int
}

// Rankings computes the player ranking under the effective configuration.
// Identical concurrent requests share one computation through the memo.
func (s *AnalyticsService) Rankings(req RankingsRequest) (analytics.Ranking, *models.ScoringConfiguration, error) {
	config, err := s.configs.Effective(req.OwnerID, req.ConfigID)
	if err != nil {
		return analytics.Ranking{}, nil, err
	}
	if req.Metric == "" {
		req.Metric = analytics.MetricAverage
	}

	stats, err := s.loadPlayerStats(nil)
	if err != nil {
		return analytics.Ranking{}, nil, err
	}

	playerIDs := make([]string, len(stats))
	for i, p := range stats {
		playerIDs[i] = p.PlayerID
	}
	key := analytics.MemoKey(playerIDs,
		"rankings",
		config.ID,
		strconv.FormatInt(config.UpdatedAt.UnixNano(), 10),
		string(req.Metric),
		strconv.Itoa(req.Window),
		req.Position,
		strconv.Itoa(req.Limit),
	)

	start := time.Now()
	value, hit, err := s.memo.Do(key, func() (any, error) {
		return analytics.Rank(stats, config.Weights(), analytics.RankOptions{
			Metric:   req.Metric,
			Window:   req.Window,
			Position: req.Position,
			Limit:    req.Limit,
		})
	})
	if err != nil {
		return analytics.Ranking{}, nil, err
	}
	if hit {
		metrics.MemoHitsTotal.Inc()
	} else {
		metrics.MemoMissesTotal.Inc()
		metrics.ComputationDuration.WithLabelValues("rankings").Observe(time.Since(start).Seconds())
	}

	return value.(analytics.Ranking), config, nil
}

// FantasyLog returns a player's per-game fantasy points under the effective
// configuration, newest game last.
func (s *AnalyticsService) FantasyLog(playerID, ownerID, configID string) ([]models.FantasyLogEntry, error) {
	config, err := s.configs.Effective(ownerID, configID)
	if err != nil {
		return nil, err
	}

	var lines []models.PlayerGameStatLine
	if err := s.db.Where("player_id = ?", playerID).
		Order("game_date ASC, game_id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}

	weights := config.Weights()
	entries := make([]models.FantasyLogEntry, 0, len(lines))
	for i := range lines {
		pts, err := analytics.FantasyPoints(lines[i].StatLine(), weights)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.FantasyLogEntry{
			GameID:        lines[i].GameID,
			GameDate:      lines[i].GameDate,
			Opponent:      lines[i].Opponent,
			FantasyPoints: pts,
		})
	}
	return entries, nil
}

// ConsistencyResponse pairs a player with their consistency result.
type ConsistencyResponse struct {
	PlayerID string                      `json:"player_id"`
	Window   int                         `json:"window"`
	Result   analytics.ConsistencyResult `json:"result"`
}

// Consistency grades a player's variability over the last window games.
func (s *AnalyticsService) Consistency(playerID, ownerID, configID string, window int) (*ConsistencyResponse, error) {
	if window <= 0 {
		window = defaultWindow
	}
	config, err := s.configs.Effective(ownerID, configID)
	if err != nil {
		return nil, err
	}

	series, err := s.fantasySeries(playerID, config, window)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := analytics.Consistency(series)
	if err != nil {
		return nil, err
	}
	metrics.ComputationDuration.WithLabelValues("consistency").Observe(time.Since(start).Seconds())

	return &ConsistencyResponse{
		PlayerID: playerID,
		Window:   window,
		Result:   result,
	}, nil
}

// HotPlayerEntry is one flagged or evaluated player in a hot-player scan.
type HotPlayerEntry struct {
	PlayerID string                    `json:"player_id"`
	Name     string                    `json:"name"`
	Result   analytics.HotPlayerResult `json:"result"`
}

// HotPlayers scans every player with enough history and returns those
// trending above baseline, hottest first. Players whose baseline cannot be
// evaluated are skipped rather than flagged.
func (s *AnalyticsService) HotPlayers(ownerID, configID string, recentWindow, baselineWindow int) ([]HotPlayerEntry, error) {
	if recentWindow <= 0 {
		recentWindow = hotRecentWindow
	}
	if baselineWindow <= 0 {
		baselineWindow = hotBaselineWindow
	}
	config, err := s.configs.Effective(ownerID, configID)
	if err != nil {
		return nil, err
	}

	stats, err := s.loadPlayerStats(nil)
	if err != nil {
		return nil, err
	}
	names, err := s.playerNames()
	if err != nil {
		return nil, err
	}

	weights := config.Weights()
	opts := analytics.DefaultHotOptions()

	start := time.Now()
	results, err := analytics.MapConcurrent(stats, computeWorkers, func(p analytics.PlayerStats) (*HotPlayerEntry, error) {
		baseline, err := analytics.FantasySeries(p, weights, baselineWindow)
		if err != nil {
			return nil, err
		}
		if len(baseline) == 0 {
			return nil, nil
		}
		recent := baseline
		if len(baseline) > recentWindow {
			recent = baseline[len(baseline)-recentWindow:]
		}

		result, err := analytics.DetectHot(recent, baseline, opts)
		if err != nil {
			if errors.Is(err, analytics.ErrInsufficientSample) || errors.Is(err, analytics.ErrNotEvaluable) {
				return nil, nil
			}
			return nil, err
		}
		return &HotPlayerEntry{PlayerID: p.PlayerID, Name: names[p.PlayerID], Result: result}, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ComputationDuration.WithLabelValues("hot_players").Observe(time.Since(start).Seconds())

	entries := make([]HotPlayerEntry, 0, len(results))
	for _, r := range results {
		if r != nil && r.Result.IsHot {
			entries = append(entries, *r)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Result.TrendRatio != b.Result.TrendRatio {
			return a.Result.TrendRatio > b.Result.TrendRatio
		}
		return a.PlayerID < b.PlayerID
	})
	return entries, nil
}

// AnalyzeTrade values a proposal under the effective configuration and logs
// the outcome to the trade history.
func (s *AnalyticsService) AnalyzeTrade(req models.AnalyzeTradeRequest) (*analytics.TradeAnalysis, error) {
	config, err := s.configs.Effective(req.OwnerID, req.ConfigID)
	if err != nil {
		return nil, err
	}
	window := req.Window
	if window <= 0 {
		window = defaultWindow
	}

	involved := append(append([]string{}, req.SideA...), req.SideB...)
	stats, err := s.loadPlayerStats(involved)
	if err != nil {
		return nil, err
	}

	weights := config.Weights()
	values := make(map[string]analytics.PlayerValue, len(stats))
	for _, p := range stats {
		series, err := analytics.FantasySeries(p, weights, window)
		if err != nil {
			return nil, err
		}
		if len(series) == 0 {
			continue // unvaluable; AnalyzeTrade reports the missing player
		}

		pv := analytics.PlayerValue{Value: mean(series)}
		if result, err := analytics.Consistency(series); err == nil {
			pv.Grade = result.Grade
			pv.HasGrade = true
		}
		values[p.PlayerID] = pv
	}

	start := time.Now()
	analysis, err := analytics.AnalyzeTrade(
		analytics.TradeProposal{SideA: req.SideA, SideB: req.SideB},
		values,
		analytics.TradeOptions{WeightByConsistency: req.WeightByConsistency},
	)
	if err != nil {
		return nil, err
	}
	metrics.ComputationDuration.WithLabelValues("trade").Observe(time.Since(start).Seconds())
	metrics.TradesAnalyzedTotal.Inc()

	record := models.TradeRecord{
		ConfigID:       config.ID,
		SideA:          strings.Join(req.SideA, ","),
		SideB:          strings.Join(req.SideB, ","),
		SideAValue:     analysis.SideAValue,
		SideBValue:     analysis.SideBValue,
		NetValue:       analysis.NetValue,
		Recommendation: string(analysis.Recommendation),
		CreatedAt:      time.Now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		// The valuation is already complete; a history write failure should
		// not fail the request.
		s.logger.Warn().Err(err).Msg("failed to persist trade record")
	}

	return &analysis, nil
}

// TradeHistory returns past analyses, newest first.
func (s *AnalyticsService) TradeHistory(limit int) ([]models.TradeRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []models.TradeRecord
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Waivers produces ranked pickup recommendations for a league and date.
func (s *AnalyticsService) Waivers(req models.WaiverRequest) ([]analytics.WaiverRecommendation, error) {
	config, err := s.configs.Effective(req.OwnerID, req.ConfigID)
	if err != nil {
		return nil, err
	}
	window := req.Window
	if window <= 0 {
		window = defaultWindow
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	games, err := s.gamesOn(date)
	if err != nil {
		return nil, err
	}
	ratings, leagueAvg, err := s.defensiveRatings()
	if err != nil {
		return nil, err
	}

	// Projected per-game points for every player, recency weighted.
	ranking, _, err := s.Rankings(RankingsRequest{
		ConfigID: config.ID,
		Metric:   analytics.MetricProjection,
		Window:   window,
	})
	if err != nil {
		return nil, err
	}

	teams, err := s.playerTeams()
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(req.ExcludeIDs)+req.ExcludeTopN)
	for _, id := range req.ExcludeIDs {
		excluded[id] = true
	}
	for i := 0; i < req.ExcludeTopN && i < len(ranking.Entries); i++ {
		excluded[ranking.Entries[i].PlayerID] = true
	}

	owned, err := s.ownedPlayers(req.LeagueID)
	if err != nil {
		return nil, err
	}

	candidates := make([]analytics.WaiverCandidate, 0, len(ranking.Entries))
	for _, entry := range ranking.Entries {
		candidates = append(candidates, analytics.WaiverCandidate{
			PlayerID:        entry.PlayerID,
			Team:            teams[entry.PlayerID],
			ProjectedPoints: entry.Value,
		})
	}

	start := time.Now()
	recs, err := analytics.RecommendWaivers(analytics.WaiverInputs{
		Date:                req.Date,
		Candidates:          candidates,
		Games:               games,
		DefensiveRatings:    ratings,
		LeagueAverageRating: leagueAvg,
		Excluded:            excluded,
		Available:           func(playerID string) bool { return !owned[playerID] },
	})
	if err != nil {
		return nil, err
	}
	metrics.ComputationDuration.WithLabelValues("waivers").Observe(time.Since(start).Seconds())

	if req.Limit > 0 && len(recs) > req.Limit {
		recs = recs[:req.Limit]
	}
	return recs, nil
}

func (s *AnalyticsService) fantasySeries(playerID string, config *models.ScoringConfiguration, window int) ([]float64, error) {
	stats, err := s.loadPlayerStats([]string{playerID})
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return analytics.FantasySeries(stats[0], config.Weights(), window)
}

func (s *AnalyticsService) gamesOn(date time.Time) ([]analytics.ScheduledGame, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var games []models.Game
	if err := s.db.Where("game_date >= ? AND game_date < ?", dayStart, dayEnd).
		Order("id ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}

	scheduled := make([]analytics.ScheduledGame, len(games))
	for i, g := range games {
		scheduled[i] = analytics.ScheduledGame{HomeTeam: g.HomeTeam, AwayTeam: g.AwayTeam}
	}
	return scheduled, nil
}

func (s *AnalyticsService) defensiveRatings() (map[string]float64, float64, error) {
	var rows []models.TeamDefense
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	ratings := make(map[string]float64, len(rows))
	var sum float64
	for _, r := range rows {
		ratings[r.Team] = r.DefensiveRating
		sum += r.DefensiveRating
	}
	if len(rows) == 0 {
		return ratings, 0, nil
	}
	return ratings, sum / float64(len(rows)), nil
}

func (s *AnalyticsService) playerTeams() (map[string]string, error) {
	var players []models.Player
	if err := s.db.Select("id", "team").Find(&players).Error; err != nil {
		return nil, err
	}
	teams := make(map[string]string, len(players))
	for _, p := range players {
		teams[p.ID] = p.Team
	}
	return teams, nil
}

func (s *AnalyticsService) playerNames() (map[string]string, error) {
	var players []models.Player
	if err := s.db.Select("id", "name").Find(&players).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (s *AnalyticsService) ownedPlayers(leagueID string) (map[string]bool, error) {
	var entries []models.RosterEntry
	if err := s.db.Where("league_id = ?", leagueID).Find(&entries).Error; err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(entries))
	for _, e := range entries {
		owned[e.PlayerID] = true
	}
	return owned, nil
}

func mean(series []float64) float64 {
	var total float64
	for _, v := range series {
		total += v
	}
	return total / float64(len(series))
}
