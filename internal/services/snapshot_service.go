package services

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/analytics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/metrics"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

// snapshotWindow is the game window each daily value snapshot is computed
// over.
const snapshotWindow = 14

// SnapshotService records each player's fantasy value under the system
// default configuration once a day, building the history behind trend
// charts.
type SnapshotService struct {
	db        *gorm.DB
	analytics *AnalyticsService
	scheduler gocron.Scheduler
	hour      int
	logger    zerolog.Logger
}

func NewSnapshotService(db *gorm.DB, analyticsService *AnalyticsService, hour int, timezone string, logger zerolog.Logger) (*SnapshotService, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn().Err(err).Str("timezone", timezone).Msg("falling back to UTC")
		location = time.UTC
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &SnapshotService{
		db:        db,
		analytics: analyticsService,
		scheduler: scheduler,
		hour:      hour,
		logger:    logger,
	}, nil
}

// Start schedules the daily snapshot job.
func (s *SnapshotService) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hour), 0, 0))),
		gocron.NewTask(s.run),
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot job: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info().Int("hour", s.hour).Msg("snapshot job scheduled")
	return nil
}

func (s *SnapshotService) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *SnapshotService) run() {
	if err := s.TakeSnapshot(); err != nil {
		s.logger.Error().Err(err).Msg("snapshot run failed")
	}
}

// TakeSnapshot ranks every player under the system default configuration and
// upserts today's value rows. Re-running on the same day overwrites that
// day's values.
func (s *SnapshotService) TakeSnapshot() error {
	ranking, config, err := s.analytics.Rankings(RankingsRequest{
		Metric: analytics.MetricAverage,
		Window: snapshotWindow,
	})
	if err != nil {
		return fmt.Errorf("failed to compute ranking for snapshot: %w", err)
	}

	now := time.Now()
	snapshotDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	snapshots := make([]models.PlayerValueSnapshot, 0, len(ranking.Entries))
	for _, entry := range ranking.Entries {
		snapshots = append(snapshots, models.PlayerValueSnapshot{
			SnapshotDate: snapshotDate,
			PlayerID:     entry.PlayerID,
			ConfigID:     config.ID,
			Value:        entry.Value,
			GamesCounted: entry.GamesCounted,
			CreatedAt:    now,
		})
	}
	if len(snapshots) == 0 {
		s.logger.Debug().Msg("no ranked players, skipping snapshot")
		return nil
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_date"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_id", "value", "games_counted"}),
	}).Create(&snapshots).Error
	if err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}

	metrics.SnapshotsRecordedTotal.Add(float64(len(snapshots)))
	metrics.SnapshotLastRunTimestamp.Set(float64(now.Unix()))
	s.logger.Info().Int("players", len(snapshots)).Msg("value snapshot recorded")
	return nil
}

// History returns a player's snapshots within the period ("week", "month",
// "season" or "all"), oldest first.
func (s *SnapshotService) History(playerID, period string) (*models.ValueHistoryResponse, error) {
	query := s.db.Order("snapshot_date ASC")
	if playerID != "" {
		query = query.Where("player_id = ?", playerID)
	}
	if cutoff, bounded := periodCutoff(period, time.Now()); bounded {
		query = query.Where("snapshot_date >= ?", cutoff)
	}

	var snapshots []models.PlayerValueSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return &models.ValueHistoryResponse{Snapshots: snapshots, Period: period}, nil
}

// periodCutoff maps a history period to its start time. The second return is
// false for "all" (and unknown periods), meaning no cutoff applies.
func periodCutoff(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "season":
		return now.AddDate(0, -9, 0), true
	default:
		return time.Time{}, false
	}
}
