package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

// seedDefaultConfigs provisions the shared scoring configurations owned by
// the system user. Users without a default of their own fall back to the
// system default at point of use. Idempotent: existing system configs are
// left alone.
func seedDefaultConfigs(db *gorm.DB, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&models.ScoringConfiguration{}).
		Where("owner_id = ?", models.SystemOwnerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	configs := []models.ScoringConfiguration{
		{
			ID:         uuid.NewString(),
			OwnerID:    models.SystemOwnerID,
			Name:       "Standard",
			IsDefault:  true,
			Points:     1,
			Rebounds:   1.25,
			Assists:    1.5,
			Steals:     2,
			Blocks:     2,
			ThreesMade: 0.5,
			Turnovers:  -1,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			OwnerID:    models.SystemOwnerID,
			Name:       "Points League",
			Points:     1,
			Rebounds:   1,
			Assists:    1,
			Steals:     1,
			Blocks:     1,
			ThreesMade: 1,
			Turnovers:  -1,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	if err := db.Create(&configs).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(configs)).Msg("seeded system scoring configurations")
	return nil
}
