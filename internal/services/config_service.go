package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

// ErrDefaultRequiresSuccessor is returned when deleting an owner's default
// configuration while they still own others: a new default must be named.
var ErrDefaultRequiresSuccessor = errors.New("deleting the default configuration requires designating a successor")

// ConfigService owns scoring configuration CRUD and enforces the default
// invariant: at most one default per owner, and a default handoff on delete.
type ConfigService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewConfigService(db *gorm.DB, logger zerolog.Logger) *ConfigService {
	return &ConfigService{db: db, logger: logger}
}

func (s *ConfigService) List(ownerID string) ([]models.ScoringConfiguration, error) {
	var configs []models.ScoringConfiguration
	query := s.db.Order("created_at ASC")
	if ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}
	if err := query.Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *ConfigService) Get(id string) (*models.ScoringConfiguration, error) {
	var config models.ScoringConfiguration
	if err := s.db.First(&config, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

func (s *ConfigService) Create(req models.CreateScoringConfigRequest) (*models.ScoringConfiguration, error) {
	now := time.Now()
	config := models.ScoringConfiguration{
		ID:         uuid.NewString(),
		OwnerID:    req.OwnerID,
		Name:       req.Name,
		IsDefault:  req.IsDefault,
		Points:     req.Points,
		Rebounds:   req.Rebounds,
		Assists:    req.Assists,
		Steals:     req.Steals,
		Blocks:     req.Blocks,
		ThreesMade: req.ThreesMade,
		Turnovers:  req.Turnovers,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if config.IsDefault {
			if err := clearOwnerDefault(tx, config.OwnerID); err != nil {
				return err
			}
		}
		return tx.Create(&config).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("config_id", config.ID).Str("owner_id", config.OwnerID).Msg("scoring configuration created")
	return &config, nil
}

func (s *ConfigService) Update(id string, req models.UpdateScoringConfigRequest) (*models.ScoringConfiguration, error) {
	var config models.ScoringConfiguration
	if err := s.db.First(&config, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		config.Name = *req.Name
	}
	if req.Points != nil {
		config.Points = *req.Points
	}
	if req.Rebounds != nil {
		config.Rebounds = *req.Rebounds
	}
	if req.Assists != nil {
		config.Assists = *req.Assists
	}
	if req.Steals != nil {
		config.Steals = *req.Steals
	}
	if req.Blocks != nil {
		config.Blocks = *req.Blocks
	}
	if req.ThreesMade != nil {
		config.ThreesMade = *req.ThreesMade
	}
	if req.Turnovers != nil {
		config.Turnovers = *req.Turnovers
	}
	if req.IsDefault != nil {
		config.IsDefault = *req.IsDefault
	}
	config.UpdatedAt = time.Now()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault {
			if err := clearOwnerDefault(tx, config.OwnerID); err != nil {
				return err
			}
		}
		return tx.Save(&config).Error
	})
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Delete removes a configuration. When the target is the owner's default and
// the owner still has other configurations, successorID must name the new
// default.
func (s *ConfigService) Delete(id, successorID string) error {
	var config models.ScoringConfiguration
	if err := s.db.First(&config, "id = ?", id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if config.IsDefault {
			var remaining int64
			if err := tx.Model(&models.ScoringConfiguration{}).
				Where("owner_id = ? AND id != ?", config.OwnerID, config.ID).
				Count(&remaining).Error; err != nil {
				return err
			}
			if remaining > 0 {
				if successorID == "" {
					return ErrDefaultRequiresSuccessor
				}
				var successor models.ScoringConfiguration
				if err := tx.First(&successor, "id = ? AND owner_id = ?", successorID, config.OwnerID).Error; err != nil {
					return fmt.Errorf("successor configuration: %w", err)
				}
				if err := tx.Model(&successor).Updates(map[string]any{
					"is_default": true,
					"updated_at": time.Now(),
				}).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&config).Error
	})
}

// Effective resolves the configuration a computation should run under:
// an explicit ID wins, then the owner's default, then the system default.
func (s *ConfigService) Effective(ownerID, configID string) (*models.ScoringConfiguration, error) {
	if configID != "" {
		return s.Get(configID)
	}

	if ownerID != "" {
		var config models.ScoringConfiguration
		err := s.db.First(&config, "owner_id = ? AND is_default = ?", ownerID, true).Error
		if err == nil {
			return &config, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var config models.ScoringConfiguration
	if err := s.db.First(&config, "owner_id = ? AND is_default = ?", models.SystemOwnerID, true).Error; err != nil {
		return nil, fmt.Errorf("no system default configuration: %w", err)
	}
	return &config, nil
}

func clearOwnerDefault(tx *gorm.DB, ownerID string) error {
	return tx.Model(&models.ScoringConfiguration{}).
		Where("owner_id = ? AND is_default = ?", ownerID, true).
		Update("is_default", false).Error
}
