package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

var DB *gorm.DB

// Initialize opens the sqlite database, migrates the schema and seeds the
// system default scoring configurations.
func Initialize(dbPath string, log zerolog.Logger) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("database connected")

	err = DB.AutoMigrate(
		&models.Player{},
		&models.PlayerGameStatLine{},
		&models.ScoringConfiguration{},
		&models.Game{},
		&models.TeamDefense{},
		&models.RosterEntry{},
		&models.TradeRecord{},
		&models.PlayerValueSnapshot{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedDefaultConfigs(DB, log); err != nil {
		return fmt.Errorf("failed to seed default configs: %w", err)
	}

	log.Info().Msg("database migration completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
