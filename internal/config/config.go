package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   Server
	Database Database
	Provider Provider
	Jobs     Jobs
}

type Server struct {
	Port          string  `envconfig:"PORT" default:"8080"`
	LogLevel      string  `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins   string  `envconfig:"CORS_ALLOWED_ORIGINS"`
	RatePerSecond float64 `envconfig:"RATE_LIMIT_PER_SECOND" default:"25"`
	RateBurst     int     `envconfig:"RATE_LIMIT_BURST" default:"50"`
}

type Database struct {
	Path string `envconfig:"DB_PATH" default:"./fantasy_tracker.db"`
}

type Provider struct {
	BaseURL    string `envconfig:"STATS_PROVIDER_URL"`
	APIKey     string `envconfig:"STATS_PROVIDER_API_KEY"`
	DailyLimit int    `envconfig:"STATS_PROVIDER_DAILY_LIMIT" default:"500"`
}

type Jobs struct {
	SnapshotHour int    `envconfig:"SNAPSHOT_HOUR" default:"23"`
	Timezone     string `envconfig:"JOB_TIMEZONE" default:"America/New_York"`
	MemoSize     int    `envconfig:"ANALYTICS_MEMO_SIZE" default:"512"`
}

// New loads configuration from a .env file when present, then the
// environment. Missing .env is not an error.
func New() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &c, nil
}
