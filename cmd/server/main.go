package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/api"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/config"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/database"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/logger"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Server.LogLevel)

	if err := database.Initialize(cfg.Database.Path, log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	db := database.GetDB()

	configService := services.NewConfigService(db, log)
	playerService := services.NewPlayerService(db, log)

	analyticsService, err := services.NewAnalyticsService(db, configService, cfg.Jobs.MemoSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analytics service")
	}

	providerClient := services.NewStatsProviderClient(
		cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.DailyLimit, log)

	snapshotService, err := services.NewSnapshotService(
		db, analyticsService, cfg.Jobs.SnapshotHour, cfg.Jobs.Timezone, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize snapshot service")
	}
	if err := snapshotService.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start snapshot job")
	}

	router := api.SetupRouter(cfg, playerService, configService, analyticsService, snapshotService, providerClient)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	if err := snapshotService.Stop(); err != nil {
		log.Warn().Err(err).Msg("error stopping snapshot job")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
