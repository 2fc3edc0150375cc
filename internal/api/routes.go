package api

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/api/handlers"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/api/middleware"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/config"
	"github.com/hoopdeck/fantasy-tracker/backend/internal/services"
)

func SetupRouter(
	cfg *config.Config,
	playerService *services.PlayerService,
	configService *services.ConfigService,
	analyticsService *services.AnalyticsService,
	snapshotService *services.SnapshotService,
	providerClient *services.StatsProviderClient,
) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(cfg.Server.RatePerSecond, cfg.Server.RateBurst))

	corsConfig := cors.DefaultConfig()
	if cfg.Server.CORSOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	playerHandler := handlers.NewPlayerHandler(playerService, analyticsService)
	configHandler := handlers.NewScoringConfigHandler(configService, analyticsService)
	rankingHandler := handlers.NewRankingHandler(analyticsService)
	tradeHandler := handlers.NewTradeHandler(analyticsService)
	waiverHandler := handlers.NewWaiverHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(providerClient, snapshotService, analyticsService)

	api := router.Group("/api")
	{
		players := api.Group("/players")
		{
			players.GET("/search", playerHandler.Search)
			players.GET("/:id", playerHandler.Get)
			players.GET("/:id/fantasy-log", playerHandler.FantasyLog)
			players.GET("/:id/consistency", playerHandler.Consistency)
		}

		api.GET("/rankings", rankingHandler.Rankings)
		api.GET("/hot-players", rankingHandler.HotPlayers)

		trades := api.Group("/trades")
		{
			trades.POST("/analyze", tradeHandler.Analyze)
			trades.GET("/history", tradeHandler.History)
		}

		api.POST("/waivers/recommendations", waiverHandler.Recommendations)

		api.GET("/snapshots", adminHandler.Snapshots)

		configs := api.Group("/scoring-configs")
		{
			configs.GET("", configHandler.List)
			configs.GET("/:id", configHandler.Get)
			configs.POST("", configHandler.Create)
			configs.PUT("/:id", configHandler.Update)
			configs.DELETE("/:id", configHandler.Delete)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/sync", adminHandler.Sync)
			admin.POST("/snapshots", adminHandler.TakeSnapshot)
			admin.GET("/provider-status", adminHandler.ProviderStatus)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
