package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cafedir/config"
	"cafedir/database"
	"cafedir/route"
	"cafedir/utils"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cfg := config.Get()

	utils.InitLogger(cfg.LogLevel)

	if err := database.Init(cfg.DatabaseDSN); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Info().Msg("Running in debug mode")
	}

	// Initialize router
	router := gin.Default()

	// Configure CORS
	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Info().Msg("CORS configured")

	// Setup routes
	route.CafeRoutes(router, cfg)
	log.Info().Msg("Routes configured successfully")

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
