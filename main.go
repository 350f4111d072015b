package main

import (
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/config"
	"github.com/erickhangati/JobApplicationApp/controllers"
	"github.com/erickhangati/JobApplicationApp/logger"
	"github.com/erickhangati/JobApplicationApp/models"
)

func main() {
	// Load environment variables
	godotenv.Load()
	logger.Init()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Connect to PostgreSQL database
	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := models.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate models")
	}

	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.TokenTTL)
	r := controllers.NewRouter(db, tokens)

	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
