package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Booking API
// @version 1.0
// @description Rooms, facility slots and in-room dining with a single checkout.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
