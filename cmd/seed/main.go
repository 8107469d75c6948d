// Seed populates the database with the default admin and reference data
// (printer models, cartridge models, settings, cities). Safe to run more
// than once.
package main

import (
	"printcare/internal/config"
	"printcare/internal/database"
	"printcare/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	database.Init(cfg.DBDSN)

	if err := database.Seed(database.DB); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("database seeded")
}
