package main

import (
	"log"

	"github.com/dugoutlabs/dugout/config"
	_ "github.com/dugoutlabs/dugout/docs"
	"github.com/dugoutlabs/dugout/internal/atbat"
	"github.com/dugoutlabs/dugout/internal/baserunner"
	"github.com/dugoutlabs/dugout/internal/game"
	"github.com/dugoutlabs/dugout/internal/pitching"
	"github.com/dugoutlabs/dugout/routes"
)

// @title Dugout Live Game API
// @version 1.0
// @description Live baseball game progression engine: count, outs, innings, base runners, pitching changes.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&game.Game{}, &game.Inning{},
		&atbat.AtBat{}, &atbat.Pitch{}, &atbat.Play{},
		&baserunner.BaserunnerEvent{},
		&pitching.GamePitcher{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
