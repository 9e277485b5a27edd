package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dugoutlabs/dugout/config"
	"github.com/dugoutlabs/dugout/internal/atbat"
	"github.com/dugoutlabs/dugout/internal/baserunner"
	"github.com/dugoutlabs/dugout/internal/game"
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/dugoutlabs/dugout/internal/middleware"
	"github.com/dugoutlabs/dugout/internal/pitching"
)

func SetupRoutes() *gin.Engine {
	cfg := config.GetConfig()

	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publisher := live.NewPublisher(config.Redis)

	// API routes
	api := r.Group("/api")

	// The live feed is read-only and consumed by public scoreboards.
	live.RegisterLiveRoutes(api, config.Redis)

	// Everything that writes game state goes through the gateway token.
	scoring := api.Group("/")
	scoring.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	game.RegisterGameRoutes(scoring, config.DB, publisher)
	atbat.RegisterAtBatRoutes(scoring, config.DB, publisher)
	baserunner.RegisterBaserunnerRoutes(scoring, config.DB, publisher)
	pitching.RegisterPitchingRoutes(scoring, config.DB, publisher)

	return r
}
