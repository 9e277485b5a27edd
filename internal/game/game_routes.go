package game

import (
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterGameRoutes wires the game lifecycle and inning-clock endpoints.
func RegisterGameRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *live.Publisher) {
	controller := NewGameController(NewGormGameRepository(db), publisher)

	rg.POST("/games", controller.CreateGame)
	rg.GET("/games/:game_id", controller.GetGame)
	rg.POST("/games/:game_id/start", controller.StartGame)
	rg.POST("/games/:game_id/advance-inning", controller.AdvanceInning)
	rg.POST("/games/:game_id/end", controller.EndGame)
	rg.POST("/games/:game_id/resume", controller.ResumeGame)
	rg.PUT("/games/:game_id/score", controller.UpdateScore)
	rg.GET("/games/:game_id/innings", controller.ListInnings)
}
