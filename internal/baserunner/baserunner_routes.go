package baserunner

import (
	"github.com/dugoutlabs/dugout/internal/game"
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBaserunnerRoutes wires the baserunning endpoints.
func RegisterBaserunnerRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *live.Publisher) {
	controller := NewBaserunnerController(
		NewGormBaserunnerRepository(db),
		game.NewGormGameRepository(db),
		publisher,
	)

	rg.POST("/games/:game_id/baserunner-outs", controller.RecordOut)
	rg.GET("/games/:game_id/baserunner-outs", controller.ListEvents)
	rg.GET("/games/:game_id/advancement", controller.SuggestAdvancement)
	rg.PUT("/games/:game_id/runners", controller.SetRunners)
}
