package atbat

import (
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAtBatRoutes wires the at-bat ledger endpoints.
func RegisterAtBatRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *live.Publisher) {
	controller := NewAtBatController(NewGormAtBatRepository(db), publisher)

	rg.POST("/games/:game_id/at-bats", controller.CreateAtBat)
	rg.GET("/at-bats/:at_bat_id", controller.GetAtBat)
	rg.POST("/at-bats/:at_bat_id/pitches", controller.RecordPitch)
	rg.POST("/at-bats/:at_bat_id/end", controller.EndAtBat)
	rg.POST("/at-bats/:at_bat_id/plays", controller.RecordPlay)
}
