package pitching

import (
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPitchingRoutes wires the pitcher rotation endpoints.
func RegisterPitchingRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *live.Publisher) {
	controller := NewPitchingController(NewGormPitchingRepository(db), publisher)

	rg.POST("/games/:game_id/pitchers", controller.AddPitcher)
	rg.GET("/games/:game_id/pitchers", controller.ListPitchers)
	rg.GET("/games/:game_id/pitchers/current", controller.GetCurrentPitcher)
	rg.POST("/games/:game_id/pitchers/change", controller.ChangePitcher)
}
