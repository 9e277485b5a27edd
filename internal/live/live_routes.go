package live

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterLiveRoutes wires the websocket feed. The feed is read-only and
// public; writes stay behind the authenticated scoring routes.
func RegisterLiveRoutes(rg *gin.RouterGroup, rdb *redis.Client) {
	controller := NewFeedController(rdb)
	rg.GET("/games/:game_id/feed", controller.StreamGame)
}
