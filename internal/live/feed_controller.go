package live

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers on the team dashboard connect cross-origin through the gateway.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedController bridges the per-game Redis channel to websocket clients.
type FeedController struct {
	rdb *redis.Client
}

func NewFeedController(rdb *redis.Client) *FeedController {
	return &FeedController{rdb: rdb}
}

// StreamGame godoc
// @Summary Live game feed
// @Description Upgrades to a websocket and relays every committed game event until the client disconnects
// @Tags live
// @Param game_id path string true "Game ID"
// @Success 101 {string} string "Switching protocols"
// @Failure 400 {object} responses.ErrorResponse "Invalid game ID"
// @Failure 503 {object} responses.ErrorResponse "Live feed not configured"
// @Router /games/{game_id}/feed [get]
func (c *FeedController) StreamGame(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	if c.rdb == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "live feed not configured"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("live: upgrade failed for game %s: %v", gameID, err)
		return
	}
	defer conn.Close()

	sub := c.rdb.Subscribe(ctx.Request.Context(), Channel(gameID))
	defer sub.Close()

	// Drain client frames so closes are noticed promptly.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
