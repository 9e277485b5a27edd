// Package live fans committed game mutations out to scoreboard clients:
// controllers publish snapshots to a per-game Redis channel and the feed
// endpoint relays that channel over a websocket.
package live

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event is the wire shape pushed to feed subscribers.
type Event struct {
	Type    string      `json:"type"`
	GameID  uuid.UUID   `json:"game_id"`
	SentAt  time.Time   `json:"sent_at"`
	Payload interface{} `json:"payload"`
}

// Publisher publishes engine events to Redis. A nil Publisher (or one
// without a client) is a no-op so the engine runs without Redis configured.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Channel names the per-game pub/sub channel.
func Channel(gameID uuid.UUID) string {
	return "game:" + gameID.String()
}

// Publish pushes an event to the game's channel. Best-effort: a publish
// failure is logged and never fails the request that produced it.
func (p *Publisher) Publish(ctx context.Context, gameID uuid.UUID, eventType string, payload interface{}) {
	if p == nil || p.rdb == nil {
		return
	}

	body, err := json.Marshal(Event{
		Type:    eventType,
		GameID:  gameID,
		SentAt:  time.Now().UTC(),
		Payload: payload,
	})
	if err != nil {
		log.Printf("live: marshal %s event for game %s: %v", eventType, gameID, err)
		return
	}

	if err := p.rdb.Publish(ctx, Channel(gameID), body).Err(); err != nil {
		log.Printf("live: publish %s event for game %s: %v", eventType, gameID, err)
	}
}
