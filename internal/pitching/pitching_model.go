package pitching

import (
	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/google/uuid"
)

// GamePitcher is one assignment in the append-only pitching rotation.
// The "current pitcher" is the row with inning_exited unset; the partial
// unique index keeps that to at most one per game even if two devices
// race past the row lock.
type GamePitcher struct {
	models.Base
	GameID        uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_game_open_pitcher,where:inning_exited IS NULL"`
	PlayerID      uuid.UUID `json:"player_id" gorm:"type:uuid;not null;index"`
	PitchingOrder int       `json:"pitching_order" gorm:"not null"`
	InningEntered int       `json:"inning_entered" gorm:"not null"`
	InningExited  *int      `json:"inning_exited,omitempty"`
}

// Active reports whether this assignment is still on the mound.
func (p *GamePitcher) Active() bool {
	return p.InningExited == nil
}
