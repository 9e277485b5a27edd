package atbat

import (
	"time"

	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/google/uuid"
)

// AtBat is one batter's turn against one pitcher. It opens with a zero
// count and closes exactly once: Result and EndTime are set together and
// never change afterwards.
type AtBat struct {
	models.Base
	GameID       uuid.UUID `json:"game_id" gorm:"type:uuid;index;not null"`
	InningID     uuid.UUID `json:"inning_id" gorm:"type:uuid;index;not null"`
	BatterID     uuid.UUID `json:"batter_id" gorm:"type:uuid;index;not null"`
	PitcherID    uuid.UUID `json:"pitcher_id" gorm:"type:uuid;index;not null"`
	BattingOrder int       `json:"batting_order" gorm:"not null"`

	Balls      int           `json:"balls" gorm:"default:0"`
	Strikes    int           `json:"strikes" gorm:"default:0"`
	OutsBefore int           `json:"outs_before" gorm:"not null"`
	OutsAfter  int           `json:"outs_after"`
	Result     *rules.Result `json:"result,omitempty" gorm:"index"`
	RBI        int           `json:"rbi" gorm:"default:0"`
	RunsScored int           `json:"runs_scored" gorm:"default:0"`
	EndTime    *time.Time    `json:"end_time,omitempty"`

	Pitches []Pitch `json:"pitches,omitempty" gorm:"foreignKey:AtBatID"`
}

// Open reports whether the at-bat still accepts pitches.
func (ab *AtBat) Open() bool {
	return ab.EndTime == nil
}

// Pitch is one delivery within an at-bat. PitchNumber is 1-based and
// gap-free per at-bat; the unique index backs up the serialized
// read-max-and-insert in the repository.
type Pitch struct {
	models.Base
	AtBatID     uuid.UUID         `json:"at_bat_id" gorm:"type:uuid;not null;uniqueIndex:idx_pitch_sequence"`
	PitchNumber int               `json:"pitch_number" gorm:"not null;uniqueIndex:idx_pitch_sequence"`
	PitchType   string            `json:"pitch_type,omitempty"`
	LocationX   *float64          `json:"location_x,omitempty"`
	LocationY   *float64          `json:"location_y,omitempty"`
	Velocity    *float64          `json:"velocity,omitempty"`
	Result      rules.PitchResult `json:"result" gorm:"not null"`
}

// Play records the physical outcome of an in_play pitch.
type Play struct {
	models.Base
	PitchID     uuid.UUID `json:"pitch_id" gorm:"type:uuid;index;not null"`
	AtBatID     uuid.UUID `json:"at_bat_id" gorm:"type:uuid;index;not null"`
	ContactType string    `json:"contact_type,omitempty"` // grounder, liner, fly, popup
	Direction   string    `json:"direction,omitempty"`    // pull, center, opposite
	IsOut       bool      `json:"is_out"`
	RunsScored  int       `json:"runs_scored" gorm:"default:0"`
}
