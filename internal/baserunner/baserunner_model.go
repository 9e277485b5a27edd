package baserunner

import (
	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/google/uuid"
)

// EventType classifies a non-pitch baserunning out.
type EventType string

const (
	EventCaughtStealing EventType = "caught_stealing"
	EventPickoff        EventType = "pickoff"
	EventInterference   EventType = "interference"
	EventPassedRunner   EventType = "passed_runner"
	EventAppealOut      EventType = "appeal_out"
	EventOther          EventType = "other"
)

func validEventType(t EventType) bool {
	switch t {
	case EventCaughtStealing, EventPickoff, EventInterference, EventPassedRunner, EventAppealOut, EventOther:
		return true
	}
	return false
}

// RunnerBase names the base the retired runner occupied.
type RunnerBase string

const (
	BaseFirst  RunnerBase = "first"
	BaseSecond RunnerBase = "second"
	BaseThird  RunnerBase = "third"
)

func validRunnerBase(b RunnerBase) bool {
	return b == BaseFirst || b == BaseSecond || b == BaseThird
}

// BaserunnerEvent is the append-only record of an out made on the bases
// outside the pitch sequence. The at-bat reference is optional: a pickoff
// between at-bats has none.
type BaserunnerEvent struct {
	models.Base
	GameID     uuid.UUID  `json:"game_id" gorm:"type:uuid;index;not null"`
	InningID   uuid.UUID  `json:"inning_id" gorm:"type:uuid;index;not null"`
	AtBatID    *uuid.UUID `json:"at_bat_id,omitempty" gorm:"type:uuid;index"`
	EventType  EventType  `json:"event_type" gorm:"not null"`
	RunnerBase RunnerBase `json:"runner_base" gorm:"not null"`
	OutsBefore int        `json:"outs_before" gorm:"not null"`
	OutsAfter  int        `json:"outs_after" gorm:"not null"`
}
