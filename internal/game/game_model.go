package game

import (
	"time"

	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/google/uuid"
)

type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusCompleted  GameStatus = "completed"
)

type InningHalf string

const (
	HalfTop    InningHalf = "top"
	HalfBottom InningHalf = "bottom"
)

// Game is the aggregate root for a tracked contest. Teams and players are
// rows in the external roster service; the engine keeps bare UUID references.
// BaseRunners is the most contended field: pitch-driven plays, manual out
// recording and inning advances all read-modify-write it, always inside a
// transaction holding the game row lock.
type Game struct {
	models.Base
	TeamID       uuid.UUID  `json:"team_id" gorm:"type:uuid;index;not null"`
	AwayTeamID   *uuid.UUID `json:"away_team_id,omitempty" gorm:"type:uuid;index"`
	OpponentName string     `json:"opponent_name,omitempty"`
	IsHomeGame   bool       `json:"is_home_game" gorm:"default:true"`

	Status        GameStatus         `json:"status" gorm:"index;default:'scheduled'"`
	CurrentInning int                `json:"current_inning" gorm:"default:1"`
	InningHalf    InningHalf         `json:"inning_half" gorm:"default:'top'"`
	HomeScore     int                `json:"home_score" gorm:"default:0"`
	AwayScore     int                `json:"away_score" gorm:"default:0"`
	BaseRunners   models.BaseRunners `json:"base_runners" gorm:"type:jsonb"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty" gorm:"index"`
	Location    string     `json:"location,omitempty"`
	Notes       string     `json:"notes,omitempty" gorm:"type:text"`
}

// Inning is the append-only half-inning history, ordered by
// (inning_number, half) with top before bottom. The derived
// is_opponent_batting flag is stored so history survives roster edits.
type Inning struct {
	models.Base
	GameID            uuid.UUID  `json:"game_id" gorm:"type:uuid;index;not null"`
	InningNumber      int        `json:"inning_number" gorm:"not null"`
	Half              InningHalf `json:"half" gorm:"not null"`
	BattingTeamID     uuid.UUID  `json:"batting_team_id" gorm:"type:uuid"`
	PitchingTeamID    uuid.UUID  `json:"pitching_team_id" gorm:"type:uuid"`
	IsOpponentBatting bool       `json:"is_opponent_batting"`
}
