package baserunner

import (
	"errors"

	"github.com/dugoutlabs/dugout/internal/game"
	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutInput records one baserunning out.
type OutInput struct {
	InningID   uuid.UUID  `json:"inning_id" binding:"required"`
	AtBatID    *uuid.UUID `json:"at_bat_id"`
	EventType  EventType  `json:"event_type" binding:"required"`
	RunnerBase RunnerBase `json:"runner_base" binding:"required"`
	OutsBefore *int       `json:"outs_before" binding:"required"`
}

// BaserunnerRepository records baserunning outs and mutates the game's
// base-occupancy snapshot inside one transaction.
type BaserunnerRepository interface {
	RecordOut(gameID uuid.UUID, input OutInput) (*BaserunnerEvent, *game.Game, error)
	ListEvents(gameID uuid.UUID) ([]BaserunnerEvent, error)
}

// GormBaserunnerRepository implements BaserunnerRepository using GORM.
type GormBaserunnerRepository struct {
	db *gorm.DB
}

func NewGormBaserunnerRepository(db *gorm.DB) *GormBaserunnerRepository {
	return &GormBaserunnerRepository{db: db}
}

// RecordOut inserts the event and clears the runner's base in a single
// transaction. Clearing an already-clear base succeeds: scorers often
// replay an out they already applied by hand. outs_before is accepted as
// the caller reports it and only range-checked; the at-bat's own counters
// are not consulted.
func (r *GormBaserunnerRepository) RecordOut(gameID uuid.UUID, input OutInput) (*BaserunnerEvent, *game.Game, error) {
	if !validEventType(input.EventType) {
		return nil, nil, apperr.Validation("unknown event type %q", input.EventType)
	}
	if !validRunnerBase(input.RunnerBase) {
		return nil, nil, apperr.Validation("runner_base must be first, second or third")
	}
	if input.OutsBefore == nil {
		return nil, nil, apperr.Validation("outs_before is required")
	}
	outsBefore := *input.OutsBefore
	if outsBefore < 0 || outsBefore > 2 {
		return nil, nil, apperr.Validation("outs_before must be between 0 and 2")
	}

	var event *BaserunnerEvent
	var g *game.Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var locked game.Game
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, "id = ?", gameID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("game")
			}
			return apperr.Store(err)
		}

		e := &BaserunnerEvent{
			GameID:     gameID,
			InningID:   input.InningID,
			AtBatID:    input.AtBatID,
			EventType:  input.EventType,
			RunnerBase: input.RunnerBase,
			OutsBefore: outsBefore,
			OutsAfter:  outsBefore + 1,
		}
		if err := tx.Create(e).Error; err != nil {
			return apperr.Store(err)
		}

		switch input.RunnerBase {
		case BaseFirst:
			locked.BaseRunners.First = false
		case BaseSecond:
			locked.BaseRunners.Second = false
		case BaseThird:
			locked.BaseRunners.Third = false
		}
		if err := tx.Save(&locked).Error; err != nil {
			return apperr.Store(err)
		}

		event = e
		g = &locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return event, g, nil
}

// ListEvents returns the baserunning-out history for a game.
func (r *GormBaserunnerRepository) ListEvents(gameID uuid.UUID) ([]BaserunnerEvent, error) {
	var events []BaserunnerEvent
	err := r.db.Where("game_id = ?", gameID).Order("created_at asc").Find(&events).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return events, nil
}
