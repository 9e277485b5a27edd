package atbat

import (
	"errors"
	"time"

	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PitchInput carries one recorded pitch. Result may be omitted when a
// location is supplied; the repository infers ball/called_strike from the
// strike zone in that case.
type PitchInput struct {
	PitchType string             `json:"pitch_type"`
	Result    *rules.PitchResult `json:"result"`
	LocationX *float64           `json:"location_x"`
	LocationY *float64           `json:"location_y"`
	Velocity  *float64           `json:"velocity"`
}

// PlayInput records the physical outcome of an in_play pitch.
type PlayInput struct {
	PitchID     uuid.UUID `json:"pitch_id" binding:"required"`
	ContactType string    `json:"contact_type"`
	Direction   string    `json:"direction"`
	IsOut       bool      `json:"is_out"`
	RunsScored  int       `json:"runs_scored" binding:"gte=0"`
}

// AtBatRepository is the at-bat ledger: count state machine, gap-free pitch
// sequencing, and the open -> closed terminal transition.
type AtBatRepository interface {
	CreateAtBat(ab *AtBat) error
	GetAtBatByID(id uuid.UUID) (*AtBat, error)
	RecordPitch(atBatID uuid.UUID, input PitchInput) (*Pitch, *AtBat, error)
	EndAtBat(atBatID uuid.UUID, result rules.Result, outsAfter, rbi, runsScored int) (*AtBat, error)
	RecordPlay(atBatID uuid.UUID, input PlayInput) (*Play, error)
}

// GormAtBatRepository implements AtBatRepository using GORM.
type GormAtBatRepository struct {
	db *gorm.DB
}

func NewGormAtBatRepository(db *gorm.DB) *GormAtBatRepository {
	return &GormAtBatRepository{db: db}
}

// lockAtBat loads the at-bat row under FOR UPDATE. Pitch sequencing and
// count updates serialize through this lock.
func lockAtBat(tx *gorm.DB, id uuid.UUID) (*AtBat, error) {
	var ab AtBat
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ab, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("at-bat")
		}
		return nil, apperr.Store(err)
	}
	return &ab, nil
}

// CreateAtBat opens a new at-bat with a zero count. outs_after mirrors
// outs_before until the at-bat closes.
func (r *GormAtBatRepository) CreateAtBat(ab *AtBat) error {
	if ab.GameID == uuid.Nil || ab.InningID == uuid.Nil || ab.BatterID == uuid.Nil || ab.PitcherID == uuid.Nil {
		return apperr.Validation("game_id, inning_id, batter_id and pitcher_id are required")
	}
	if ab.BattingOrder < 1 || ab.BattingOrder > 9 {
		return apperr.Validation("batting_order must be between 1 and 9")
	}
	if ab.OutsBefore < 0 || ab.OutsBefore > 2 {
		return apperr.Validation("outs_before must be between 0 and 2")
	}

	ab.Balls = 0
	ab.Strikes = 0
	ab.OutsAfter = ab.OutsBefore
	ab.Result = nil
	ab.EndTime = nil

	if err := r.db.Create(ab).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

// GetAtBatByID retrieves an at-bat with its pitches ordered by sequence.
func (r *GormAtBatRepository) GetAtBatByID(id uuid.UUID) (*AtBat, error) {
	var ab AtBat
	err := r.db.Preload("Pitches", func(db *gorm.DB) *gorm.DB {
		return db.Order("pitch_number asc")
	}).First(&ab, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("at-bat")
		}
		return nil, apperr.Store(err)
	}
	return &ab, nil
}

// RecordPitch appends the next pitch and applies the count rule in one
// transaction. The at-bat row lock serializes concurrent devices so
// pitch_number stays contiguous.
func (r *GormAtBatRepository) RecordPitch(atBatID uuid.UUID, input PitchInput) (*Pitch, *AtBat, error) {
	result, err := resolvePitchResult(input)
	if err != nil {
		return nil, nil, err
	}

	var pitch *Pitch
	var parent *AtBat
	err = r.db.Transaction(func(tx *gorm.DB) error {
		ab, err := lockAtBat(tx, atBatID)
		if err != nil {
			return err
		}
		if !ab.Open() {
			return apperr.Conflict("at-bat already ended")
		}

		var maxNumber int
		err = tx.Model(&Pitch{}).
			Where("at_bat_id = ?", atBatID).
			Select("COALESCE(MAX(pitch_number), 0)").
			Scan(&maxNumber).Error
		if err != nil {
			return apperr.Store(err)
		}

		p := &Pitch{
			AtBatID:     atBatID,
			PitchNumber: maxNumber + 1,
			PitchType:   input.PitchType,
			LocationX:   input.LocationX,
			LocationY:   input.LocationY,
			Velocity:    input.Velocity,
			Result:      result,
		}
		if err := tx.Create(p).Error; err != nil {
			return apperr.Store(err)
		}

		ab.Balls, ab.Strikes = nextCount(ab.Balls, ab.Strikes, result)
		if err := tx.Save(ab).Error; err != nil {
			return apperr.Store(err)
		}

		pitch = p
		parent = ab
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return pitch, parent, nil
}

// resolvePitchResult picks the explicit result or infers ball/called_strike
// from the pitch location when the scorer did not call it.
func resolvePitchResult(input PitchInput) (rules.PitchResult, error) {
	if input.Result != nil {
		switch *input.Result {
		case rules.PitchBall, rules.PitchCalledStrike, rules.PitchSwingingStrike, rules.PitchFoul, rules.PitchInPlay:
			return *input.Result, nil
		default:
			return "", apperr.Validation("unknown pitch result %q", *input.Result)
		}
	}
	if input.LocationX != nil && input.LocationY != nil {
		return rules.InferPitchResult(*input.LocationX, *input.LocationY), nil
	}
	return "", apperr.Validation("pitch needs a result or a location to infer one")
}

// EndAtBat closes the at-bat: result and end_time are set exactly once and
// outs_after must equal outs_before plus the outs the result produces.
func (r *GormAtBatRepository) EndAtBat(atBatID uuid.UUID, result rules.Result, outsAfter, rbi, runsScored int) (*AtBat, error) {
	if result == "" {
		return nil, apperr.Validation("result is required")
	}
	if rbi < 0 || runsScored < 0 {
		return nil, apperr.Validation("rbi and runs_scored must be non-negative")
	}

	var out *AtBat
	err := r.db.Transaction(func(tx *gorm.DB) error {
		ab, err := lockAtBat(tx, atBatID)
		if err != nil {
			return err
		}
		if !ab.Open() {
			return apperr.Conflict("at-bat already ended")
		}

		if want := ab.OutsBefore + rules.OutsFor(result); outsAfter != want {
			return apperr.Validation("outs_after must be %d for result %s with %d outs before", want, result, ab.OutsBefore)
		}

		now := time.Now().UTC()
		ab.Result = &result
		ab.OutsAfter = outsAfter
		ab.RBI = rbi
		ab.RunsScored = runsScored
		ab.EndTime = &now
		if err := tx.Save(ab).Error; err != nil {
			return apperr.Store(err)
		}

		out = ab
		return nil
	})
	return out, err
}

// RecordPlay stores the contact outcome for an in_play pitch.
func (r *GormAtBatRepository) RecordPlay(atBatID uuid.UUID, input PlayInput) (*Play, error) {
	var play *Play
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pitch Pitch
		err := tx.First(&pitch, "id = ? AND at_bat_id = ?", input.PitchID, atBatID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("pitch")
			}
			return apperr.Store(err)
		}
		if pitch.Result != rules.PitchInPlay {
			return apperr.Validation("plays can only be recorded for in_play pitches, pitch was %s", pitch.Result)
		}

		p := &Play{
			PitchID:     pitch.ID,
			AtBatID:     atBatID,
			ContactType: input.ContactType,
			Direction:   input.Direction,
			IsOut:       input.IsOut,
			RunsScored:  input.RunsScored,
		}
		if err := tx.Create(p).Error; err != nil {
			return apperr.Store(err)
		}

		play = p
		return nil
	})
	return play, err
}
