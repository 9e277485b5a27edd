package pitching

import (
	"errors"

	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PitchingRepository is the append-only pitcher rotation with its derived
// current-pitcher view.
type PitchingRepository interface {
	AddPitcher(gp *GamePitcher) error
	GetCurrentPitcher(gameID uuid.UUID) (*GamePitcher, error)
	ChangePitcher(gameID, playerID uuid.UUID, inningEntered int) (*GamePitcher, error)
	ListPitchers(gameID uuid.UUID) ([]GamePitcher, error)
}

// GormPitchingRepository implements PitchingRepository using GORM.
type GormPitchingRepository struct {
	db *gorm.DB
}

func NewGormPitchingRepository(db *gorm.DB) *GormPitchingRepository {
	return &GormPitchingRepository{db: db}
}

// AddPitcher appends a rotation row. Refused while another pitcher is
// open: a second open row would break the one-active-pitcher invariant,
// so relief work goes through ChangePitcher.
func (r *GormPitchingRepository) AddPitcher(gp *GamePitcher) error {
	if gp.GameID == uuid.Nil || gp.PlayerID == uuid.Nil {
		return apperr.Validation("game_id and player_id are required")
	}
	if gp.PitchingOrder < 1 {
		return apperr.Validation("pitching_order must be at least 1")
	}
	if gp.InningEntered < 1 {
		return apperr.Validation("inning_entered must be at least 1")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var open GamePitcher
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game_id = ? AND inning_exited IS NULL", gp.GameID).
			First(&open).Error
		if err == nil {
			return apperr.Conflict("a pitcher is already active for this game, use change")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Store(err)
		}
		if err := tx.Create(gp).Error; err != nil {
			return apperr.Store(err)
		}
		return nil
	})
}

// GetCurrentPitcher returns the open rotation row with the highest order.
func (r *GormPitchingRepository) GetCurrentPitcher(gameID uuid.UUID) (*GamePitcher, error) {
	var gp GamePitcher
	err := r.db.Where("game_id = ? AND inning_exited IS NULL", gameID).
		Order("pitching_order desc").
		First(&gp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("current pitcher")
		}
		return nil, apperr.Store(err)
	}
	return &gp, nil
}

// ChangePitcher closes the open rotation row and appends the reliever in
// one transaction. The FOR UPDATE lock on the open row serializes
// concurrent changes; without it two callers could both read the same
// open row and leave two pitchers active.
func (r *GormPitchingRepository) ChangePitcher(gameID, playerID uuid.UUID, inningEntered int) (*GamePitcher, error) {
	if playerID == uuid.Nil {
		return nil, apperr.Validation("player_id is required")
	}
	if inningEntered < 1 {
		return nil, apperr.Validation("inning_entered must be at least 1")
	}

	var next *GamePitcher
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current GamePitcher
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game_id = ? AND inning_exited IS NULL", gameID).
			Order("pitching_order desc").
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Conflict("no open pitcher to close for this game")
			}
			return apperr.Store(err)
		}

		current.InningExited = &inningEntered
		if err := tx.Save(&current).Error; err != nil {
			return apperr.Store(err)
		}

		gp := &GamePitcher{
			GameID:        gameID,
			PlayerID:      playerID,
			PitchingOrder: current.PitchingOrder + 1,
			InningEntered: inningEntered,
		}
		if err := tx.Create(gp).Error; err != nil {
			return apperr.Store(err)
		}

		next = gp
		return nil
	})
	return next, err
}

// ListPitchers returns the rotation in order of appearance.
func (r *GormPitchingRepository) ListPitchers(gameID uuid.UUID) ([]GamePitcher, error) {
	var pitchers []GamePitcher
	err := r.db.Where("game_id = ?", gameID).Order("pitching_order asc").Find(&pitchers).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return pitchers, nil
}
