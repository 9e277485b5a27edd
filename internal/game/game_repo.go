package game

import (
	"errors"

	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository defines the inning-clock operations over game state.
// Every operation that touches more than one row runs inside a single
// transaction; a partial failure leaves no sibling update committed.
type GameRepository interface {
	CreateGame(game *Game) error
	GetGameByID(id uuid.UUID) (*Game, error)
	StartGame(id uuid.UUID) (*Game, error)
	AdvanceInning(id uuid.UUID) (*Game, error)
	EndGame(id uuid.UUID) (*Game, error)
	ResumeGame(id uuid.UUID) (*Game, error)
	SetRunners(id uuid.UUID, runners models.BaseRunners) (*Game, error)
	UpdateScore(id uuid.UUID, homeScore, awayScore int) (*Game, error)
	ListInnings(gameID uuid.UUID) ([]Inning, error)
}

// GormGameRepository implements GameRepository using GORM.
type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// lockGame loads the game row under FOR UPDATE so concurrent writers to
// base_runners or the inning clock serialize.
func lockGame(tx *gorm.DB, id uuid.UUID) (*Game, error) {
	var g Game
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&g, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("game")
		}
		return nil, apperr.Store(err)
	}
	return &g, nil
}

// CreateGame inserts a new scheduled game.
func (r *GormGameRepository) CreateGame(game *Game) error {
	if game.Status == "" {
		game.Status = StatusScheduled
	}
	if game.CurrentInning == 0 {
		game.CurrentInning = 1
	}
	if game.InningHalf == "" {
		game.InningHalf = HalfTop
	}
	if err := r.db.Create(game).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

// GetGameByID retrieves a game.
func (r *GormGameRepository) GetGameByID(id uuid.UUID) (*Game, error) {
	var g Game
	err := r.db.First(&g, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("game")
		}
		return nil, apperr.Store(err)
	}
	return &g, nil
}

// StartGame moves a scheduled game to in_progress and appends inning #1,
// top half, with the side derived from the home/away flag.
func (r *GormGameRepository) StartGame(id uuid.UUID) (*Game, error) {
	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}
		if g.Status != StatusScheduled {
			return apperr.Conflict("game is %s, only a scheduled game can start", g.Status)
		}

		g.Status = StatusInProgress
		g.CurrentInning = 1
		g.InningHalf = HalfTop
		g.BaseRunners = models.EmptyBases()
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}

		if err := tx.Create(newInningRow(g, 1, HalfTop)).Error; err != nil {
			return apperr.Store(err)
		}

		out = g
		return nil
	})
	return out, err
}

// AdvanceInning flips top -> bottom of the same inning, or bottom -> top of
// the next, resets base occupancy, and appends the new half-inning row.
func (r *GormGameRepository) AdvanceInning(id uuid.UUID) (*Game, error) {
	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}
		if g.Status != StatusInProgress {
			return apperr.Conflict("game is %s, innings advance only while in progress", g.Status)
		}

		g.CurrentInning, g.InningHalf = nextHalfInning(g.CurrentInning, g.InningHalf)
		g.BaseRunners = models.EmptyBases()
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}

		if err := tx.Create(newInningRow(g, g.CurrentInning, g.InningHalf)).Error; err != nil {
			return apperr.Store(err)
		}

		out = g
		return nil
	})
	return out, err
}

// EndGame freezes the current inning/half as history and marks the game
// completed.
func (r *GormGameRepository) EndGame(id uuid.UUID) (*Game, error) {
	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}
		if g.Status != StatusInProgress {
			return apperr.Conflict("game is %s, only an in-progress game can end", g.Status)
		}

		g.Status = StatusCompleted
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}
		out = g
		return nil
	})
	return out, err
}

// ResumeGame returns a completed game to in_progress for post-hoc
// corrections. No new inning row is created.
func (r *GormGameRepository) ResumeGame(id uuid.UUID) (*Game, error) {
	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}
		if g.Status != StatusCompleted {
			return apperr.Conflict("game is %s, only a completed game can resume", g.Status)
		}

		g.Status = StatusInProgress
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}
		out = g
		return nil
	})
	return out, err
}

// SetRunners overwrites base occupancy unconditionally. The shape is
// validated at the boundary; here the snapshot is trusted.
func (r *GormGameRepository) SetRunners(id uuid.UUID, runners models.BaseRunners) (*Game, error) {
	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}

		g.BaseRunners = runners
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}
		out = g
		return nil
	})
	return out, err
}

// UpdateScore sets both scores.
func (r *GormGameRepository) UpdateScore(id uuid.UUID, homeScore, awayScore int) (*Game, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, apperr.Validation("scores must be non-negative")
	}

	var out *Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := lockGame(tx, id)
		if err != nil {
			return err
		}

		g.HomeScore = homeScore
		g.AwayScore = awayScore
		if err := tx.Save(g).Error; err != nil {
			return apperr.Store(err)
		}
		out = g
		return nil
	})
	return out, err
}

// ListInnings returns the half-inning history ordered by number with top
// before bottom.
func (r *GormGameRepository) ListInnings(gameID uuid.UUID) ([]Inning, error) {
	var innings []Inning
	err := r.db.Where("game_id = ?", gameID).
		Order("inning_number asc").
		Order("CASE half WHEN 'top' THEN 0 ELSE 1 END asc").
		Find(&innings).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return innings, nil
}
