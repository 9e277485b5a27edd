package baserunner

import (
	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/apperr"
)

// Advancement is the advisory default placement after a hit or award.
// It is never written to the game; the scorer confirms or overrides and
// then calls the runner setter.
type Advancement struct {
	Runners    models.BaseRunners `json:"runners"`
	RunsScored int                `json:"runs_scored"`
	BatterOut  bool               `json:"batter_out"`
}

func runnersOn(r models.BaseRunners) int {
	n := 0
	if r.First {
		n++
	}
	if r.Second {
		n++
	}
	if r.Third {
		n++
	}
	return n
}

// SuggestAdvancement returns the textbook post-play occupancy and runs for
// the given result. Pure and deterministic; unsupported results are a
// validation error so the caller knows the table has no opinion.
func SuggestAdvancement(current models.BaseRunners, result rules.Result) (Advancement, error) {
	switch result {
	case rules.ResultSingle, rules.ResultError:
		// Batter to first, everyone moves up one.
		runs := 0
		if current.Third {
			runs = 1
		}
		return Advancement{
			Runners:    models.BaseRunners{First: true, Second: current.First, Third: current.Second},
			RunsScored: runs,
		}, nil

	case rules.ResultDouble:
		runs := 0
		if current.Second {
			runs++
		}
		if current.Third {
			runs++
		}
		return Advancement{
			Runners:    models.BaseRunners{Second: true, Third: current.First},
			RunsScored: runs,
		}, nil

	case rules.ResultTriple:
		return Advancement{
			Runners:    models.BaseRunners{Third: true},
			RunsScored: runnersOn(current),
		}, nil

	case rules.ResultHomeRun:
		return Advancement{
			Runners:    models.EmptyBases(),
			RunsScored: runnersOn(current) + 1,
		}, nil

	case rules.ResultWalk, rules.ResultHitByPitch:
		// Only forced runners move.
		next := models.BaseRunners{First: true, Second: current.Second, Third: current.Third}
		runs := 0
		if current.First {
			next.Second = true
			if current.Second {
				next.Third = true
				if current.Third {
					runs = 1
				}
			} else {
				next.Third = current.Third
			}
		}
		return Advancement{Runners: next, RunsScored: runs}, nil

	case rules.ResultSacrificeFly:
		// Runner on third tags and scores, others hold.
		runs := 0
		if current.Third {
			runs = 1
		}
		return Advancement{
			Runners:    models.BaseRunners{First: current.First, Second: current.Second},
			RunsScored: runs,
			BatterOut:  true,
		}, nil

	case rules.ResultSacrificeBunt:
		runs := 0
		if current.Third {
			runs = 1
		}
		return Advancement{
			Runners:    models.BaseRunners{Second: current.First, Third: current.Second},
			RunsScored: runs,
			BatterOut:  true,
		}, nil

	case rules.ResultFieldersChoice:
		// Batter reaches first; the table does not guess which runner was
		// retired, so existing runners advance one and the scorer records
		// the out separately.
		runs := 0
		if current.Third {
			runs = 1
		}
		return Advancement{
			Runners:    models.BaseRunners{First: true, Second: current.First, Third: current.Second},
			RunsScored: runs,
		}, nil
	}

	return Advancement{}, apperr.Validation("no advancement suggestion for result %q", result)
}
