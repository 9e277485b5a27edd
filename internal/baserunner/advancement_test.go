package baserunner

import (
	"testing"

	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/apperr"
)

func TestSuggestAdvancement(t *testing.T) {
	loaded := models.BaseRunners{First: true, Second: true, Third: true}
	empty := models.EmptyBases()

	cases := []struct {
		name     string
		current  models.BaseRunners
		result   rules.Result
		want     models.BaseRunners
		wantRuns int
		wantOut  bool
	}{
		{"single empty bases", empty, rules.ResultSingle,
			models.BaseRunners{First: true}, 0, false},
		{"single bases loaded", loaded, rules.ResultSingle,
			loaded, 1, false},
		{"single runner on second", models.BaseRunners{Second: true}, rules.ResultSingle,
			models.BaseRunners{First: true, Third: true}, 0, false},
		{"double runner on first", models.BaseRunners{First: true}, rules.ResultDouble,
			models.BaseRunners{Second: true, Third: true}, 0, false},
		{"double runners on second and third", models.BaseRunners{Second: true, Third: true}, rules.ResultDouble,
			models.BaseRunners{Second: true}, 2, false},
		{"triple bases loaded", loaded, rules.ResultTriple,
			models.BaseRunners{Third: true}, 3, false},
		{"home run bases loaded", loaded, rules.ResultHomeRun,
			empty, 4, false},
		{"home run solo", empty, rules.ResultHomeRun,
			empty, 1, false},
		{"walk empty bases", empty, rules.ResultWalk,
			models.BaseRunners{First: true}, 0, false},
		{"walk unforced runner holds", models.BaseRunners{Second: true}, rules.ResultWalk,
			models.BaseRunners{First: true, Second: true}, 0, false},
		{"walk bases loaded forces in a run", loaded, rules.ResultWalk,
			loaded, 1, false},
		{"hit by pitch first and second", models.BaseRunners{First: true, Second: true}, rules.ResultHitByPitch,
			loaded, 0, false},
		{"sacrifice fly runner on third", models.BaseRunners{First: true, Third: true}, rules.ResultSacrificeFly,
			models.BaseRunners{First: true}, 1, true},
		{"sacrifice bunt runners advance", models.BaseRunners{First: true, Second: true}, rules.ResultSacrificeBunt,
			models.BaseRunners{Second: true, Third: true}, 0, true},
		{"fielders choice batter reaches", models.BaseRunners{First: true}, rules.ResultFieldersChoice,
			models.BaseRunners{First: true, Second: true}, 0, false},
		{"error advances like a single", models.BaseRunners{Third: true}, rules.ResultError,
			models.BaseRunners{First: true}, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SuggestAdvancement(tc.current, tc.result)
			if err != nil {
				t.Fatalf("SuggestAdvancement: %v", err)
			}
			if got.Runners != tc.want {
				t.Errorf("runners = %+v, want %+v", got.Runners, tc.want)
			}
			if got.RunsScored != tc.wantRuns {
				t.Errorf("runs = %d, want %d", got.RunsScored, tc.wantRuns)
			}
			if got.BatterOut != tc.wantOut {
				t.Errorf("batter_out = %v, want %v", got.BatterOut, tc.wantOut)
			}
		})
	}
}

func TestSuggestAdvancementUnsupportedResult(t *testing.T) {
	_, err := SuggestAdvancement(models.EmptyBases(), rules.ResultStrikeout)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for strikeout, got %v", err)
	}
}
