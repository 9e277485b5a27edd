package atbat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAtBatRepo implements AtBatRepository in memory with the same
// semantics the Gorm repository enforces, minus the row locking.
type fakeAtBatRepo struct {
	atBats  map[uuid.UUID]*AtBat
	pitches map[uuid.UUID][]Pitch
}

func newFakeAtBatRepo() *fakeAtBatRepo {
	return &fakeAtBatRepo{
		atBats:  make(map[uuid.UUID]*AtBat),
		pitches: make(map[uuid.UUID][]Pitch),
	}
}

func (f *fakeAtBatRepo) CreateAtBat(ab *AtBat) error {
	ab.ID = uuid.New()
	ab.OutsAfter = ab.OutsBefore
	f.atBats[ab.ID] = ab
	return nil
}

func (f *fakeAtBatRepo) GetAtBatByID(id uuid.UUID) (*AtBat, error) {
	ab, ok := f.atBats[id]
	if !ok {
		return nil, apperr.NotFound("at-bat")
	}
	return ab, nil
}

func (f *fakeAtBatRepo) RecordPitch(atBatID uuid.UUID, input PitchInput) (*Pitch, *AtBat, error) {
	result, err := resolvePitchResult(input)
	if err != nil {
		return nil, nil, err
	}
	ab, ok := f.atBats[atBatID]
	if !ok {
		return nil, nil, apperr.NotFound("at-bat")
	}
	if !ab.Open() {
		return nil, nil, apperr.Conflict("at-bat already ended")
	}
	p := Pitch{
		AtBatID:     atBatID,
		PitchNumber: len(f.pitches[atBatID]) + 1,
		Result:      result,
	}
	p.ID = uuid.New()
	f.pitches[atBatID] = append(f.pitches[atBatID], p)
	ab.Balls, ab.Strikes = nextCount(ab.Balls, ab.Strikes, result)
	return &p, ab, nil
}

func (f *fakeAtBatRepo) EndAtBat(atBatID uuid.UUID, result rules.Result, outsAfter, rbi, runsScored int) (*AtBat, error) {
	ab, ok := f.atBats[atBatID]
	if !ok {
		return nil, apperr.NotFound("at-bat")
	}
	if !ab.Open() {
		return nil, apperr.Conflict("at-bat already ended")
	}
	if want := ab.OutsBefore + rules.OutsFor(result); outsAfter != want {
		return nil, apperr.Validation("outs_after must be %d", want)
	}
	now := time.Now()
	ab.Result = &result
	ab.OutsAfter = outsAfter
	ab.EndTime = &now
	return ab, nil
}

func (f *fakeAtBatRepo) RecordPlay(atBatID uuid.UUID, input PlayInput) (*Play, error) {
	return nil, apperr.NotFound("pitch")
}

func newTestRouter(repo AtBatRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewAtBatController(repo, nil)
	r.POST("/games/:game_id/at-bats", controller.CreateAtBat)
	r.POST("/at-bats/:at_bat_id/pitches", controller.RecordPitch)
	r.POST("/at-bats/:at_bat_id/end", controller.EndAtBat)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func openAtBat(t *testing.T, repo *fakeAtBatRepo, outsBefore int) *AtBat {
	t.Helper()
	ab := &AtBat{
		GameID:       uuid.New(),
		InningID:     uuid.New(),
		BatterID:     uuid.New(),
		PitcherID:    uuid.New(),
		BattingOrder: 1,
		OutsBefore:   outsBefore,
	}
	if err := repo.CreateAtBat(ab); err != nil {
		t.Fatalf("create at-bat: %v", err)
	}
	return ab
}

func TestRecordPitchUpdatesCount(t *testing.T) {
	repo := newFakeAtBatRepo()
	r := newTestRouter(repo)
	ab := openAtBat(t, repo, 0)

	w := postJSON(t, r, "/at-bats/"+ab.ID.String()+"/pitches", gin.H{"result": "ball"})
	if w.Code != http.StatusCreated {
		t.Fatalf("record pitch status = %d, body %s", w.Code, w.Body.String())
	}
	if ab.Balls != 1 || ab.Strikes != 0 {
		t.Errorf("count after ball = %d-%d, want 1-0", ab.Balls, ab.Strikes)
	}
	if got := len(repo.pitches[ab.ID]); got != 1 {
		t.Errorf("pitch count = %d, want 1", got)
	}
}

func TestRecordPitchInferredFromLocation(t *testing.T) {
	repo := newFakeAtBatRepo()
	r := newTestRouter(repo)
	ab := openAtBat(t, repo, 0)

	w := postJSON(t, r, "/at-bats/"+ab.ID.String()+"/pitches", gin.H{
		"location_x": -0.08,
		"location_y": 0.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record pitch status = %d, body %s", w.Code, w.Body.String())
	}
	if ab.Strikes != 1 {
		t.Errorf("edge pitch within ball radius should be a strike, count = %d-%d", ab.Balls, ab.Strikes)
	}
}

func TestRecordPitchOnClosedAtBatConflicts(t *testing.T) {
	repo := newFakeAtBatRepo()
	r := newTestRouter(repo)
	ab := openAtBat(t, repo, 0)

	w := postJSON(t, r, "/at-bats/"+ab.ID.String()+"/end", gin.H{
		"result": "strikeout", "outs_after": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("end at-bat status = %d, body %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/at-bats/"+ab.ID.String()+"/pitches", gin.H{"result": "ball"})
	if w.Code != http.StatusConflict {
		t.Errorf("pitch after end status = %d, want 409", w.Code)
	}
}

func TestEndAtBatValidatesOuts(t *testing.T) {
	repo := newFakeAtBatRepo()
	r := newTestRouter(repo)
	ab := openAtBat(t, repo, 1)

	// double_play from one out must land on three, not two
	w := postJSON(t, r, "/at-bats/"+ab.ID.String()+"/end", gin.H{
		"result": "double_play", "outs_after": 2,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mismatched outs_after status = %d, want 400", w.Code)
	}

	w = postJSON(t, r, "/at-bats/"+ab.ID.String()+"/end", gin.H{
		"result": "double_play", "outs_after": 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("correct outs_after status = %d, body %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/at-bats/"+ab.ID.String()+"/end", gin.H{
		"result": "strikeout", "outs_after": 2,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("second end status = %d, want 409", w.Code)
	}
}

func TestCreateAtBatRejectsBadBattingOrder(t *testing.T) {
	repo := newFakeAtBatRepo()
	r := newTestRouter(repo)

	w := postJSON(t, r, "/games/"+uuid.NewString()+"/at-bats", gin.H{
		"inning_id":     uuid.NewString(),
		"batter_id":     uuid.NewString(),
		"pitcher_id":    uuid.NewString(),
		"batting_order": 10,
		"outs_before":   0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("batting_order 10 status = %d, want 400", w.Code)
	}
}
