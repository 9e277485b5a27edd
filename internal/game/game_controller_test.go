package game

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeGameRepo keeps games in memory with the same lifecycle and
// inning-clock semantics the Gorm repository enforces, minus the row
// locking.
type fakeGameRepo struct {
	games   map[uuid.UUID]*Game
	innings []Inning
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[uuid.UUID]*Game)}
}

func (f *fakeGameRepo) CreateGame(g *Game) error {
	g.ID = uuid.New()
	if g.Status == "" {
		g.Status = StatusScheduled
	}
	if g.CurrentInning == 0 {
		g.CurrentInning = 1
	}
	if g.InningHalf == "" {
		g.InningHalf = HalfTop
	}
	f.games[g.ID] = g
	return nil
}

func (f *fakeGameRepo) GetGameByID(id uuid.UUID) (*Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, apperr.NotFound("game")
	}
	return g, nil
}

func (f *fakeGameRepo) StartGame(id uuid.UUID) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusScheduled {
		return nil, apperr.Conflict("game is %s, only a scheduled game can start", g.Status)
	}
	g.Status = StatusInProgress
	g.CurrentInning = 1
	g.InningHalf = HalfTop
	g.BaseRunners = models.EmptyBases()
	f.innings = append(f.innings, *newInningRow(g, 1, HalfTop))
	return g, nil
}

func (f *fakeGameRepo) AdvanceInning(id uuid.UUID) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.Conflict("game is %s, innings advance only while in progress", g.Status)
	}
	g.CurrentInning, g.InningHalf = nextHalfInning(g.CurrentInning, g.InningHalf)
	g.BaseRunners = models.EmptyBases()
	f.innings = append(f.innings, *newInningRow(g, g.CurrentInning, g.InningHalf))
	return g, nil
}

func (f *fakeGameRepo) EndGame(id uuid.UUID) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.Conflict("game is %s, only an in-progress game can end", g.Status)
	}
	g.Status = StatusCompleted
	return g, nil
}

func (f *fakeGameRepo) ResumeGame(id uuid.UUID) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusCompleted {
		return nil, apperr.Conflict("game is %s, only a completed game can resume", g.Status)
	}
	g.Status = StatusInProgress
	return g, nil
}

func (f *fakeGameRepo) SetRunners(id uuid.UUID, runners models.BaseRunners) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	g.BaseRunners = runners
	return g, nil
}

func (f *fakeGameRepo) UpdateScore(id uuid.UUID, homeScore, awayScore int) (*Game, error) {
	g, err := f.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	g.HomeScore = homeScore
	g.AwayScore = awayScore
	return g, nil
}

func (f *fakeGameRepo) ListInnings(gameID uuid.UUID) ([]Inning, error) {
	var out []Inning
	for _, in := range f.innings {
		if in.GameID == gameID {
			out = append(out, in)
		}
	}
	return out, nil
}

func newGameRouter(repo GameRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewGameController(repo, nil)
	r.POST("/games/:game_id/start", controller.StartGame)
	r.POST("/games/:game_id/advance-inning", controller.AdvanceInning)
	return r
}

func post(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func inProgressGame(t *testing.T, repo *fakeGameRepo) *Game {
	t.Helper()
	away := uuid.New()
	g := &Game{
		TeamID:     uuid.New(),
		AwayTeamID: &away,
		IsHomeGame: true,
		Status:     StatusInProgress,
	}
	if err := repo.CreateGame(g); err != nil {
		t.Fatalf("create game: %v", err)
	}
	return g
}

func TestAdvanceInningResetsRunners(t *testing.T) {
	repo := newFakeGameRepo()
	r := newGameRouter(repo)
	g := inProgressGame(t, repo)
	g.CurrentInning = 1
	g.InningHalf = HalfBottom
	g.BaseRunners = models.BaseRunners{First: true, Second: true, Third: true}

	w := post(t, r, "/games/"+g.ID.String()+"/advance-inning")
	if w.Code != http.StatusOK {
		t.Fatalf("advance inning status = %d, body %s", w.Code, w.Body.String())
	}

	if g.CurrentInning != 2 || g.InningHalf != HalfTop {
		t.Errorf("after bottom of the 1st: inning %d %s, want 2 top", g.CurrentInning, g.InningHalf)
	}
	if g.BaseRunners != models.EmptyBases() {
		t.Errorf("runners after advance = %+v, want all clear", g.BaseRunners)
	}

	innings, _ := repo.ListInnings(g.ID)
	if len(innings) != 1 || innings[0].InningNumber != 2 || innings[0].Half != HalfTop {
		t.Errorf("inning rows after advance = %+v, want one row for 2 top", innings)
	}
}

func TestStartGameResetsRunners(t *testing.T) {
	repo := newFakeGameRepo()
	r := newGameRouter(repo)
	away := uuid.New()
	g := &Game{
		TeamID:     uuid.New(),
		AwayTeamID: &away,
		IsHomeGame: true,
	}
	if err := repo.CreateGame(g); err != nil {
		t.Fatalf("create game: %v", err)
	}
	// Stale occupancy from a previous data entry mistake.
	g.BaseRunners = models.BaseRunners{Second: true}

	w := post(t, r, "/games/"+g.ID.String()+"/start")
	if w.Code != http.StatusOK {
		t.Fatalf("start game status = %d, body %s", w.Code, w.Body.String())
	}

	if g.Status != StatusInProgress || g.CurrentInning != 1 || g.InningHalf != HalfTop {
		t.Errorf("after start: %s inning %d %s, want in_progress 1 top", g.Status, g.CurrentInning, g.InningHalf)
	}
	if g.BaseRunners != models.EmptyBases() {
		t.Errorf("runners after start = %+v, want all clear", g.BaseRunners)
	}

	w = post(t, r, "/games/"+g.ID.String()+"/start")
	if w.Code != http.StatusConflict {
		t.Errorf("second start status = %d, want 409", w.Code)
	}
}
