package game

import (
	"net/http"
	"time"

	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/dugoutlabs/dugout/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameController handles game lifecycle and inning-clock HTTP requests.
type GameController struct {
	repo      GameRepository
	publisher *live.Publisher
}

func NewGameController(repo GameRepository, publisher *live.Publisher) *GameController {
	return &GameController{repo: repo, publisher: publisher}
}

// CreateGameInput is the payload for scheduling a game.
type CreateGameInput struct {
	TeamID       uuid.UUID  `json:"team_id" binding:"required"`
	AwayTeamID   *uuid.UUID `json:"away_team_id"`
	OpponentName string     `json:"opponent_name"`
	IsHomeGame   *bool      `json:"is_home_game" binding:"required"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
}

// UpdateScoreInput sets both scores.
type UpdateScoreInput struct {
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}

func parseGameID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateGame godoc
// @Summary Schedule a game
// @Description Create a new game in scheduled status
// @Tags games
// @Accept json
// @Produce json
// @Param game body CreateGameInput true "Game information"
// @Success 201 {object} responses.SuccessResponse{data=Game}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Router /games [post]
// @Security Bearer
func (c *GameController) CreateGame(ctx *gin.Context) {
	var input CreateGameInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	if input.AwayTeamID == nil && input.OpponentName == "" {
		responses.BadRequest(ctx, "either away_team_id or opponent_name is required")
		return
	}

	g := &Game{
		TeamID:       input.TeamID,
		AwayTeamID:   input.AwayTeamID,
		OpponentName: input.OpponentName,
		IsHomeGame:   *input.IsHomeGame,
		ScheduledAt:  input.ScheduledAt,
		Location:     input.Location,
		Notes:        input.Notes,
	}

	if err := c.repo.CreateGame(g); err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "Game scheduled", g)
}

// GetGame godoc
// @Summary Get a game
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Router /games/{game_id} [get]
// @Security Bearer
func (c *GameController) GetGame(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	g, err := c.repo.GetGameByID(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", g)
}

// StartGame godoc
// @Summary Start a game
// @Description Move a scheduled game to in_progress and open the top of the 1st
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Failure 409 {object} responses.ErrorResponse "Game already started"
// @Router /games/{game_id}/start [post]
// @Security Bearer
func (c *GameController) StartGame(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	g, err := c.repo.StartGame(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), g.ID, "game_started", g)
	responses.SendSuccess(ctx, http.StatusOK, "Game started", g)
}

// AdvanceInning godoc
// @Summary Advance the half-inning
// @Description Flip top to bottom, or bottom to the top of the next inning; resets base runners
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Failure 409 {object} responses.ErrorResponse "Game not in progress"
// @Router /games/{game_id}/advance-inning [post]
// @Security Bearer
func (c *GameController) AdvanceInning(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	g, err := c.repo.AdvanceInning(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), g.ID, "inning_advanced", g)
	responses.SendSuccess(ctx, http.StatusOK, "Inning advanced", g)
}

// EndGame godoc
// @Summary End a game
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Failure 409 {object} responses.ErrorResponse "Game not in progress"
// @Router /games/{game_id}/end [post]
// @Security Bearer
func (c *GameController) EndGame(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	g, err := c.repo.EndGame(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), g.ID, "game_ended", g)
	responses.SendSuccess(ctx, http.StatusOK, "Game ended", g)
}

// ResumeGame godoc
// @Summary Resume a completed game
// @Description Return a completed game to in_progress for corrections
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Failure 409 {object} responses.ErrorResponse "Game not completed"
// @Router /games/{game_id}/resume [post]
// @Security Bearer
func (c *GameController) ResumeGame(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	g, err := c.repo.ResumeGame(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), g.ID, "game_resumed", g)
	responses.SendSuccess(ctx, http.StatusOK, "Game resumed", g)
}

// UpdateScore godoc
// @Summary Set the score
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param score body UpdateScoreInput true "Scores"
// @Success 200 {object} responses.SuccessResponse{data=Game}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Router /games/{game_id}/score [put]
// @Security Bearer
func (c *GameController) UpdateScore(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	var input UpdateScoreInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	g, err := c.repo.UpdateScore(id, *input.HomeScore, *input.AwayScore)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), g.ID, "score_updated", g)
	responses.SendSuccess(ctx, http.StatusOK, "Score updated", g)
}

// ListInnings godoc
// @Summary List half-inning history
// @Tags games
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Inning}
// @Failure 400 {object} responses.ErrorResponse "Invalid game ID"
// @Router /games/{game_id}/innings [get]
// @Security Bearer
func (c *GameController) ListInnings(ctx *gin.Context) {
	id, ok := parseGameID(ctx, "game_id")
	if !ok {
		return
	}

	innings, err := c.repo.ListInnings(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", innings)
}
