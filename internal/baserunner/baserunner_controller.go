package baserunner

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/game"
	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/dugoutlabs/dugout/internal/models"
	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaserunnerController handles baserunning HTTP requests.
type BaserunnerController struct {
	repo      BaserunnerRepository
	games     game.GameRepository
	publisher *live.Publisher
}

func NewBaserunnerController(repo BaserunnerRepository, games game.GameRepository, publisher *live.Publisher) *BaserunnerController {
	return &BaserunnerController{repo: repo, games: games, publisher: publisher}
}

// SetRunnersInput is the full occupancy snapshot. Pointer booleans so all
// three keys must be present: a partial snapshot is a validation error,
// not a merge.
type SetRunnersInput struct {
	First  *bool `json:"first" binding:"required"`
	Second *bool `json:"second" binding:"required"`
	Third  *bool `json:"third" binding:"required"`
}

// RecordOut godoc
// @Summary Record a baserunning out
// @Description Inserts the event and clears the runner's base in one transaction; clearing an already-clear base succeeds
// @Tags baserunners
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param event body OutInput true "Out information"
// @Success 201 {object} responses.SuccessResponse{data=BaserunnerEvent}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Router /games/{game_id}/baserunner-outs [post]
// @Security Bearer
func (c *BaserunnerController) RecordOut(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	var input OutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	event, g, err := c.repo.RecordOut(gameID, input)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), gameID, "baserunner_out", gin.H{
		"event": event,
		"game":  g,
	})
	responses.SendSuccess(ctx, http.StatusCreated, "Out recorded", event)
}

// SuggestAdvancement godoc
// @Summary Suggest default advancement for a hit
// @Description Advisory only: returns the textbook post-play occupancy and runs for the game's current runners; never writes state
// @Tags baserunners
// @Produce json
// @Param game_id path string true "Game ID"
// @Param hit query string true "Hit or award result (single, double, triple, home_run, walk, ...)"
// @Success 200 {object} responses.SuccessResponse{data=Advancement}
// @Failure 400 {object} responses.ErrorResponse "Unsupported result"
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Router /games/{game_id}/advancement [get]
// @Security Bearer
func (c *BaserunnerController) SuggestAdvancement(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	hit := ctx.Query("hit")
	if hit == "" {
		responses.BadRequest(ctx, "hit query parameter is required")
		return
	}

	g, err := c.games.GetGameByID(gameID)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	suggestion, err := SuggestAdvancement(g.BaseRunners, rules.Result(hit))
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", suggestion)
}

// SetRunners godoc
// @Summary Overwrite base occupancy
// @Description Unconditional overwrite of the three-base snapshot, used after the scorer confirms or corrects placement
// @Tags baserunners
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param runners body SetRunnersInput true "Occupancy snapshot"
// @Success 200 {object} responses.SuccessResponse{data=game.Game}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Game not found"
// @Router /games/{game_id}/runners [put]
// @Security Bearer
func (c *BaserunnerController) SetRunners(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	var input SetRunnersInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	g, err := c.games.SetRunners(gameID, models.BaseRunners{
		First:  *input.First,
		Second: *input.Second,
		Third:  *input.Third,
	})
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), gameID, "runners_set", g)
	responses.SendSuccess(ctx, http.StatusOK, "Runners updated", g)
}

// ListEvents godoc
// @Summary List baserunning outs for a game
// @Tags baserunners
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=[]BaserunnerEvent}
// @Failure 400 {object} responses.ErrorResponse "Invalid game ID"
// @Router /games/{game_id}/baserunner-outs [get]
// @Security Bearer
func (c *BaserunnerController) ListEvents(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	events, err := c.repo.ListEvents(gameID)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", events)
}
