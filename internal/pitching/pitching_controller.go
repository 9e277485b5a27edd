package pitching

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/dugoutlabs/dugout/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PitchingController handles pitcher rotation HTTP requests.
type PitchingController struct {
	repo      PitchingRepository
	publisher *live.Publisher
}

func NewPitchingController(repo PitchingRepository, publisher *live.Publisher) *PitchingController {
	return &PitchingController{repo: repo, publisher: publisher}
}

// AddPitcherInput appends a pitcher to the rotation.
type AddPitcherInput struct {
	PlayerID      uuid.UUID `json:"player_id" binding:"required"`
	PitchingOrder int       `json:"pitching_order" binding:"required,gte=1"`
	InningEntered int       `json:"inning_entered" binding:"required,gte=1"`
}

// ChangePitcherInput swaps the active pitcher.
type ChangePitcherInput struct {
	PlayerID      uuid.UUID `json:"player_id" binding:"required"`
	InningEntered int       `json:"inning_entered" binding:"required,gte=1"`
}

// AddPitcher godoc
// @Summary Add a pitcher to the rotation
// @Tags pitchers
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param pitcher body AddPitcherInput true "Pitcher information"
// @Success 201 {object} responses.SuccessResponse{data=GamePitcher}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "A pitcher is already active"
// @Router /games/{game_id}/pitchers [post]
// @Security Bearer
func (c *PitchingController) AddPitcher(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	var input AddPitcherInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	gp := &GamePitcher{
		GameID:        gameID,
		PlayerID:      input.PlayerID,
		PitchingOrder: input.PitchingOrder,
		InningEntered: input.InningEntered,
	}
	if err := c.repo.AddPitcher(gp); err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), gameID, "pitcher_added", gp)
	responses.SendSuccess(ctx, http.StatusCreated, "Pitcher added", gp)
}

// GetCurrentPitcher godoc
// @Summary Get the active pitcher
// @Tags pitchers
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=GamePitcher}
// @Failure 404 {object} responses.ErrorResponse "No active pitcher"
// @Router /games/{game_id}/pitchers/current [get]
// @Security Bearer
func (c *PitchingController) GetCurrentPitcher(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	gp, err := c.repo.GetCurrentPitcher(gameID)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", gp)
}

// ChangePitcher godoc
// @Summary Change the active pitcher
// @Description Closes the open rotation row and appends the reliever in one transaction
// @Tags pitchers
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param change body ChangePitcherInput true "Reliever information"
// @Success 200 {object} responses.SuccessResponse{data=GamePitcher}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "No open pitcher to close"
// @Router /games/{game_id}/pitchers/change [post]
// @Security Bearer
func (c *PitchingController) ChangePitcher(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	var input ChangePitcherInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	gp, err := c.repo.ChangePitcher(gameID, input.PlayerID, input.InningEntered)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), gameID, "pitcher_changed", gp)
	responses.SendSuccess(ctx, http.StatusOK, "Pitcher changed", gp)
}

// ListPitchers godoc
// @Summary List the pitching rotation
// @Tags pitchers
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=[]GamePitcher}
// @Failure 400 {object} responses.ErrorResponse "Invalid game ID"
// @Router /games/{game_id}/pitchers [get]
// @Security Bearer
func (c *PitchingController) ListPitchers(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	pitchers, err := c.repo.ListPitchers(gameID)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", pitchers)
}
