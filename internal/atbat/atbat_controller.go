package atbat

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/live"
	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AtBatController handles at-bat ledger HTTP requests.
type AtBatController struct {
	repo      AtBatRepository
	publisher *live.Publisher
}

func NewAtBatController(repo AtBatRepository, publisher *live.Publisher) *AtBatController {
	return &AtBatController{repo: repo, publisher: publisher}
}

// CreateAtBatInput opens a new at-bat.
type CreateAtBatInput struct {
	InningID     uuid.UUID `json:"inning_id" binding:"required"`
	BatterID     uuid.UUID `json:"batter_id" binding:"required"`
	PitcherID    uuid.UUID `json:"pitcher_id" binding:"required"`
	BattingOrder int       `json:"batting_order" binding:"required,gte=1,lte=9"`
	OutsBefore   *int      `json:"outs_before" binding:"required,gte=0,lte=2"`
}

// EndAtBatInput closes an at-bat.
type EndAtBatInput struct {
	Result     rules.Result `json:"result" binding:"required"`
	OutsAfter  *int         `json:"outs_after" binding:"required,gte=0,lte=5"`
	RBI        int          `json:"rbi" binding:"gte=0"`
	RunsScored int          `json:"runs_scored" binding:"gte=0"`
}

// CreateAtBat godoc
// @Summary Open a new at-bat
// @Tags at-bats
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param at_bat body CreateAtBatInput true "At-bat information"
// @Success 201 {object} responses.SuccessResponse{data=AtBat}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Router /games/{game_id}/at-bats [post]
// @Security Bearer
func (c *AtBatController) CreateAtBat(ctx *gin.Context) {
	gameID, err := uuid.Parse(ctx.Param("game_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid game ID")
		return
	}

	var input CreateAtBatInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	ab := &AtBat{
		GameID:       gameID,
		InningID:     input.InningID,
		BatterID:     input.BatterID,
		PitcherID:    input.PitcherID,
		BattingOrder: input.BattingOrder,
		OutsBefore:   *input.OutsBefore,
	}
	if err := c.repo.CreateAtBat(ab); err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), gameID, "at_bat_started", ab)
	responses.SendSuccess(ctx, http.StatusCreated, "At-bat started", ab)
}

// GetAtBat godoc
// @Summary Get an at-bat with its pitches
// @Tags at-bats
// @Produce json
// @Param at_bat_id path string true "At-bat ID"
// @Success 200 {object} responses.SuccessResponse{data=AtBat}
// @Failure 404 {object} responses.ErrorResponse "At-bat not found"
// @Router /at-bats/{at_bat_id} [get]
// @Security Bearer
func (c *AtBatController) GetAtBat(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("at_bat_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid at-bat ID")
		return
	}

	ab, err := c.repo.GetAtBatByID(id)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", ab)
}

// RecordPitch godoc
// @Summary Record a pitch
// @Description Appends the next pitch in sequence and updates the count; infers ball/called_strike from location when no result is supplied
// @Tags at-bats
// @Accept json
// @Produce json
// @Param at_bat_id path string true "At-bat ID"
// @Param pitch body PitchInput true "Pitch information"
// @Success 201 {object} responses.SuccessResponse{data=Pitch}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "At-bat not found"
// @Failure 409 {object} responses.ErrorResponse "At-bat already ended"
// @Router /at-bats/{at_bat_id}/pitches [post]
// @Security Bearer
func (c *AtBatController) RecordPitch(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("at_bat_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid at-bat ID")
		return
	}

	var input PitchInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	pitch, ab, err := c.repo.RecordPitch(id, input)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), ab.GameID, "pitch_recorded", gin.H{
		"pitch":  pitch,
		"at_bat": ab,
	})
	responses.SendSuccess(ctx, http.StatusCreated, "Pitch recorded", pitch)
}

// EndAtBat godoc
// @Summary Close an at-bat
// @Description Sets the terminal result and end time once; outs_after must equal outs_before plus the outs the result produces
// @Tags at-bats
// @Accept json
// @Produce json
// @Param at_bat_id path string true "At-bat ID"
// @Param result body EndAtBatInput true "Terminal result"
// @Success 200 {object} responses.SuccessResponse{data=AtBat}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "At-bat not found"
// @Failure 409 {object} responses.ErrorResponse "At-bat already ended"
// @Router /at-bats/{at_bat_id}/end [post]
// @Security Bearer
func (c *AtBatController) EndAtBat(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("at_bat_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid at-bat ID")
		return
	}

	var input EndAtBatInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	ab, err := c.repo.EndAtBat(id, input.Result, *input.OutsAfter, input.RBI, input.RunsScored)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	c.publisher.Publish(ctx.Request.Context(), ab.GameID, "at_bat_ended", ab)
	responses.SendSuccess(ctx, http.StatusOK, "At-bat ended", ab)
}

// RecordPlay godoc
// @Summary Record the contact outcome of an in_play pitch
// @Tags at-bats
// @Accept json
// @Produce json
// @Param at_bat_id path string true "At-bat ID"
// @Param play body PlayInput true "Play information"
// @Success 201 {object} responses.SuccessResponse{data=Play}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Pitch not found"
// @Router /at-bats/{at_bat_id}/plays [post]
// @Security Bearer
func (c *AtBatController) RecordPlay(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("at_bat_id"))
	if err != nil {
		responses.BadRequest(ctx, "invalid at-bat ID")
		return
	}

	var input PlayInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.ValidationFailed(ctx, err)
		return
	}

	play, err := c.repo.RecordPlay(id, input)
	if err != nil {
		responses.SendEngineError(ctx, err)
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "Play recorded", play)
}
