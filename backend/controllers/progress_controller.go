package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sprintforge/backend/config"
	"sprintforge/backend/services"
	"sprintforge/backend/store"
	"sprintforge/backend/utils"
)

type ProgressController struct {
	Cfg      *config.Config
	Store    store.ProgressStore
	Recorder *services.ProgressRecorder
	Tracker  *services.StreakTracker
}

func NewProgressController(cfg *config.Config, st store.ProgressStore, recorder *services.ProgressRecorder, tracker *services.StreakTracker) *ProgressController {
	return &ProgressController{Cfg: cfg, Store: st, Recorder: recorder, Tracker: tracker}
}

// MarkDayComplete godoc
// @Summary Mark today's challenge complete
// @Description Records completion for the sprint and updates the activity streak
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /sprints/{id}/complete [post]
func (pc *ProgressController) MarkDayComplete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	sprintID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid sprint ID")
	}

	// The client says which day it is marking; with no body the completion
	// is recorded against the current day pointer as-is.
	var input struct {
		Day int `json:"day"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}

	record, err := pc.Recorder.RecordCompletion(c.Context(), uint(sprintID), userID, input.Day)
	if err != nil {
		return serviceError(c, err)
	}

	streak, err := pc.Tracker.GetStreak(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Day marked complete",
		"progress": record,
		"streak":   streak,
	})
}

// GetSprintProgress godoc
// @Summary Get progress for one sprint
// @Tags progress
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /sprints/{id}/progress [get]
func (pc *ProgressController) GetSprintProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	sprintID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid sprint ID")
	}

	record, err := pc.Store.GetProgress(c.Context(), userID, uint(sprintID))
	if err != nil {
		return utils.RetryableError(c, fiber.StatusInternalServerError, "Temporary storage failure, please retry")
	}
	if record == nil {
		return utils.NotFound(c, "No progress for this sprint yet")
	}

	return c.JSON(fiber.Map{
		"progress": record,
	})
}

// GetStreak godoc
// @Summary Get the caller's activity streak
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /streak [get]
func (pc *ProgressController) GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	streak, err := pc.Tracker.GetStreak(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"streak": streak,
	})
}
