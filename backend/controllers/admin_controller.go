package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sprintforge/backend/config"
	"sprintforge/backend/middleware"
	"sprintforge/backend/services"
	"sprintforge/backend/utils"
)

// AdminController holds the maintenance operations. Streak repair used to
// be an ad-hoc console hook; it is now a proper endpoint so every
// invocation is authenticated and leaves an audit trail.
type AdminController struct {
	Cfg        *config.Config
	Reconciler *services.StreakReconciler
	Logger     *log.Logger
}

func NewAdminController(cfg *config.Config, reconciler *services.StreakReconciler, logger *log.Logger) *AdminController {
	return &AdminController{Cfg: cfg, Reconciler: reconciler, Logger: logger}
}

// RepairStreak godoc
// @Summary Rebuild a user's streak from activity history
// @Description Destructive repair: overwrites the streak record with values recomputed from completions
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id}/streak/repair [post]
func (ac *AdminController) RepairStreak(c *fiber.Ctx) error {
	adminID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	targetID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	ac.Logger.Printf("audit request=%s admin=%d action=streak_repair target=%d",
		middleware.RequestID(c), adminID, targetID)

	streak, err := ac.Reconciler.RepairStreak(c.Context(), uint(targetID))
	if err != nil {
		ac.Logger.Printf("audit request=%s admin=%d action=streak_repair target=%d result=error err=%v",
			middleware.RequestID(c), adminID, targetID, err)
		return serviceError(c, err)
	}

	ac.Logger.Printf("audit request=%s admin=%d action=streak_repair target=%d result=ok current=%d longest=%d",
		middleware.RequestID(c), adminID, targetID, streak.CurrentStreak, streak.LongestStreak)

	return c.JSON(fiber.Map{
		"message": "Streak repaired",
		"streak":  streak,
	})
}
