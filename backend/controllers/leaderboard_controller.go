package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sprintforge/backend/config"
	"sprintforge/backend/services"
	"sprintforge/backend/utils"
)

type LeaderboardController struct {
	Cfg   *config.Config
	Board *services.Leaderboard
}

func NewLeaderboardController(cfg *config.Config, board *services.Leaderboard) *LeaderboardController {
	return &LeaderboardController{Cfg: cfg, Board: board}
}

// GetLeaderboard godoc
// @Summary Top streaks across the platform
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	entries, err := lc.Board.TopStreaks(c.Context(), limit)
	if err != nil {
		return utils.RetryableError(c, fiber.StatusInternalServerError, "Temporary storage failure, please retry")
	}

	return c.JSON(fiber.Map{
		"leaderboard": entries,
	})
}
