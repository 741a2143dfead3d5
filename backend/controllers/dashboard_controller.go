package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sprintforge/backend/config"
	"sprintforge/backend/models"
	"sprintforge/backend/services"
	"sprintforge/backend/utils"
)

type DashboardController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Tracker *services.StreakTracker
}

func NewDashboardController(db *gorm.DB, cfg *config.Config, tracker *services.StreakTracker) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg, Tracker: tracker}
}

// GetDashboard godoc
// @Summary Get the caller's dashboard
// @Description Streak counters plus every sprint the user has progress in
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	streak, err := dc.Tracker.GetStreak(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	var records []models.ProgressRecord
	if err := dc.DB.Where("user_id = ?", userID).
		Order("completed_date DESC").
		Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var sprints []fiber.Map
	for _, record := range records {
		var sprint models.Sprint
		if err := dc.DB.First(&sprint, record.SprintID).Error; err != nil {
			continue
		}

		sprints = append(sprints, fiber.Map{
			"sprint_id":      sprint.ID,
			"title":          sprint.Title,
			"logo_url":       sprint.LogoURL,
			"duration":       sprint.DurationDays,
			"current_day":    record.CurrentDay,
			"completed":      record.Completed,
			"started_at":     record.StartDate,
			"last_completed": record.CompletedDate,
		})
	}

	return c.JSON(fiber.Map{
		"streak":  streak,
		"sprints": sprints,
	})
}
