package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sprintforge/backend/config"
	"sprintforge/backend/models"
	"sprintforge/backend/services"
	"sprintforge/backend/utils"
)

type SprintsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSprintsController(db *gorm.DB, cfg *config.Config) *SprintsController {
	return &SprintsController{DB: db, Cfg: cfg}
}

func (sc *SprintsController) GetSprints(c *fiber.Ctx) error {
	difficulty := c.Query("difficulty")

	query := sc.DB.Model(&models.Sprint{})
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var sprints []models.Sprint
	if err := query.Order("created_at DESC").Find(&sprints).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var result []fiber.Map
	for _, sprint := range sprints {
		var participants int64
		sc.DB.Model(&models.ProgressRecord{}).
			Where("sprint_id = ?", sprint.ID).
			Count(&participants)

		result = append(result, fiber.Map{
			"id":           sprint.ID,
			"title":        sprint.Title,
			"short_desc":   sprint.ShortDesc,
			"difficulty":   sprint.Difficulty,
			"duration":     sprint.DurationDays,
			"logo_url":     sprint.LogoURL,
			"participants": participants,
		})
	}

	return c.JSON(result)
}

func (sc *SprintsController) GetSprintDetails(c *fiber.Ctx) error {
	sprintID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid sprint ID")
	}

	var sprint models.Sprint
	if err := sc.DB.Preload("Challenges", func(db *gorm.DB) *gorm.DB {
		return db.Order("challenges.day")
	}).First(&sprint, sprintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Sprint not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	challenges := make([]fiber.Map, 0, len(sprint.Challenges))
	for _, ch := range sprint.Challenges {
		challenges = append(challenges, fiber.Map{
			"id":          ch.ID,
			"day":         ch.Day,
			"title":       ch.Title,
			"description": ch.Description,
			"resources":   services.ParseResources(ch.Resources),
		})
	}

	return c.JSON(fiber.Map{
		"sprint": fiber.Map{
			"id":          sprint.ID,
			"title":       sprint.Title,
			"short_desc":  sprint.ShortDesc,
			"description": sprint.Description,
			"difficulty":  sprint.Difficulty,
			"duration":    sprint.DurationDays,
			"logo_url":    sprint.LogoURL,
			"challenges":  challenges,
		},
	})
}

// CreateSprint godoc
// @Summary Create a sprint
// @Tags admin
// @Accept json
// @Produce json
// @Param sprint body models.Sprint true "Sprint definition"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/sprints [post]
func (sc *SprintsController) CreateSprint(c *fiber.Ctx) error {
	var sprint models.Sprint
	if err := c.BodyParser(&sprint); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if sprint.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if sprint.DurationDays <= 0 {
		sprint.DurationDays = 30
	}

	if err := sc.DB.Create(&sprint).Error; err != nil {
		return utils.InternalServerError(c, "Could not create sprint")
	}

	return c.JSON(fiber.Map{
		"message": "Sprint created",
		"sprint":  sprint,
	})
}

func (sc *SprintsController) AddChallenge(c *fiber.Ctx) error {
	sprintID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid sprint ID")
	}

	var input struct {
		Day         int    `json:"day"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Resources   string `json:"resources"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var sprint models.Sprint
	if err := sc.DB.First(&sprint, sprintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Sprint not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.Day < 1 || input.Day > sprint.DurationDays {
		return utils.BadRequest(c, "Day is outside the sprint duration")
	}

	challenge := models.Challenge{
		SprintID:    sprint.ID,
		Day:         input.Day,
		Title:       input.Title,
		Description: input.Description,
		Resources:   input.Resources,
	}

	if err := sc.DB.Create(&challenge).Error; err != nil {
		return utils.InternalServerError(c, "Could not create challenge")
	}

	return c.JSON(fiber.Map{
		"message":   "Challenge added",
		"challenge": challenge,
	})
}
