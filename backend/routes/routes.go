package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sprintforge/backend/config"
	"sprintforge/backend/controllers"
	"sprintforge/backend/middleware"
	"sprintforge/backend/services"
	"sprintforge/backend/store"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *log.Logger) {
	progressStore := store.NewGormStore(db)
	tracker := services.NewStreakTracker(progressStore)
	recorder := services.NewProgressRecorder(progressStore, tracker)
	reconciler := services.NewStreakReconciler(progressStore)
	board := services.NewLeaderboard(db, rdb)

	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Sprint catalog
	sprintsController := controllers.NewSprintsController(db, cfg)
	app.Get("/api/sprints", sprintsController.GetSprints)
	app.Get("/api/sprints/:id", sprintsController.GetSprintDetails)

	// Progress & streaks
	progressController := controllers.NewProgressController(cfg, progressStore, recorder, tracker)
	app.Post("/api/sprints/:id/complete", authMiddleware, progressController.MarkDayComplete)
	app.Get("/api/sprints/:id/progress", authMiddleware, progressController.GetSprintProgress)
	app.Get("/api/streak", authMiddleware, progressController.GetStreak)

	// Dashboard
	dashboardController := controllers.NewDashboardController(db, cfg, tracker)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Leaderboard
	leaderboardController := controllers.NewLeaderboardController(cfg, board)
	app.Get("/api/leaderboard", leaderboardController.GetLeaderboard)

	// Admin routes
	adminController := controllers.NewAdminController(cfg, reconciler, logger)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/sprints", sprintsController.CreateSprint)
	admin.Post("/sprints/:id/challenges", sprintsController.AddChallenge)
	admin.Post("/users/:id/streak/repair", adminController.RepairStreak)
}
