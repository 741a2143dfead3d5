package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sprintforge/backend/services"
	"sprintforge/backend/utils"
)

// serviceError translates engine errors into HTTP responses. Store
// failures are the only retryable kind; everything else needs a caller
// decision first.
func serviceError(c *fiber.Ctx, err error) error {
	var storeErr *services.StoreError
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return utils.BadRequest(c, "Invalid sprint or user identifier")
	case errors.Is(err, services.ErrOutOfOrderActivity):
		return utils.Conflict(c, "Activity date precedes the last recorded activity")
	case errors.Is(err, services.ErrUserNotFound):
		return utils.NotFound(c, "No activity history for this user")
	case errors.As(err, &storeErr):
		return utils.RetryableError(c, fiber.StatusInternalServerError, "Temporary storage failure, please retry")
	default:
		return utils.InternalServerError(c, "Unexpected error")
	}
}
