package store

import (
	"context"
	"time"

	"sprintforge/backend/models"
)

// ProgressStore is the persistence surface the progress engine talks to.
// Lookups return (nil, nil) when no record exists; an error always means
// the store itself failed, never "not found".
type ProgressStore interface {
	GetProgress(ctx context.Context, userID, sprintID uint) (*models.ProgressRecord, error)
	UpsertProgress(ctx context.Context, rec *models.ProgressRecord) error
	GetStreak(ctx context.Context, userID uint) (*models.StreakRecord, error)
	UpsertStreak(ctx context.Context, rec *models.StreakRecord) error

	// ListActivityDates returns the distinct calendar days (midnight UTC)
	// on which the user completed at least one challenge, ascending.
	ListActivityDates(ctx context.Context, userID uint) ([]time.Time, error)
}
