package services

import (
	"context"
	"time"

	"sprintforge/backend/models"
	"sprintforge/backend/store"
)

// StreakTracker maintains the per-user consecutive-day activity counter.
//
// Two requests for the same user can race (two tabs, double click); the
// store's last write wins and no locking is attempted. Streaks are a
// motivational counter, not a ledger, and repair exists for drift.
type StreakTracker struct {
	Store store.ProgressStore
}

func NewStreakTracker(st store.ProgressStore) *StreakTracker {
	return &StreakTracker{Store: st}
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// gapDays returns the whole calendar days from a to b (negative if b is
// earlier). Both arguments must already be day-truncated.
func gapDays(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// RegisterActivity counts activityDate towards the user's streak. A zero
// activityDate means today. A repeat activity on the same calendar day is
// a no-op; a one-day gap extends the streak; anything longer restarts it.
func (t *StreakTracker) RegisterActivity(ctx context.Context, userID uint, activityDate time.Time) (*models.StreakRecord, error) {
	if userID == 0 {
		return nil, ErrInvalidArgument
	}
	if activityDate.IsZero() {
		activityDate = time.Now()
	}
	day := dayOf(activityDate)

	rec, err := t.Store.GetStreak(ctx, userID)
	if err != nil {
		return nil, storeErr("get streak", err)
	}
	if rec == nil {
		rec = &models.StreakRecord{UserID: userID}
	}

	if !rec.LastActivityDate.IsZero() {
		switch gap := gapDays(dayOf(rec.LastActivityDate), day); {
		case gap == 0:
			// Same day, nothing to commit.
			return rec, nil
		case gap == 1:
			rec.CurrentStreak++
		case gap > 1:
			rec.CurrentStreak = 1
		default:
			return nil, ErrOutOfOrderActivity
		}
	} else {
		rec.CurrentStreak = 1
	}

	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}
	rec.LastActivityDate = day

	if err := t.Store.UpsertStreak(ctx, rec); err != nil {
		return nil, storeErr("upsert streak", err)
	}
	return rec, nil
}

// GetStreak returns the user's streak record, lazily creating a zeroed one
// the first time streak data is requested for a user without any.
func (t *StreakTracker) GetStreak(ctx context.Context, userID uint) (*models.StreakRecord, error) {
	if userID == 0 {
		return nil, ErrInvalidArgument
	}

	rec, err := t.Store.GetStreak(ctx, userID)
	if err != nil {
		return nil, storeErr("get streak", err)
	}
	if rec != nil {
		return rec, nil
	}

	rec = &models.StreakRecord{UserID: userID}
	if err := t.Store.UpsertStreak(ctx, rec); err != nil {
		return nil, storeErr("upsert streak", err)
	}
	return rec, nil
}
