package services

import (
	"context"

	"sprintforge/backend/models"
	"sprintforge/backend/store"
)

// StreakReconciler rebuilds a user's streak counters from the recorded
// activity history. It is the repair path for counters that drifted
// (missed tracker calls, manual data edits) and overwrites the streak
// record unconditionally.
type StreakReconciler struct {
	Store store.ProgressStore
}

func NewStreakReconciler(st store.ProgressStore) *StreakReconciler {
	return &StreakReconciler{Store: st}
}

// RepairStreak recomputes CurrentStreak and LongestStreak by walking the
// user's distinct activity dates in order with the same gap rule the
// tracker applies. The trailing run is reported as CurrentStreak even when
// its last day is in the past: repair restores historical truth, it does
// not expire streaks against the wall clock.
func (r *StreakReconciler) RepairStreak(ctx context.Context, userID uint) (*models.StreakRecord, error) {
	if userID == 0 {
		return nil, ErrInvalidArgument
	}

	dates, err := r.Store.ListActivityDates(ctx, userID)
	if err != nil {
		return nil, storeErr("list activity dates", err)
	}
	if len(dates) == 0 {
		return nil, ErrUserNotFound
	}

	run, longest := 1, 1
	prev := dayOf(dates[0])
	for _, d := range dates[1:] {
		day := dayOf(d)
		switch gapDays(prev, day) {
		case 0:
			continue
		case 1:
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}

	rec, err := r.Store.GetStreak(ctx, userID)
	if err != nil {
		return nil, storeErr("get streak", err)
	}
	if rec == nil {
		rec = &models.StreakRecord{UserID: userID}
	}
	rec.CurrentStreak = run
	rec.LongestStreak = longest
	rec.LastActivityDate = prev

	if err := r.Store.UpsertStreak(ctx, rec); err != nil {
		return nil, storeErr("upsert streak", err)
	}
	return rec, nil
}
