package services

import (
	"context"
	"time"

	"sprintforge/backend/models"
	"sprintforge/backend/store"
)

// ProgressRecorder persists challenge completions and keeps the current-day
// pointer moving forward.
type ProgressRecorder struct {
	Store   store.ProgressStore
	Tracker *StreakTracker
}

func NewProgressRecorder(st store.ProgressStore, tracker *StreakTracker) *ProgressRecorder {
	return &ProgressRecorder{Store: st, Tracker: tracker}
}

// RecordCompletion marks a completion for the (user, sprint) pair and then
// registers the activity with the streak tracker.
//
// The caller decides which day it is marking: day > 0 advances CurrentDay to
// at most max(CurrentDay, day), day == 0 records the completion without
// touching the pointer. CurrentDay never moves backwards either way.
//
// The call is idempotent: repeats update the single row for the pair and
// leave Completed true.
func (r *ProgressRecorder) RecordCompletion(ctx context.Context, sprintID, userID uint, day int) (*models.ProgressRecord, error) {
	if sprintID == 0 || userID == 0 || day < 0 {
		return nil, ErrInvalidArgument
	}

	now := time.Now()

	rec, err := r.Store.GetProgress(ctx, userID, sprintID)
	if err != nil {
		return nil, storeErr("get progress", err)
	}

	if rec == nil {
		rec = &models.ProgressRecord{
			UserID:     userID,
			SprintID:   sprintID,
			CurrentDay: 1,
			StartDate:  now,
		}
	}
	if rec.CurrentDay < 1 {
		rec.CurrentDay = 1
	}
	if day > rec.CurrentDay {
		rec.CurrentDay = day
	}
	rec.Completed = true
	rec.CompletedDate = now

	if err := r.Store.UpsertProgress(ctx, rec); err != nil {
		return nil, storeErr("upsert progress", err)
	}

	if _, err := r.Tracker.RegisterActivity(ctx, userID, now); err != nil {
		return nil, err
	}
	return rec, nil
}
