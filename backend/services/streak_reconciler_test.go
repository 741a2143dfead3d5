package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"sprintforge/backend/models"
	"sprintforge/backend/store"
)

var base = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// seedActivity writes one progress record per offset so the store's
// activity history contains exactly those calendar days.
func seedActivity(t rapid.TB, st *store.MemoryStore, userID uint, dayOffsets []int) {
	t.Helper()
	for i, off := range dayOffsets {
		err := st.UpsertProgress(context.Background(), &models.ProgressRecord{
			UserID:        userID,
			SprintID:      uint(i + 1),
			CurrentDay:    1,
			Completed:     true,
			StartDate:     base.AddDate(0, 0, off),
			CompletedDate: base.AddDate(0, 0, off),
		})
		require.NoError(t, err)
	}
}

func TestRepairStreakNoHistory(t *testing.T) {
	reconciler := NewStreakReconciler(store.NewMemoryStore())

	_, err := reconciler.RepairStreak(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepairStreakSingleDay(t *testing.T) {
	st := store.NewMemoryStore()
	seedActivity(t, st, 1, []int{5})

	rec, err := NewStreakReconciler(st).RepairStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.LongestStreak)
	assert.Equal(t, base.AddDate(0, 0, 5), rec.LastActivityDate)
}

func TestRepairStreakTrailingRunWins(t *testing.T) {
	st := store.NewMemoryStore()
	// A long early run, a gap, then a short trailing run.
	seedActivity(t, st, 1, []int{0, 1, 2, 3, 10, 11})

	rec, err := NewStreakReconciler(st).RepairStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CurrentStreak)
	assert.Equal(t, 4, rec.LongestStreak)
}

// Repair reports the trailing run as-is even when its last day is long
// past; expiry is the tracker's concern, not repair's.
func TestRepairStreakDoesNotExpireAgainstNow(t *testing.T) {
	st := store.NewMemoryStore()
	seedActivity(t, st, 1, []int{100, 101, 102})

	rec, err := NewStreakReconciler(st).RepairStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, 3, rec.LongestStreak)
}

func TestRepairStreakOverwritesDriftedRecord(t *testing.T) {
	st := store.NewMemoryStore()
	seedActivity(t, st, 1, []int{0, 1})

	// Simulate drift: the stored counters disagree with history.
	require.NoError(t, st.UpsertStreak(context.Background(), &models.StreakRecord{
		UserID:           1,
		CurrentStreak:    17,
		LongestStreak:    40,
		LastActivityDate: base.AddDate(0, 0, 30),
	}))

	rec, err := NewStreakReconciler(st).RepairStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CurrentStreak)
	assert.Equal(t, 2, rec.LongestStreak)
	assert.Equal(t, base.AddDate(0, 0, 1), rec.LastActivityDate)

	stored, err := st.GetStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentStreak)
	assert.Equal(t, 2, stored.LongestStreak)
}

// For any set of distinct activity dates, repairing from history must agree
// with replaying the tracker over the same dates in order.
func TestRepairAgreesWithSequentialReplay(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		offsets := rapid.SliceOfNDistinct(rapid.IntRange(0, 365), 1, 30, rapid.ID).Draw(rt, "offsets")
		sort.Ints(offsets)

		historyStore := store.NewMemoryStore()
		seedActivity(rt, historyStore, 1, offsets)
		repaired, err := NewStreakReconciler(historyStore).RepairStreak(context.Background(), 1)
		if err != nil {
			rt.Fatal(err)
		}

		replayStore := store.NewMemoryStore()
		tracker := NewStreakTracker(replayStore)
		var replayed *models.StreakRecord
		for _, off := range offsets {
			replayed, err = tracker.RegisterActivity(context.Background(), 1, base.AddDate(0, 0, off))
			if err != nil {
				rt.Fatal(err)
			}
		}

		if repaired.CurrentStreak != replayed.CurrentStreak {
			rt.Fatalf("current streak: repair %d, replay %d", repaired.CurrentStreak, replayed.CurrentStreak)
		}
		if repaired.LongestStreak != replayed.LongestStreak {
			rt.Fatalf("longest streak: repair %d, replay %d", repaired.LongestStreak, replayed.LongestStreak)
		}
		if !repaired.LastActivityDate.Equal(replayed.LastActivityDate) {
			rt.Fatalf("last activity: repair %v, replay %v", repaired.LastActivityDate, replayed.LastActivityDate)
		}
	})
}
