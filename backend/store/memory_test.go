package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintforge/backend/models"
)

func TestMemoryStoreListActivityDatesDistinctAndSorted(t *testing.T) {
	st := NewMemoryStore()

	// Two completions on the same calendar day (different sprints) and one
	// earlier day, inserted out of order.
	stamps := []time.Time{
		time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 1, 20, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 3, 18, 0, 0, 0, time.UTC),
	}
	for i, ts := range stamps {
		require.NoError(t, st.UpsertProgress(context.Background(), &models.ProgressRecord{
			UserID:        1,
			SprintID:      uint(i + 1),
			Completed:     true,
			CompletedDate: ts,
		}))
	}

	dates, err := st.ListActivityDates(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC),
	}, dates)
}

func TestMemoryStoreUpsertKeepsSingleRowPerPair(t *testing.T) {
	st := NewMemoryStore()

	rec := &models.ProgressRecord{UserID: 1, SprintID: 1, CurrentDay: 1}
	require.NoError(t, st.UpsertProgress(context.Background(), rec))
	firstID := rec.ID

	rec.CurrentDay = 2
	require.NoError(t, st.UpsertProgress(context.Background(), rec))
	assert.Equal(t, firstID, rec.ID)

	got, err := st.GetProgress(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentDay)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	st := NewMemoryStore()

	require.NoError(t, st.UpsertStreak(context.Background(), &models.StreakRecord{UserID: 1, CurrentStreak: 3}))

	got, err := st.GetStreak(context.Background(), 1)
	require.NoError(t, err)
	got.CurrentStreak = 99

	again, err := st.GetStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, again.CurrentStreak)
}
