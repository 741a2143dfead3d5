package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"sprintforge/backend/models"
)

// MemoryStore keeps all records in process memory. It exists for the test
// suites and for running the API locally without Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   uint
	progress map[[2]uint]*models.ProgressRecord // (userID, sprintID)
	streaks  map[uint]*models.StreakRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		progress: make(map[[2]uint]*models.ProgressRecord),
		streaks:  make(map[uint]*models.StreakRecord),
	}
}

func (s *MemoryStore) GetProgress(ctx context.Context, userID, sprintID uint) (*models.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.progress[[2]uint{userID, sprintID}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) UpsertProgress(ctx context.Context, rec *models.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		rec.ID = s.nextID
		s.nextID++
	}
	cp := *rec
	s.progress[[2]uint{rec.UserID, rec.SprintID}] = &cp
	return nil
}

func (s *MemoryStore) GetStreak(ctx context.Context, userID uint) (*models.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.streaks[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) UpsertStreak(ctx context.Context, rec *models.StreakRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		rec.ID = s.nextID
		s.nextID++
	}
	cp := *rec
	s.streaks[rec.UserID] = &cp
	return nil
}

func (s *MemoryStore) ListActivityDates(ctx context.Context, userID uint) ([]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[time.Time]bool)
	for key, rec := range s.progress {
		if key[0] != userID || rec.CompletedDate.IsZero() {
			continue
		}
		d := rec.CompletedDate.UTC()
		seen[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] = true
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
