package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sprintforge/backend/models"
)

// GormStore backs ProgressStore with Postgres through gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetProgress(ctx context.Context, userID, sprintID uint) (*models.ProgressRecord, error) {
	var rec models.ProgressRecord
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND sprint_id = ?", userID, sprintID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) UpsertProgress(ctx context.Context, rec *models.ProgressRecord) error {
	return s.DB.WithContext(ctx).Save(rec).Error
}

func (s *GormStore) GetStreak(ctx context.Context, userID uint) (*models.StreakRecord, error) {
	var rec models.StreakRecord
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) UpsertStreak(ctx context.Context, rec *models.StreakRecord) error {
	return s.DB.WithContext(ctx).Save(rec).Error
}

func (s *GormStore) ListActivityDates(ctx context.Context, userID uint) ([]time.Time, error) {
	var rows []struct{ Day time.Time }
	err := s.DB.WithContext(ctx).
		Raw("SELECT DISTINCT completed_date::date AS day FROM progress_records WHERE user_id = ? AND deleted_at IS NULL ORDER BY day", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Day)
	}
	return dates, nil
}
