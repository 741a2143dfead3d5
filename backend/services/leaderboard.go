package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sprintforge/backend/models"
)

const (
	leaderboardCacheKey = "leaderboard:streaks"
	leaderboardCacheTTL = time.Minute
)

// LeaderboardEntry is one row of the streak leaderboard.
type LeaderboardEntry struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

// Leaderboard ranks users by current streak. Results are cached in Redis
// for a minute; with a nil client every request hits the database.
type Leaderboard struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewLeaderboard(db *gorm.DB, cache *redis.Client) *Leaderboard {
	return &Leaderboard{DB: db, Cache: cache}
}

func (l *Leaderboard) TopStreaks(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	if l.Cache != nil {
		if cached, err := l.Cache.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil && len(entries) >= limit {
				return entries[:limit], nil
			}
		}
	}

	var entries []LeaderboardEntry
	err := l.DB.WithContext(ctx).
		Model(&models.StreakRecord{}).
		Select("streak_records.user_id, COALESCE(users.username, '') AS username, streak_records.current_streak, streak_records.longest_streak").
		Joins("LEFT JOIN users ON users.id = streak_records.user_id").
		Where("streak_records.current_streak > 0").
		Order("streak_records.current_streak DESC, streak_records.longest_streak DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, storeErr("load leaderboard", err)
	}

	if l.Cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			l.Cache.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}
	return entries, nil
}
