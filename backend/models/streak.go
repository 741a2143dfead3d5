package models

import (
	"time"

	"gorm.io/gorm"
)

// StreakRecord is per user, not per sprint: activity in any sprint
// counts towards the same streak.
type StreakRecord struct {
	gorm.Model
	UserID           uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStreak    int       `gorm:"default:0" json:"current_streak"`
	LongestStreak    int       `gorm:"default:0" json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date"`
}
