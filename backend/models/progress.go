package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord tracks one user's position inside one sprint.
// There is exactly one row per (user, sprint) pair.
type ProgressRecord struct {
	gorm.Model
	UserID        uint      `gorm:"uniqueIndex:idx_user_sprint;not null" json:"user_id"`
	SprintID      uint      `gorm:"uniqueIndex:idx_user_sprint;not null" json:"sprint_id"`
	CurrentDay    int       `gorm:"default:1" json:"current_day"`
	Completed     bool      `gorm:"default:false" json:"completed"`
	StartDate     time.Time `json:"start_date"`
	CompletedDate time.Time `json:"completed_date"`
}
