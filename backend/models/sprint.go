package models

import "gorm.io/gorm"

type Sprint struct {
	gorm.Model
	Title        string `gorm:"not null"`
	ShortDesc    string
	Description  string
	Difficulty   string // beginner, intermediate, advanced
	DurationDays int    `gorm:"default:30"`
	LogoURL      string
	Challenges   []Challenge
}

// Challenge is a single day's task within a sprint. Resources holds the
// raw resources text (JSON array or "title | url" lines); it is parsed
// on the way out, never at write time.
type Challenge struct {
	gorm.Model
	SprintID    uint `gorm:"index;not null"`
	Day         int  `gorm:"not null"`
	Title       string
	Description string
	Resources   string
}
