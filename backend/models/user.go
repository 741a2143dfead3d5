package models

import "gorm.io/gorm"

// User is a thin mirror of the identity service's account. Sign-up and
// sessions live there; we only keep what the dashboard needs to show.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Email    string `gorm:"unique;not null"`
	Role     string `gorm:"default:user"` // user, admin
}
