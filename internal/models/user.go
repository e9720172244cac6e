package models

import (
	"time"
)

// User is an account record. The password is only ever stored as a bcrypt
// hash; the email carries a unique index in addition to the signup-time
// duplicate check.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PictureURL   string    `gorm:"size:255" json:"picture_url"`
}
