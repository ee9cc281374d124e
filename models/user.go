package models

import (
	"time"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string        `json:"-" gorm:"not null"`
	FaceEncoding []byte        `json:"-"`
	AvatarURL    string        `json:"avatar_url,omitempty"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HasFace reports whether the account registered a face sample at signup.
func (u *User) HasFace() bool {
	return len(u.FaceEncoding) > 0
}
