package models

import "time"

type Appointment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	Specialist string    `json:"specialist" gorm:"not null"`
	Date       string    `json:"date" gorm:"not null"`
	TimeSlot   string    `json:"time_slot" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DateLayout is the calendar date format stored on appointments.
const DateLayout = "2006-01-02"

// Specialists and TimeSlots are the fixed choices offered by the booking page.
// Membership is checked at the HTTP layer, not by the booking service.
var (
	Specialists = []string{
		"Cardiologist",
		"Neurologist",
		"Dermatologist",
		"Orthopedist",
		"Pediatrician",
	}
	TimeSlots = []string{
		"09:00 AM",
		"10:00 AM",
		"11:00 AM",
		"02:00 PM",
		"04:00 PM",
	}
)

// ValidSpecialist reports whether s is one of the offered specialties.
func ValidSpecialist(s string) bool {
	for _, v := range Specialists {
		if v == s {
			return true
		}
	}
	return false
}

// ValidTimeSlot reports whether s is one of the offered slot labels.
func ValidTimeSlot(s string) bool {
	for _, v := range TimeSlots {
		if v == s {
			return true
		}
	}
	return false
}
