package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/meinhoongagan/ai-receptionist/models"
)

// AppointmentStore persists booking records. Bookings are append-only: no
// update or delete, no conflict detection against existing bookings.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// Create persists the appointment and fills in its assigned id.
func (s *AppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

// ListByUser returns the user's appointments in creation order.
func (s *AppointmentStore) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&appts).Error
	return appts, err
}

// ListByDate returns every appointment on the given date with the owning
// account preloaded. Used by the reminder job.
func (s *AppointmentStore) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("date = ?", date).
		Order("id").
		Find(&appts).Error
	return appts, err
}
