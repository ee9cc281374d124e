package service

import (
	"context"
	"fmt"
	"log"

	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/store"
	"github.com/meinhoongagan/ai-receptionist/utils"
)

// BookingService records and lists appointments. Booking is permissive:
// nothing stops two accounts from taking the same specialist/date/slot, and
// the user id is not checked against the account table.
type BookingService struct {
	appts *store.AppointmentStore
	creds *store.CredentialStore
}

func NewBookingService(appts *store.AppointmentStore, creds *store.CredentialStore) *BookingService {
	return &BookingService{appts: appts, creds: creds}
}

// Book creates the appointment and returns it with its assigned id. A
// confirmation email goes out in the background when SMTP is configured.
func (s *BookingService) Book(ctx context.Context, userID uint, specialist, date, timeSlot string) (*models.Appointment, error) {
	appt := &models.Appointment{
		UserID:     userID,
		Specialist: specialist,
		Date:       date,
		TimeSlot:   timeSlot,
	}
	if err := s.appts.Create(ctx, appt); err != nil {
		return nil, err
	}

	if utils.MailEnabled() {
		go s.sendConfirmation(appt)
	}
	return appt, nil
}

// ListForUser returns the account's appointments in the order they were
// created; an empty slice when there are none.
func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return s.appts.ListByUser(ctx, userID)
}

func (s *BookingService) sendConfirmation(appt *models.Appointment) {
	user, err := s.creds.FindByID(context.Background(), appt.UserID)
	if err != nil {
		log.Printf("confirmation email: lookup user %d: %v", appt.UserID, err)
		return
	}

	subject := fmt.Sprintf("Appointment Confirmed - %s", appt.Specialist)
	body := fmt.Sprintf(`
		<p>Dear patient,</p>
		<p>Your appointment has been booked.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Specialist:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Booking ID:</strong> %d</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>AI Receptionist</p>
	`, appt.Specialist, appt.Date, appt.TimeSlot, appt.ID)

	if err := utils.SendEmail(user.Email, subject, body); err != nil {
		log.Printf("Failed to send confirmation for appointment %d: %v", appt.ID, err)
		return
	}
	log.Printf("Sent confirmation for appointment %d to %s", appt.ID, user.Email)
}
