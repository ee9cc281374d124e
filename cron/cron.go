package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/store"
	"github.com/meinhoongagan/ai-receptionist/utils"
)

// StartReminderJob schedules a daily job mailing every account that has an
// appointment the next day. Returns the scheduler so the caller can stop it.
func StartReminderJob(appts *store.AppointmentStore) (*cron.Cron, error) {
	c := cron.New()
	// Run every morning at 08:00
	_, err := c.AddFunc("0 8 * * *", func() { sendAppointmentReminders(appts) })
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
	return c, nil
}

// sendAppointmentReminders mails reminders for tomorrow's appointments.
func sendAppointmentReminders(appts *store.AppointmentStore) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	list, err := appts.ListByDate(context.Background(), tomorrow)
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	log.Printf("Found %d appointments for reminders", len(list))

	for _, appt := range list {
		if appt.User.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appt); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appt.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appt.ID, appt.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appt *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appt.Specialist)
	body := fmt.Sprintf(`
		<p>Dear patient,</p>
		<p>This is a reminder for your appointment scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Specialist:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>AI Receptionist</p>
	`, appt.Specialist, appt.Date, appt.TimeSlot)

	return utils.SendEmail(appt.User.Email, subject, body)
}
