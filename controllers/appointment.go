package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/service"
	"github.com/meinhoongagan/ai-receptionist/utils"
)

type AppointmentController struct {
	bookings *service.BookingService
}

func NewAppointmentController(bookings *service.BookingService) *AppointmentController {
	return &AppointmentController{bookings: bookings}
}

// GetOptions returns the fixed specialist and time-slot choices for the
// booking form.
func (a *AppointmentController) GetOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"specialists": models.Specialists,
		"time_slots":  models.TimeSlots,
	})
}

// CreateAppointment books a slot for the authenticated account. The fixed-set
// and date-format checks live here; the booking service records whatever it
// is given.
func (a *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	type BookingInput struct {
		Specialist string `json:"specialist"`
		Date       string `json:"date"`
		TimeSlot   string `json:"time_slot"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !models.ValidSpecialist(input.Specialist) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown specialist",
		})
	}
	if !models.ValidTimeSlot(input.TimeSlot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown time slot",
		})
	}
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date must be YYYY-MM-DD",
		})
	}

	userID := c.Locals("userID").(uint)

	appt, err := a.bookings.Book(c.Context(), userID, input.Specialist, input.Date, input.TimeSlot)
	if err != nil {
		log.Printf("Error creating appointment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

// GetAppointments lists the authenticated account's bookings in the order
// they were created.
func (a *AppointmentController) GetAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appts, err := a.bookings.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appts)
}
