package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/ai-receptionist/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctrl *controllers.AppointmentController, protected fiber.Handler) {
	appointment := app.Group("/appointments")
	appointment.Get("/options", ctrl.GetOptions)
	appointment.Get("/", protected, ctrl.GetAppointments)
	appointment.Post("/", protected, ctrl.CreateAppointment)
}
