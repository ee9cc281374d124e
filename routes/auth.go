package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/ai-receptionist/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctrl *controllers.AuthController, protected fiber.Handler) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/login/face", ctrl.LoginWithFace)
	auth.Post("/refresh", ctrl.RefreshToken)

	// Protected routes
	auth.Get("/me", protected, ctrl.GetUserProfile)
	auth.Post("/me/picture", protected, ctrl.UpdateProfilePicture)
	auth.Post("/logout", protected, ctrl.Logout)
}
