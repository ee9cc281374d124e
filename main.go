package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/ai-receptionist/controllers"
	appcron "github.com/meinhoongagan/ai-receptionist/cron"
	"github.com/meinhoongagan/ai-receptionist/db"
	"github.com/meinhoongagan/ai-receptionist/face"
	"github.com/meinhoongagan/ai-receptionist/middleware"
	"github.com/meinhoongagan/ai-receptionist/routes"
	"github.com/meinhoongagan/ai-receptionist/service"
	"github.com/meinhoongagan/ai-receptionist/session"
	"github.com/meinhoongagan/ai-receptionist/store"
	"github.com/meinhoongagan/ai-receptionist/utils"
)

func main() {
	gdb, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	creds := store.NewCredentialStore(gdb)
	appts := store.NewAppointmentStore(gdb)

	var encoder face.Encoder
	if url := os.Getenv("FACE_API_URL"); url != "" {
		encoder = face.NewRemoteEncoder(url)
	} else {
		log.Println("Warning: FACE_API_URL not set, face signup and login are disabled")
	}

	var blacklist *session.Blacklist
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		blacklist, err = session.NewBlacklist(addr)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("✅ Connected to Redis")
	} else {
		log.Println("Warning: REDIS_ADDR not set, logout will not revoke tokens")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	accounts := service.NewAccountService(creds, encoder)
	bookings := service.NewBookingService(appts, creds)

	authCtrl := controllers.NewAuthController(accounts, creds, blacklist, secret)
	apptCtrl := controllers.NewAppointmentController(bookings)
	protected := middleware.Protected(blacklist)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AI Receptionist API")
	})
	routes.SetupAuthRoutes(app, authCtrl, protected)
	routes.SetupAppointmentRoutes(app, apptCtrl, protected)

	if utils.MailEnabled() {
		if _, err := appcron.StartReminderJob(appts); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("Warning: SMTP not configured, emails are disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
