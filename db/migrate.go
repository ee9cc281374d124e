package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/meinhoongagan/ai-receptionist/models"
)

// Migrate creates the users and appointments tables if they don't exist.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Appointment{},
	)
	if err != nil {
		return err
	}

	log.Println("✅ Migrations applied successfully!")
	return nil
}
