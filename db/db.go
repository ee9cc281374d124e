package db

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database from DATABASE_URL and returns the handle. The
// handle is passed to the stores at construction time; nothing keeps a
// package-level copy.
func Connect() (*gorm.DB, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		// TranslateError maps driver unique-violation errors to
		// gorm.ErrDuplicatedKey, which the credential store relies on to
		// report duplicate signups losing a race.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connection established successfully!")
	return gdb, nil
}
