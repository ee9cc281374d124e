package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meinhoongagan/ai-receptionist/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestCreateAccountAndFind(t *testing.T) {
	s := NewCredentialStore(testDB(t))
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, "a@b.com", "hash", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}

	byEmail, err := s.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.PasswordHash != "hash" {
		t.Fatalf("unexpected record: %+v", byEmail)
	}
	if !byEmail.HasFace() {
		t.Fatal("expected stored face encoding")
	}

	byID, err := s.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", byID.Email)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := NewCredentialStore(testDB(t))
	ctx := context.Background()

	first, err := s.CreateAccount(ctx, "dup@b.com", "first-hash", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = s.CreateAccount(ctx, "dup@b.com", "second-hash", nil)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// stored data reflects only the first call
	got, err := s.FindByEmail(ctx, "dup@b.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != first.ID || got.PasswordHash != "first-hash" {
		t.Fatalf("record was overwritten: %+v", got)
	}
}

func TestFindNotFound(t *testing.T) {
	s := NewCredentialStore(testDB(t))
	ctx := context.Background()

	if _, err := s.FindByEmail(ctx, "missing@b.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.FindByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetAvatarURL(t *testing.T) {
	s := NewCredentialStore(testDB(t))
	ctx := context.Background()

	user, err := s.CreateAccount(ctx, "a@b.com", "hash", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.SetAvatarURL(ctx, user.ID, "https://img.example/u.png"); err != nil {
		t.Fatalf("set avatar: %v", err)
	}
	got, _ := s.FindByID(ctx, user.ID)
	if got.AvatarURL != "https://img.example/u.png" {
		t.Fatalf("avatar not stored: %q", got.AvatarURL)
	}

	if err := s.SetAvatarURL(ctx, 999, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
