package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/store"
)

func testBookings(t *testing.T) *BookingService {
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
	return NewBookingService(store.NewAppointmentStore(gdb), store.NewCredentialStore(gdb))
}

func TestBookAndList(t *testing.T) {
	svc := testBookings(t)
	ctx := context.Background()

	appt, err := svc.Book(ctx, 1, "Cardiologist", "2025-03-01", "09:00 AM")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := svc.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(got))
	}
	if got[0].ID != appt.ID || got[0].Specialist != "Cardiologist" ||
		got[0].Date != "2025-03-01" || got[0].TimeSlot != "09:00 AM" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}

func TestBookManyKeepsOrder(t *testing.T) {
	svc := testBookings(t)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 7; i++ {
		appt, err := svc.Book(ctx, 3, models.Specialists[i%len(models.Specialists)],
			fmt.Sprintf("2025-05-%02d", i+1), "10:00 AM")
		if err != nil {
			t.Fatalf("book %d: %v", i, err)
		}
		ids = append(ids, appt.ID)
	}

	got, err := svc.ListForUser(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(ids) {
		t.Fatalf("expected %d appointments, got %d", len(ids), len(got))
	}
	for i, appt := range got {
		if appt.ID != ids[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, ids[i], appt.ID)
		}
	}
}

func TestListForUserEmpty(t *testing.T) {
	svc := testBookings(t)

	got, err := svc.ListForUser(context.Background(), 99)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no appointments, got %d", len(got))
	}
}

// Double-booking the same specialist, date and slot is allowed.
func TestBookNoConflictChecking(t *testing.T) {
	svc := testBookings(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, 1, "Neurologist", "2025-03-01", "09:00 AM")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	second, err := svc.Book(ctx, 2, "Neurologist", "2025-03-01", "09:00 AM")
	if err != nil {
		t.Fatalf("second booking rejected: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected distinct ids")
	}
}
