package usecase

import (
	"context"
	"testing"

	"dental-clinic-portal/internal/delivery/dto"
)

func newAvailabilityFixture() (AvailabilityUsecase, *stubDentistRepo) {
	dentistRepo := newStubDentistRepo()
	uc := NewAvailabilityUsecase(testLogger(), newStubAvailabilityRepo(), dentistRepo)
	return uc, dentistRepo
}

func TestAvailabilityUsecase_Create(t *testing.T) {
	uc, dentistRepo := newAvailabilityFixture()
	dentistID := seedDentist(dentistRepo)

	availability, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "monday",
		StartTime: "2026-09-14T09:00",
		EndTime:   "2026-09-14T17:00",
	})
	if err != nil {
		t.Fatalf("CreateAvailability returned error: %v", err)
	}
	if availability.StartTime != "2026-09-14T09:00" || availability.EndTime != "2026-09-14T17:00" {
		t.Fatalf("unexpected window: %s - %s", availability.StartTime, availability.EndTime)
	}
}

func TestAvailabilityUsecase_Create_SecondsAccepted(t *testing.T) {
	uc, dentistRepo := newAvailabilityFixture()
	dentistID := seedDentist(dentistRepo)

	if _, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "tuesday",
		StartTime: "2026-09-15T09:00:00",
		EndTime:   "2026-09-15T12:30:00",
	}); err != nil {
		t.Fatalf("seconds layout rejected: %v", err)
	}
}

func TestAvailabilityUsecase_Create_InvalidWindow(t *testing.T) {
	uc, dentistRepo := newAvailabilityFixture()
	dentistID := seedDentist(dentistRepo)

	// End before start.
	if _, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "monday",
		StartTime: "2026-09-14T17:00",
		EndTime:   "2026-09-14T09:00",
	}); err != ErrInvalidTimeRange {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}

	// Start equals end.
	if _, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "monday",
		StartTime: "2026-09-14T09:00",
		EndTime:   "2026-09-14T09:00",
	}); err != ErrInvalidTimeRange {
		t.Fatalf("expected ErrInvalidTimeRange for equal bounds, got %v", err)
	}

	// Garbage input.
	if _, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "monday",
		StartTime: "nine o'clock",
		EndTime:   "2026-09-14T17:00",
	}); err != ErrInvalidDateTimeFormat {
		t.Fatalf("expected ErrInvalidDateTimeFormat, got %v", err)
	}
}

func TestAvailabilityUsecase_Create_UnknownDentist(t *testing.T) {
	uc, _ := newAvailabilityFixture()

	if _, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: 999,
		DayOfWeek: "monday",
		StartTime: "2026-09-14T09:00",
		EndTime:   "2026-09-14T17:00",
	}); err != ErrDentistNotFound {
		t.Fatalf("expected ErrDentistNotFound, got %v", err)
	}
}

func TestAvailabilityUsecase_ListUpdateDelete(t *testing.T) {
	uc, dentistRepo := newAvailabilityFixture()
	dentistID := seedDentist(dentistRepo)

	created, err := uc.CreateAvailability(context.Background(), &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "monday",
		StartTime: "2026-09-14T09:00",
		EndTime:   "2026-09-14T17:00",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := uc.GetAvailabilityByDentist(context.Background(), dentistID)
	if err != nil {
		t.Fatalf("GetAvailabilityByDentist returned error: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected one window, got %d", list.Total)
	}

	updated, err := uc.UpdateAvailability(context.Background(), created.ID, &dto.AvailabilityRequest{
		DentistID: dentistID,
		DayOfWeek: "friday",
		StartTime: "2026-09-18T10:00",
		EndTime:   "2026-09-18T15:00",
	})
	if err != nil {
		t.Fatalf("UpdateAvailability returned error: %v", err)
	}
	if updated.DayOfWeek != "friday" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := uc.DeleteAvailability(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteAvailability returned error: %v", err)
	}
	if err := uc.DeleteAvailability(context.Background(), created.ID); err != ErrAvailabilityNotFound {
		t.Fatalf("expected ErrAvailabilityNotFound on second delete, got %v", err)
	}
}

func TestAvailabilityUsecase_ListUnknownDentist(t *testing.T) {
	uc, _ := newAvailabilityFixture()

	if _, err := uc.GetAvailabilityByDentist(context.Background(), 999); err != ErrDentistNotFound {
		t.Fatalf("expected ErrDentistNotFound, got %v", err)
	}
}
