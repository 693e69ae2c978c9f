package usecase

import (
	"context"
	"testing"

	"dental-clinic-portal/internal/delivery/dto"

	"github.com/shopspring/decimal"
)

func newAppointmentFixture() (AppointmentUsecase, *stubPatientRepo, *stubDentistRepo, *stubAppointmentRepo, *stubAuditService) {
	patientRepo := newStubPatientRepo()
	dentistRepo := newStubDentistRepo()
	appointmentRepo := newStubAppointmentRepo()
	audit := &stubAuditService{}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, patientRepo, dentistRepo, audit)
	return uc, patientRepo, dentistRepo, appointmentRepo, audit
}

func validAppointmentRequest(patientID, dentistID uint) *dto.AppointmentRequest {
	return &dto.AppointmentRequest{
		PatientID:     patientID,
		DentistID:     dentistID,
		Date:          "2026-09-15",
		Time:          "14:30",
		TreatmentType: "cleaning",
	}
}

func TestAppointmentUsecase_Create(t *testing.T) {
	uc, patientRepo, dentistRepo, _, audit := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	actor := uint(7)
	appointment, err := uc.CreateAppointment(context.Background(), &actor, validAppointmentRequest(patientID, dentistID))
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}
	if appointment.Status != "pending" {
		t.Fatalf("expected default status pending, got %s", appointment.Status)
	}
	if appointment.Date != "2026-09-15" || appointment.Time != "14:30" {
		t.Fatalf("unexpected schedule: %s %s", appointment.Date, appointment.Time)
	}
	if len(audit.actions) != 1 || audit.actions[0] != "appointment.create" {
		t.Fatalf("expected appointment.create audit entry, got %v", audit.actions)
	}
}

func TestAppointmentUsecase_Create_WithCost(t *testing.T) {
	uc, patientRepo, dentistRepo, _, _ := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	cost := decimal.NewFromFloat(120.50)
	req := validAppointmentRequest(patientID, dentistID)
	req.Cost = &cost
	req.Status = "confirmed"

	appointment, err := uc.CreateAppointment(context.Background(), nil, req)
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}
	if appointment.Cost == nil || !appointment.Cost.Equal(cost) {
		t.Fatalf("cost not carried through: %v", appointment.Cost)
	}
	if appointment.Status != "confirmed" {
		t.Fatalf("explicit status not honored: %s", appointment.Status)
	}
}

func TestAppointmentUsecase_Create_MissingReferences(t *testing.T) {
	uc, patientRepo, dentistRepo, _, audit := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	if _, err := uc.CreateAppointment(context.Background(), nil, validAppointmentRequest(999, dentistID)); err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if _, err := uc.CreateAppointment(context.Background(), nil, validAppointmentRequest(patientID, 999)); err != ErrDentistNotFound {
		t.Fatalf("expected ErrDentistNotFound, got %v", err)
	}
	if len(audit.actions) != 0 {
		t.Fatalf("no audit entries expected for rejected creates, got %v", audit.actions)
	}
}

func TestAppointmentUsecase_Create_BadDateAndTime(t *testing.T) {
	uc, patientRepo, dentistRepo, _, _ := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	req := validAppointmentRequest(patientID, dentistID)
	req.Date = "15-09-2026"
	if _, err := uc.CreateAppointment(context.Background(), nil, req); err != ErrInvalidDateFormat {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}

	req = validAppointmentRequest(patientID, dentistID)
	req.Time = "2pm"
	if _, err := uc.CreateAppointment(context.Background(), nil, req); err != ErrInvalidTimeFormat {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestAppointmentUsecase_Update(t *testing.T) {
	uc, patientRepo, dentistRepo, _, audit := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	created, err := uc.CreateAppointment(context.Background(), nil, validAppointmentRequest(patientID, dentistID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := validAppointmentRequest(patientID, dentistID)
	req.Status = "cancelled"
	req.Notes = "patient called to cancel"

	updated, err := uc.UpdateAppointment(context.Background(), nil, created.ID, req)
	if err != nil {
		t.Fatalf("UpdateAppointment returned error: %v", err)
	}
	if updated.Status != "cancelled" || updated.Notes != "patient called to cancel" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed the id: %d != %d", updated.ID, created.ID)
	}
	if audit.actions[len(audit.actions)-1] != "appointment.update" {
		t.Fatalf("expected appointment.update audit entry, got %v", audit.actions)
	}
}

func TestAppointmentUsecase_Update_NotFound(t *testing.T) {
	uc, patientRepo, dentistRepo, _, _ := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	if _, err := uc.UpdateAppointment(context.Background(), nil, 42, validAppointmentRequest(patientID, dentistID)); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAppointmentUsecase_Delete(t *testing.T) {
	uc, patientRepo, dentistRepo, _, audit := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	created, err := uc.CreateAppointment(context.Background(), nil, validAppointmentRequest(patientID, dentistID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.DeleteAppointment(context.Background(), nil, created.ID); err != nil {
		t.Fatalf("DeleteAppointment returned error: %v", err)
	}
	if _, err := uc.GetAppointment(context.Background(), created.ID); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound after delete, got %v", err)
	}
	if audit.actions[len(audit.actions)-1] != "appointment.delete" {
		t.Fatalf("expected appointment.delete audit entry, got %v", audit.actions)
	}
}

func TestAppointmentUsecase_ListByPatient(t *testing.T) {
	uc, patientRepo, dentistRepo, _, _ := newAppointmentFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)

	// Empty list is a successful response, not an error.
	list, err := uc.GetAppointmentsByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("GetAppointmentsByPatient returned error: %v", err)
	}
	if list.Total != 0 {
		t.Fatalf("expected empty list, got %d", list.Total)
	}

	if _, err := uc.CreateAppointment(context.Background(), nil, validAppointmentRequest(patientID, dentistID)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err = uc.GetAppointmentsByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("GetAppointmentsByPatient returned error: %v", err)
	}
	if list.Total != 1 || len(list.Appointments) != 1 {
		t.Fatalf("expected one appointment, got %+v", list)
	}

	if _, err := uc.GetAppointmentsByPatient(context.Background(), 999); err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound for unknown patient, got %v", err)
	}
}
