package usecase

import (
	"context"
	"testing"

	"dental-clinic-portal/internal/delivery/dto"
)

func newReportFixture() (ReportUsecase, *stubPatientRepo, *stubDentistRepo, *stubAppointmentRepo) {
	patientRepo := newStubPatientRepo()
	dentistRepo := newStubDentistRepo()
	appointmentRepo := newStubAppointmentRepo()
	uc := NewReportUsecase(testLogger(), newStubReportRepo(), patientRepo, dentistRepo, appointmentRepo)
	return uc, patientRepo, dentistRepo, appointmentRepo
}

func TestReportUsecase_CreateAndGet(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newReportFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	created, err := uc.CreateReport(context.Background(), &dto.ReportRequest{
		PatientID:     patientID,
		DentistID:     dentistID,
		AppointmentID: appointmentID,
		ReportDetails: "two fillings, upper left",
	})
	if err != nil {
		t.Fatalf("CreateReport returned error: %v", err)
	}

	got, err := uc.GetReport(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if got.ReportDetails != "two fillings, upper left" {
		t.Fatalf("details not carried through: %s", got.ReportDetails)
	}
}

func TestReportUsecase_Create_MissingReferences(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newReportFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	req := &dto.ReportRequest{PatientID: 999, DentistID: dentistID, AppointmentID: appointmentID, ReportDetails: "x"}
	if _, err := uc.CreateReport(context.Background(), req); err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}

	req = &dto.ReportRequest{PatientID: patientID, DentistID: 999, AppointmentID: appointmentID, ReportDetails: "x"}
	if _, err := uc.CreateReport(context.Background(), req); err != ErrDentistNotFound {
		t.Fatalf("expected ErrDentistNotFound, got %v", err)
	}

	req = &dto.ReportRequest{PatientID: patientID, DentistID: dentistID, AppointmentID: 999, ReportDetails: "x"}
	if _, err := uc.CreateReport(context.Background(), req); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestReportUsecase_UpdateDelete(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newReportFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	created, err := uc.CreateReport(context.Background(), &dto.ReportRequest{
		PatientID:     patientID,
		DentistID:     dentistID,
		AppointmentID: appointmentID,
		ReportDetails: "initial notes",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := uc.UpdateReport(context.Background(), created.ID, &dto.ReportRequest{
		PatientID:     patientID,
		DentistID:     dentistID,
		AppointmentID: appointmentID,
		ReportDetails: "amended after x-ray",
	})
	if err != nil {
		t.Fatalf("UpdateReport returned error: %v", err)
	}
	if updated.ReportDetails != "amended after x-ray" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := uc.DeleteReport(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteReport returned error: %v", err)
	}
	if _, err := uc.GetReport(context.Background(), created.ID); err != ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound after delete, got %v", err)
	}
}

func TestReportUsecase_NotFound(t *testing.T) {
	uc, _, _, _ := newReportFixture()

	if _, err := uc.GetReport(context.Background(), 42); err != ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if err := uc.DeleteReport(context.Background(), 42); err != ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}
