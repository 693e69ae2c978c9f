package usecase

import (
	"context"
	"testing"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
)

type stubFeedbackRepo struct {
	records map[uint]*entity.Feedback
	nextID  uint
}

func newStubFeedbackRepo() *stubFeedbackRepo {
	return &stubFeedbackRepo{records: make(map[uint]*entity.Feedback), nextID: 1}
}

func (r *stubFeedbackRepo) Create(_ context.Context, feedback *entity.Feedback) error {
	feedback.ID = r.nextID
	r.nextID++
	clone := *feedback
	r.records[feedback.ID] = &clone
	return nil
}

func (r *stubFeedbackRepo) FindByID(_ context.Context, id uint) (*entity.Feedback, error) {
	f, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}

func (r *stubFeedbackRepo) FindAll(_ context.Context) ([]entity.Feedback, error) {
	var result []entity.Feedback
	for _, f := range r.records {
		result = append(result, *f)
	}
	return result, nil
}

func (r *stubFeedbackRepo) Update(_ context.Context, feedback *entity.Feedback) error {
	clone := *feedback
	r.records[feedback.ID] = &clone
	return nil
}

func (r *stubFeedbackRepo) Delete(_ context.Context, id uint) error {
	delete(r.records, id)
	return nil
}

func newFeedbackFixture() (FeedbackUsecase, *stubPatientRepo, *stubDentistRepo, *stubAppointmentRepo) {
	patientRepo := newStubPatientRepo()
	dentistRepo := newStubDentistRepo()
	appointmentRepo := newStubAppointmentRepo()
	uc := NewFeedbackUsecase(testLogger(), newStubFeedbackRepo(), patientRepo, dentistRepo, appointmentRepo)
	return uc, patientRepo, dentistRepo, appointmentRepo
}

func TestFeedbackUsecase_CreateAndListAll(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newFeedbackFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	list, err := uc.ListFeedback(context.Background())
	if err != nil {
		t.Fatalf("ListFeedback returned error: %v", err)
	}
	if list.Total != 0 {
		t.Fatalf("expected empty list, got %d", list.Total)
	}

	created, err := uc.CreateFeedback(context.Background(), &dto.FeedbackRequest{
		PatientID:     patientID,
		DentistID:     dentistID,
		AppointmentID: appointmentID,
		Rating:        5,
		Comments:      "painless",
	})
	if err != nil {
		t.Fatalf("CreateFeedback returned error: %v", err)
	}
	if created.Rating != 5 || created.Comments != "painless" {
		t.Fatalf("unexpected response: %+v", created)
	}

	list, err = uc.ListFeedback(context.Background())
	if err != nil {
		t.Fatalf("ListFeedback returned error: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected one entry, got %d", list.Total)
	}
}

func TestFeedbackUsecase_Create_MissingReferences(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newFeedbackFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	req := &dto.FeedbackRequest{PatientID: 999, DentistID: dentistID, AppointmentID: appointmentID, Rating: 4}
	if _, err := uc.CreateFeedback(context.Background(), req); err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}

	req = &dto.FeedbackRequest{PatientID: patientID, DentistID: 999, AppointmentID: appointmentID, Rating: 4}
	if _, err := uc.CreateFeedback(context.Background(), req); err != ErrDentistNotFound {
		t.Fatalf("expected ErrDentistNotFound, got %v", err)
	}

	req = &dto.FeedbackRequest{PatientID: patientID, DentistID: dentistID, AppointmentID: 999, Rating: 4}
	if _, err := uc.CreateFeedback(context.Background(), req); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestFeedbackUsecase_UpdateDelete(t *testing.T) {
	uc, patientRepo, dentistRepo, appointmentRepo := newFeedbackFixture()
	patientID := seedPatient(patientRepo)
	dentistID := seedDentist(dentistRepo)
	appointmentID := seedAppointment(appointmentRepo, patientID, dentistID)

	created, err := uc.CreateFeedback(context.Background(), &dto.FeedbackRequest{
		PatientID: patientID, DentistID: dentistID, AppointmentID: appointmentID, Rating: 3,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := uc.UpdateFeedback(context.Background(), created.ID, &dto.FeedbackRequest{
		PatientID: patientID, DentistID: dentistID, AppointmentID: appointmentID, Rating: 1, Comments: "long wait",
	})
	if err != nil {
		t.Fatalf("UpdateFeedback returned error: %v", err)
	}
	if updated.Rating != 1 || updated.Comments != "long wait" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := uc.DeleteFeedback(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteFeedback returned error: %v", err)
	}
	if _, err := uc.GetFeedback(context.Background(), created.ID); err != ErrFeedbackNotFound {
		t.Fatalf("expected ErrFeedbackNotFound after delete, got %v", err)
	}
}
