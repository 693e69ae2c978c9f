package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	GetFeedback(ctx context.Context, id uint) (*dto.FeedbackResponse, error)
	ListFeedback(ctx context.Context) (*dto.FeedbackListResponse, error)
	UpdateFeedback(ctx context.Context, id uint, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, id uint) error
}

type feedbackUsecase struct {
	log             *logrus.Logger
	feedbackRepo    repository.FeedbackRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	appointmentRepo repository.AppointmentRepository
}

func NewFeedbackUsecase(
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	appointmentRepo repository.AppointmentRepository,
) FeedbackUsecase {
	return &feedbackUsecase{
		log:             log,
		feedbackRepo:    feedbackRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *feedbackUsecase) CreateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if err := u.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		PatientID:     req.PatientID,
		DentistID:     req.DentistID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comments:      req.Comments,
	}

	if err := u.feedbackRepo.Create(ctx, feedback); err != nil {
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	return feedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetFeedback(ctx context.Context, id uint) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	return feedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) ListFeedback(ctx context.Context) (*dto.FeedbackListResponse, error) {
	records, err := u.feedbackRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list feedback: %+v", err)
		return nil, err
	}

	responses := make([]dto.FeedbackResponse, len(records))
	for i := range records {
		responses[i] = *feedbackToResponse(&records[i])
	}

	return &dto.FeedbackListResponse{
		Feedback: responses,
		Total:    len(responses),
	}, nil
}

func (u *feedbackUsecase) UpdateFeedback(ctx context.Context, id uint, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	if err := u.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	feedback.PatientID = req.PatientID
	feedback.DentistID = req.DentistID
	feedback.AppointmentID = req.AppointmentID
	feedback.Rating = req.Rating
	feedback.Comments = req.Comments

	if err := u.feedbackRepo.Update(ctx, feedback); err != nil {
		u.log.Warnf("Failed to update feedback: %+v", err)
		return nil, err
	}

	return feedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) DeleteFeedback(ctx context.Context, id uint) error {
	feedback, err := u.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}

	if err := u.feedbackRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete feedback: %+v", err)
		return err
	}

	return nil
}

func (u *feedbackUsecase) checkReferences(ctx context.Context, req *dto.FeedbackRequest) error {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	dentist, err := u.dentistRepo.FindByID(ctx, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	return nil
}

func feedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:            feedback.ID,
		PatientID:     feedback.PatientID,
		DentistID:     feedback.DentistID,
		AppointmentID: feedback.AppointmentID,
		Rating:        feedback.Rating,
		Comments:      feedback.Comments,
		CreatedAt:     feedback.CreatedAt,
		UpdatedAt:     feedback.UpdatedAt,
	}
}
