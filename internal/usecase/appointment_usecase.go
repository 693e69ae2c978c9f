package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dental-clinic-portal/internal/converter"
	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"
	"dental-clinic-portal/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, actorID *uint, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, actorID *uint, id uint, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, actorID *uint, id uint) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actorID *uint, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	// Both references must resolve before anything is written.
	if err := u.checkReferences(ctx, req.PatientID, req.DentistID); err != nil {
		return nil, err
	}

	appointment, err := appointmentFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, actorID, entity.AuditActionAppointmentCreate, "appointment", strconv.FormatUint(uint64(appointment.ID), 10), map[string]interface{}{
		"patient_id": appointment.PatientID,
		"dentist_id": appointment.DentistID,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointmentsByPatient returns an empty list, not an error, for a patient
// with no appointments; only a missing patient is a 404.
func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, actorID *uint, id uint, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	existing, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.checkReferences(ctx, req.PatientID, req.DentistID); err != nil {
		return nil, err
	}

	appointment, err := appointmentFromRequest(req)
	if err != nil {
		return nil, err
	}
	appointment.ID = existing.ID
	appointment.CreatedAt = existing.CreatedAt

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, actorID, entity.AuditActionAppointmentUpdate, "appointment", strconv.FormatUint(uint64(appointment.ID), 10), map[string]interface{}{
		"status": string(appointment.Status),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, actorID *uint, id uint) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.audit.Record(ctx, actorID, entity.AuditActionAppointmentDelete, "appointment", strconv.FormatUint(uint64(id), 10), nil)

	return nil
}

func (u *appointmentUsecase) checkReferences(ctx context.Context, patientID, dentistID uint) error {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	dentist, err := u.dentistRepo.FindByID(ctx, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	return nil
}

func appointmentFromRequest(req *dto.AppointmentRequest) (*entity.Appointment, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	status := entity.AppointmentStatusPending
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
	}

	appointment := &entity.Appointment{
		PatientID:     req.PatientID,
		DentistID:     req.DentistID,
		Date:          date,
		Time:          req.Time,
		Status:        status,
		TreatmentType: entity.TreatmentType(req.TreatmentType),
		Notes:         req.Notes,
	}
	if req.Cost != nil {
		appointment.Cost = decimal.NewNullDecimal(*req.Cost)
	}

	return appointment, nil
}
