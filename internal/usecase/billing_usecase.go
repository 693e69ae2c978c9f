package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrBillingNotFound = errors.New("billing record not found")
	ErrInvalidAmount   = errors.New("amount due must be greater than zero")
)

type BillingUsecase interface {
	CreateBilling(ctx context.Context, req *dto.BillingRequest) (*dto.BillingResponse, error)
	GetBilling(ctx context.Context, id uint) (*dto.BillingResponse, error)
	GetBillingByPatient(ctx context.Context, patientID uint) (*dto.BillingListResponse, error)
	UpdateBilling(ctx context.Context, id uint, req *dto.BillingRequest) (*dto.BillingResponse, error)
	DeleteBilling(ctx context.Context, id uint) error
}

type billingUsecase struct {
	log             *logrus.Logger
	billingRepo     repository.BillingRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewBillingUsecase(
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) BillingUsecase {
	return &billingUsecase{
		log:             log,
		billingRepo:     billingRepo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (u *billingUsecase) CreateBilling(ctx context.Context, req *dto.BillingRequest) (*dto.BillingResponse, error) {
	if !req.AmountDue.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := u.checkReferences(ctx, req.AppointmentID, req.PatientID); err != nil {
		return nil, err
	}

	billing := billingFromRequest(req)

	if err := u.billingRepo.Create(ctx, billing); err != nil {
		u.log.Warnf("Failed to create billing record: %+v", err)
		return nil, err
	}

	return billingToResponse(billing), nil
}

func (u *billingUsecase) GetBilling(ctx context.Context, id uint) (*dto.BillingResponse, error) {
	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record: %+v", err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	return billingToResponse(billing), nil
}

func (u *billingUsecase) GetBillingByPatient(ctx context.Context, patientID uint) (*dto.BillingListResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.billingRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find billing records: %+v", err)
		return nil, err
	}

	responses := make([]dto.BillingResponse, len(records))
	for i := range records {
		responses[i] = *billingToResponse(&records[i])
	}

	return &dto.BillingListResponse{
		Billing: responses,
		Total:   len(responses),
	}, nil
}

func (u *billingUsecase) UpdateBilling(ctx context.Context, id uint, req *dto.BillingRequest) (*dto.BillingResponse, error) {
	existing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrBillingNotFound
	}

	if !req.AmountDue.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := u.checkReferences(ctx, req.AppointmentID, req.PatientID); err != nil {
		return nil, err
	}

	billing := billingFromRequest(req)
	billing.ID = existing.ID
	billing.CreatedAt = existing.CreatedAt

	if err := u.billingRepo.Update(ctx, billing); err != nil {
		u.log.Warnf("Failed to update billing record: %+v", err)
		return nil, err
	}

	return billingToResponse(billing), nil
}

func (u *billingUsecase) DeleteBilling(ctx context.Context, id uint) error {
	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record: %+v", err)
		return err
	}
	if billing == nil {
		return ErrBillingNotFound
	}

	if err := u.billingRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete billing record: %+v", err)
		return err
	}

	return nil
}

func (u *billingUsecase) checkReferences(ctx context.Context, appointmentID, patientID uint) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	return nil
}

func billingFromRequest(req *dto.BillingRequest) *entity.Billing {
	return &entity.Billing{
		AppointmentID:    req.AppointmentID,
		PatientID:        req.PatientID,
		AmountDue:        req.AmountDue,
		PaymentStatus:    req.PaymentStatus,
		PaymentMethod:    req.PaymentMethod,
		InsuranceClaimID: req.InsuranceClaimID,
	}
}

func billingToResponse(billing *entity.Billing) *dto.BillingResponse {
	return &dto.BillingResponse{
		ID:               billing.ID,
		AppointmentID:    billing.AppointmentID,
		PatientID:        billing.PatientID,
		AmountDue:        billing.AmountDue,
		PaymentStatus:    billing.PaymentStatus,
		PaymentMethod:    billing.PaymentMethod,
		InsuranceClaimID: billing.InsuranceClaimID,
		CreatedAt:        billing.CreatedAt,
		UpdatedAt:        billing.UpdatedAt,
	}
}
