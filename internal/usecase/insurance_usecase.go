package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrInsuranceNotFound = errors.New("insurance not found")

type InsuranceUsecase interface {
	CreateInsurance(ctx context.Context, req *dto.InsuranceRequest) (*dto.InsuranceResponse, error)
	GetInsurance(ctx context.Context, id uint) (*dto.InsuranceResponse, error)
	UpdateInsurance(ctx context.Context, id uint, req *dto.InsuranceRequest) (*dto.InsuranceResponse, error)
	DeleteInsurance(ctx context.Context, id uint) error
}

type insuranceUsecase struct {
	log           *logrus.Logger
	insuranceRepo repository.InsuranceRepository
	patientRepo   repository.PatientRepository
}

func NewInsuranceUsecase(
	log *logrus.Logger,
	insuranceRepo repository.InsuranceRepository,
	patientRepo repository.PatientRepository,
) InsuranceUsecase {
	return &insuranceUsecase{
		log:           log,
		insuranceRepo: insuranceRepo,
		patientRepo:   patientRepo,
	}
}

func (u *insuranceUsecase) CreateInsurance(ctx context.Context, req *dto.InsuranceRequest) (*dto.InsuranceResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	insurance := &entity.Insurance{
		Provider:     entity.InsuranceProvider(req.Provider),
		PolicyNumber: req.PolicyNumber,
		PatientID:    req.PatientID,
	}

	if err := u.insuranceRepo.Create(ctx, insurance); err != nil {
		u.log.Warnf("Failed to create insurance: %+v", err)
		return nil, err
	}

	return insuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) GetInsurance(ctx context.Context, id uint) (*dto.InsuranceResponse, error) {
	insurance, err := u.insuranceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, err
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}

	return insuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) UpdateInsurance(ctx context.Context, id uint, req *dto.InsuranceRequest) (*dto.InsuranceResponse, error) {
	insurance, err := u.insuranceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, err
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	insurance.Provider = entity.InsuranceProvider(req.Provider)
	insurance.PolicyNumber = req.PolicyNumber
	insurance.PatientID = req.PatientID

	if err := u.insuranceRepo.Update(ctx, insurance); err != nil {
		u.log.Warnf("Failed to update insurance: %+v", err)
		return nil, err
	}

	return insuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) DeleteInsurance(ctx context.Context, id uint) error {
	insurance, err := u.insuranceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return err
	}
	if insurance == nil {
		return ErrInsuranceNotFound
	}

	if err := u.insuranceRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete insurance: %+v", err)
		return err
	}

	return nil
}

func insuranceToResponse(insurance *entity.Insurance) *dto.InsuranceResponse {
	return &dto.InsuranceResponse{
		ID:           insurance.ID,
		Provider:     string(insurance.Provider),
		PolicyNumber: insurance.PolicyNumber,
		PatientID:    insurance.PatientID,
		CreatedAt:    insurance.CreatedAt,
		UpdatedAt:    insurance.UpdatedAt,
	}
}
