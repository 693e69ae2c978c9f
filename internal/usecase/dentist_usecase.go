package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDentistNotFound = errors.New("dentist not found")

type DentistUsecase interface {
	CreateDentist(ctx context.Context, req *dto.DentistRequest) (*dto.DentistResponse, error)
	GetDentist(ctx context.Context, id uint) (*dto.DentistResponse, error)
	UpdateDentist(ctx context.Context, id uint, req *dto.DentistRequest) (*dto.DentistResponse, error)
	DeleteDentist(ctx context.Context, id uint) error
}

type dentistUsecase struct {
	log         *logrus.Logger
	dentistRepo repository.DentistRepository
}

func NewDentistUsecase(log *logrus.Logger, dentistRepo repository.DentistRepository) DentistUsecase {
	return &dentistUsecase{
		log:         log,
		dentistRepo: dentistRepo,
	}
}

func (u *dentistUsecase) CreateDentist(ctx context.Context, req *dto.DentistRequest) (*dto.DentistResponse, error) {
	dentist := &entity.Dentist{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Speciality:    req.Speciality,
		LicenseNumber: req.LicenseNumber,
	}

	if err := u.dentistRepo.Create(ctx, dentist); err != nil {
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	return dentistToResponse(dentist), nil
}

func (u *dentistUsecase) GetDentist(ctx context.Context, id uint) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return dentistToResponse(dentist), nil
}

func (u *dentistUsecase) UpdateDentist(ctx context.Context, id uint, req *dto.DentistRequest) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	dentist.FirstName = req.FirstName
	dentist.LastName = req.LastName
	dentist.Speciality = req.Speciality
	dentist.LicenseNumber = req.LicenseNumber

	if err := u.dentistRepo.Update(ctx, dentist); err != nil {
		u.log.Warnf("Failed to update dentist: %+v", err)
		return nil, err
	}

	return dentistToResponse(dentist), nil
}

func (u *dentistUsecase) DeleteDentist(ctx context.Context, id uint) error {
	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	if err := u.dentistRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete dentist: %+v", err)
		return err
	}

	return nil
}

func dentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	return &dto.DentistResponse{
		ID:            dentist.ID,
		FirstName:     dentist.FirstName,
		LastName:      dentist.LastName,
		Speciality:    dentist.Speciality,
		LicenseNumber: dentist.LicenseNumber,
		CreatedAt:     dentist.CreatedAt,
		UpdatedAt:     dentist.UpdatedAt,
	}
}
