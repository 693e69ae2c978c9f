package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAvailabilityNotFound  = errors.New("availability not found")
	ErrInvalidTimeRange      = errors.New("start time must be before end time")
	ErrInvalidDateTimeFormat = errors.New("invalid datetime format, use YYYY-MM-DDTHH:MM")
)

// availabilityTimeLayouts accepted for start/end instants, most specific first.
var availabilityTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type AvailabilityUsecase interface {
	CreateAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAvailabilityByDentist(ctx context.Context, dentistID uint) (*dto.AvailabilityListResponse, error)
	UpdateAvailability(ctx context.Context, id uint, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteAvailability(ctx context.Context, id uint) error
}

type availabilityUsecase struct {
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	dentistRepo      repository.DentistRepository
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	dentistRepo repository.DentistRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:              log,
		availabilityRepo: availabilityRepo,
		dentistRepo:      dentistRepo,
	}
}

func (u *availabilityUsecase) CreateAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	dentist, err := u.dentistRepo.FindByID(ctx, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	start, end, err := parseAvailabilityWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	availability := &entity.Availability{
		DentistID: req.DentistID,
		DayOfWeek: req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
	}

	if err := u.availabilityRepo.Create(ctx, availability); err != nil {
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}

	return availabilityToResponse(availability), nil
}

func (u *availabilityUsecase) GetAvailabilityByDentist(ctx context.Context, dentistID uint) (*dto.AvailabilityListResponse, error) {
	dentist, err := u.dentistRepo.FindByID(ctx, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	windows, err := u.availabilityRepo.FindByDentistID(ctx, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}

	responses := make([]dto.AvailabilityResponse, len(windows))
	for i := range windows {
		responses[i] = *availabilityToResponse(&windows[i])
	}

	return &dto.AvailabilityListResponse{
		Availability: responses,
		Total:        len(responses),
	}, nil
}

func (u *availabilityUsecase) UpdateAvailability(ctx context.Context, id uint, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	availability, err := u.availabilityRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}

	dentist, err := u.dentistRepo.FindByID(ctx, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	start, end, err := parseAvailabilityWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	availability.DentistID = req.DentistID
	availability.DayOfWeek = req.DayOfWeek
	availability.StartTime = start
	availability.EndTime = end

	if err := u.availabilityRepo.Update(ctx, availability); err != nil {
		u.log.Warnf("Failed to update availability: %+v", err)
		return nil, err
	}

	return availabilityToResponse(availability), nil
}

func (u *availabilityUsecase) DeleteAvailability(ctx context.Context, id uint) error {
	availability, err := u.availabilityRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return err
	}
	if availability == nil {
		return ErrAvailabilityNotFound
	}

	if err := u.availabilityRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}

	return nil
}

func parseAvailabilityWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseLocalDateTime(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateTimeFormat
	}
	end, err := parseLocalDateTime(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateTimeFormat
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return start, end, nil
}

func parseLocalDateTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range availabilityTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func availabilityToResponse(availability *entity.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:        availability.ID,
		DentistID: availability.DentistID,
		DayOfWeek: availability.DayOfWeek,
		StartTime: availability.StartTime.Format("2006-01-02T15:04"),
		EndTime:   availability.EndTime.Format("2006-01-02T15:04"),
	}
}
