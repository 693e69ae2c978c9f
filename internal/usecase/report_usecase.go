package usecase

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrReportNotFound = errors.New("report not found")

type ReportUsecase interface {
	CreateReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
	GetReport(ctx context.Context, id uint) (*dto.ReportResponse, error)
	UpdateReport(ctx context.Context, id uint, req *dto.ReportRequest) (*dto.ReportResponse, error)
	DeleteReport(ctx context.Context, id uint) error
}

type reportUsecase struct {
	log             *logrus.Logger
	reportRepo      repository.ReportRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	appointmentRepo repository.AppointmentRepository
}

func NewReportUsecase(
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	appointmentRepo repository.AppointmentRepository,
) ReportUsecase {
	return &reportUsecase{
		log:             log,
		reportRepo:      reportRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *reportUsecase) CreateReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if err := u.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	report := &entity.Report{
		PatientID:     req.PatientID,
		DentistID:     req.DentistID,
		AppointmentID: req.AppointmentID,
		ReportDetails: req.ReportDetails,
	}

	if err := u.reportRepo.Create(ctx, report); err != nil {
		u.log.Warnf("Failed to create report: %+v", err)
		return nil, err
	}

	return reportToResponse(report), nil
}

func (u *reportUsecase) GetReport(ctx context.Context, id uint) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	return reportToResponse(report), nil
}

func (u *reportUsecase) UpdateReport(ctx context.Context, id uint, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if err := u.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	report.PatientID = req.PatientID
	report.DentistID = req.DentistID
	report.AppointmentID = req.AppointmentID
	report.ReportDetails = req.ReportDetails

	if err := u.reportRepo.Update(ctx, report); err != nil {
		u.log.Warnf("Failed to update report: %+v", err)
		return nil, err
	}

	return reportToResponse(report), nil
}

func (u *reportUsecase) DeleteReport(ctx context.Context, id uint) error {
	report, err := u.reportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find report: %+v", err)
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}

	if err := u.reportRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete report: %+v", err)
		return err
	}

	return nil
}

func (u *reportUsecase) checkReferences(ctx context.Context, req *dto.ReportRequest) error {
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

func reportToResponse(report *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:            report.ID,
		PatientID:     report.PatientID,
		DentistID:     report.DentistID,
		AppointmentID: report.AppointmentID,
		ReportDetails: report.ReportDetails,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}
