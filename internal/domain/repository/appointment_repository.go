package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uint) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uint) error
}
