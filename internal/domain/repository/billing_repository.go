package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type BillingRepository interface {
	Create(ctx context.Context, billing *entity.Billing) error
	FindByID(ctx context.Context, id uint) (*entity.Billing, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Billing, error)
	Update(ctx context.Context, billing *entity.Billing) error
	Delete(ctx context.Context, id uint) error
}
