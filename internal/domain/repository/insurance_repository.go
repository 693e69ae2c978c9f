package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type InsuranceRepository interface {
	Create(ctx context.Context, insurance *entity.Insurance) error
	FindByID(ctx context.Context, id uint) (*entity.Insurance, error)
	Update(ctx context.Context, insurance *entity.Insurance) error
	Delete(ctx context.Context, id uint) error
}
