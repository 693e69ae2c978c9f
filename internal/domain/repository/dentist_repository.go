package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type DentistRepository interface {
	Create(ctx context.Context, dentist *entity.Dentist) error
	FindByID(ctx context.Context, id uint) (*entity.Dentist, error)
	Update(ctx context.Context, dentist *entity.Dentist) error
	Delete(ctx context.Context, id uint) error
}
