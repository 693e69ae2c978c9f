package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *entity.Availability) error
	FindByID(ctx context.Context, id uint) (*entity.Availability, error)
	FindByDentistID(ctx context.Context, dentistID uint) ([]entity.Availability, error)
	Update(ctx context.Context, availability *entity.Availability) error
	Delete(ctx context.Context, id uint) error
}
