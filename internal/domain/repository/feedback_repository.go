package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uint) (*entity.Feedback, error)
	FindAll(ctx context.Context) ([]entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id uint) error
}
