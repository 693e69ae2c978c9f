package repository

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/domain/entity"
	domainRepo "dental-clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) domainRepo.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, availability *entity.Availability) error {
	return r.db.WithContext(ctx).Create(availability).Error
}

func (r *availabilityRepository) FindByID(ctx context.Context, id uint) (*entity.Availability, error) {
	var availability entity.Availability
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindByDentistID(ctx context.Context, dentistID uint) ([]entity.Availability, error) {
	var windows []entity.Availability
	err := r.db.WithContext(ctx).Where("dentist_id = ?", dentistID).Order("start_time ASC").Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityRepository) Update(ctx context.Context, availability *entity.Availability) error {
	return r.db.WithContext(ctx).Omit("Dentist").Save(availability).Error
}

func (r *availabilityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Availability{}).Error
}
