package repository

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/domain/entity"
	domainRepo "dental-clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistRepository struct {
	db *gorm.DB
}

func NewDentistRepository(db *gorm.DB) domainRepo.DentistRepository {
	return &dentistRepository{db: db}
}

func (r *dentistRepository) Create(ctx context.Context, dentist *entity.Dentist) error {
	return r.db.WithContext(ctx).Create(dentist).Error
}

func (r *dentistRepository) FindByID(ctx context.Context, id uint) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) Update(ctx context.Context, dentist *entity.Dentist) error {
	return r.db.WithContext(ctx).Save(dentist).Error
}

func (r *dentistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Dentist{}).Error
}
