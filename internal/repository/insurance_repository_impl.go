package repository

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/domain/entity"
	domainRepo "dental-clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type insuranceRepository struct {
	db *gorm.DB
}

func NewInsuranceRepository(db *gorm.DB) domainRepo.InsuranceRepository {
	return &insuranceRepository{db: db}
}

func (r *insuranceRepository) Create(ctx context.Context, insurance *entity.Insurance) error {
	return r.db.WithContext(ctx).Create(insurance).Error
}

func (r *insuranceRepository) FindByID(ctx context.Context, id uint) (*entity.Insurance, error) {
	var insurance entity.Insurance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insurance, nil
}

func (r *insuranceRepository) Update(ctx context.Context, insurance *entity.Insurance) error {
	return r.db.WithContext(ctx).Omit("Patient").Save(insurance).Error
}

func (r *insuranceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Insurance{}).Error
}
