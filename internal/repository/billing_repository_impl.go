package repository

import (
	"context"
	"errors"

	"dental-clinic-portal/internal/domain/entity"
	domainRepo "dental-clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *billingRepository) FindByID(ctx context.Context, id uint) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&billing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Billing, error) {
	var records []entity.Billing
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *billingRepository) Update(ctx context.Context, billing *entity.Billing) error {
	return r.db.WithContext(ctx).Omit("Appointment", "Patient").Save(billing).Error
}

func (r *billingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Billing{}).Error
}
