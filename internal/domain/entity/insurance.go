package entity

import "time"

// InsuranceProvider enumerates the carriers the clinic works with
type InsuranceProvider string

const (
	ProviderAetna       InsuranceProvider = "aetna"
	ProviderCigna       InsuranceProvider = "cigna"
	ProviderMetLife     InsuranceProvider = "metlife"
	ProviderGuardian    InsuranceProvider = "guardian"
	ProviderHumana      InsuranceProvider = "humana"
	ProviderDeltaDental InsuranceProvider = "delta_dental"
)

// Insurance is a patient's insurance policy on file
type Insurance struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Provider     InsuranceProvider `gorm:"type:varchar(50);not null" json:"provider"`
	PolicyNumber string            `gorm:"type:varchar(100);not null" json:"policy_number"`
	PatientID    uint              `gorm:"not null;index" json:"patient_id"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Insurance) TableName() string {
	return "insurances"
}
