package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing is one invoice raised against an appointment.
// Invariant: AmountDue is strictly positive.
type Billing struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID    uint            `gorm:"not null;index" json:"appointment_id"`
	PatientID        uint            `gorm:"not null;index" json:"patient_id"`
	AmountDue        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_due"`
	PaymentStatus    string          `gorm:"type:varchar(50);not null" json:"payment_status"`
	PaymentMethod    string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	InsuranceClaimID string          `gorm:"type:varchar(100)" json:"insurance_claim_id,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Billing) TableName() string {
	return "billing"
}
