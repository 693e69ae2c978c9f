package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingRequest struct {
	AppointmentID    uint            `json:"appointment_id" validate:"required"`
	PatientID        uint            `json:"patient_id" validate:"required"`
	AmountDue        decimal.Decimal `json:"amount_due"`
	PaymentStatus    string          `json:"payment_status" validate:"required"`
	PaymentMethod    string          `json:"payment_method" validate:"omitempty"`
	InsuranceClaimID string          `json:"insurance_claim_id" validate:"omitempty"`
}

type BillingResponse struct {
	ID               uint            `json:"id"`
	AppointmentID    uint            `json:"appointment_id"`
	PatientID        uint            `json:"patient_id"`
	AmountDue        decimal.Decimal `json:"amount_due"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	InsuranceClaimID string          `json:"insurance_claim_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BillingListResponse struct {
	Billing []BillingResponse `json:"billing"`
	Total   int               `json:"total"`
}
