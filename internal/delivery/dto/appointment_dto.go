package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentRequest struct {
	PatientID     uint             `json:"patient_id" validate:"required"`
	DentistID     uint             `json:"dentist_id" validate:"required"`
	Date          string           `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time          string           `json:"time" validate:"required"` // Format: HH:MM
	Status        string           `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	TreatmentType string           `json:"treatment_type" validate:"required,oneof=cleaning filling extraction root_canal"`
	Notes         string           `json:"notes" validate:"omitempty"`
	Cost          *decimal.Decimal `json:"cost" validate:"omitempty"`
}

type AppointmentResponse struct {
	ID            uint             `json:"id"`
	PatientID     uint             `json:"patient_id"`
	DentistID     uint             `json:"dentist_id"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Status        string           `json:"status"`
	TreatmentType string           `json:"treatment_type"`
	Notes         string           `json:"notes,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
