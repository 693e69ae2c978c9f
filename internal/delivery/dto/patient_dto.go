package dto

import "time"

// PatientRequest is used for both create and update; update replaces every
// field, so omitted optional fields reset to their defaults.
type PatientRequest struct {
	FirstName             string `json:"first_name" validate:"required"`
	LastName              string `json:"last_name" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,max=20"`
	Address               string `json:"address" validate:"omitempty"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	MedicalHistory        string `json:"medical_history" validate:"omitempty"`
	InsuranceProvider     string `json:"insurance_provider" validate:"omitempty,oneof=aetna cigna metlife guardian humana delta_dental"`
	InsurancePolicyNumber string `json:"insurance_policy_number" validate:"omitempty"`
}

type PatientResponse struct {
	ID                    uint      `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	Address               string    `json:"address,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	MedicalHistory        string    `json:"medical_history,omitempty"`
	InsuranceProvider     string    `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string    `json:"insurance_policy_number,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
