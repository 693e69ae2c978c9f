package dto

import "time"

type InsuranceRequest struct {
	Provider     string `json:"provider" validate:"required,oneof=aetna cigna metlife guardian humana delta_dental"`
	PolicyNumber string `json:"policy_number" validate:"required"`
	PatientID    uint   `json:"patient_id" validate:"required"`
}

type InsuranceResponse struct {
	ID           uint      `json:"id"`
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policy_number"`
	PatientID    uint      `json:"patient_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
