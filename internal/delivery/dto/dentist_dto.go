package dto

import "time"

type DentistRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Speciality    string `json:"speciality" validate:"omitempty"`
	LicenseNumber string `json:"license_number" validate:"omitempty"`
}

type DentistResponse struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Speciality    string    `json:"speciality,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
