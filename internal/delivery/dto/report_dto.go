package dto

import "time"

type ReportRequest struct {
	PatientID     uint   `json:"patient_id" validate:"required"`
	DentistID     uint   `json:"dentist_id" validate:"required"`
	AppointmentID uint   `json:"appointment_id" validate:"required"`
	ReportDetails string `json:"report_details" validate:"required"`
}

type ReportResponse struct {
	ID            uint      `json:"id"`
	PatientID     uint      `json:"patient_id"`
	DentistID     uint      `json:"dentist_id"`
	AppointmentID uint      `json:"appointment_id"`
	ReportDetails string    `json:"report_details"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
