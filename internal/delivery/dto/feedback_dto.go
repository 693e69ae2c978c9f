package dto

import "time"

type FeedbackRequest struct {
	PatientID     uint   `json:"patient_id" validate:"required"`
	DentistID     uint   `json:"dentist_id" validate:"required"`
	AppointmentID uint   `json:"appointment_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comments      string `json:"comments" validate:"omitempty"`
}

type FeedbackResponse struct {
	ID            uint      `json:"id"`
	PatientID     uint      `json:"patient_id"`
	DentistID     uint      `json:"dentist_id"`
	AppointmentID uint      `json:"appointment_id"`
	Rating        int       `json:"rating"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total"`
}
