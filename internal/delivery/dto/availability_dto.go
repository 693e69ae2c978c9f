package dto

type AvailabilityRequest struct {
	DentistID uint   `json:"dentist_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"` // Format: YYYY-MM-DDTHH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: YYYY-MM-DDTHH:MM
}

type AvailabilityResponse struct {
	ID        uint   `json:"id"`
	DentistID uint   `json:"dentist_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityListResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
	Total        int                    `json:"total"`
}
