package converter

import (
	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientID:     appointment.PatientID,
		DentistID:     appointment.DentistID,
		Date:          appointment.Date.Format("2006-01-02"),
		Time:          appointment.Time,
		Status:        string(appointment.Status),
		TreatmentType: string(appointment.TreatmentType),
		Notes:         appointment.Notes,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}
	if appointment.Cost.Valid {
		cost := appointment.Cost.Decimal
		resp.Cost = &cost
	}

	return resp
}

// AppointmentsToListResponse converts a slice of appointments
func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
