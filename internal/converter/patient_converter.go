package converter

import (
	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:                    patient.ID,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		Email:                 patient.Email,
		PhoneNumber:           patient.PhoneNumber,
		Address:               patient.Address,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		MedicalHistory:        patient.MedicalHistory,
		InsuranceProvider:     patient.InsuranceProvider,
		InsurancePolicyNumber: patient.InsurancePolicyNumber,
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		resp.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	return resp
}
