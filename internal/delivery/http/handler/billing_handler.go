package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/usecase"
	"dental-clinic-portal/pkg/response"
	"dental-clinic-portal/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var req dto.BillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.CreateBilling(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidAmount:
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record created successfully", billing)
}

func (h *BillingHandler) GetBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	billing, err := h.billingUsecase.GetBilling(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to get billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record retrieved successfully", billing)
}

func (h *BillingHandler) GetBillingByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseIDParam(w, r, "patientId")
	if !ok {
		return
	}

	billing, err := h.billingUsecase.GetBillingByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get billing records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing records retrieved successfully", billing)
}

func (h *BillingHandler) UpdateBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req dto.BillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.UpdateBilling(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidAmount:
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record updated successfully", billing)
}

func (h *BillingHandler) DeleteBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.billingUsecase.DeleteBilling(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to delete billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record deleted successfully", nil)
}
