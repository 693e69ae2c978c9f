package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/usecase"
	"dental-clinic-portal/pkg/response"
	"dental-clinic-portal/pkg/validator"
)

type InsuranceHandler struct {
	insuranceUsecase usecase.InsuranceUsecase
	validator        *validator.CustomValidator
}

func NewInsuranceHandler(insuranceUsecase usecase.InsuranceUsecase, validator *validator.CustomValidator) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceUsecase: insuranceUsecase,
		validator:        validator,
	}
}

func (h *InsuranceHandler) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	var req dto.InsuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	insurance, err := h.insuranceUsecase.CreateInsurance(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create insurance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Insurance created successfully", insurance)
}

func (h *InsuranceHandler) GetInsurance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	insurance, err := h.insuranceUsecase.GetInsurance(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInsuranceNotFound:
			response.NotFound(w, "Insurance not found")
		default:
			response.InternalServerError(w, "Failed to get insurance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Insurance retrieved successfully", insurance)
}

func (h *InsuranceHandler) UpdateInsurance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req dto.InsuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	insurance, err := h.insuranceUsecase.UpdateInsurance(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInsuranceNotFound:
			response.NotFound(w, "Insurance not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update insurance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Insurance updated successfully", insurance)
}

func (h *InsuranceHandler) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.insuranceUsecase.DeleteInsurance(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrInsuranceNotFound:
			response.NotFound(w, "Insurance not found")
		default:
			response.InternalServerError(w, "Failed to delete insurance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Insurance deleted successfully", nil)
}
