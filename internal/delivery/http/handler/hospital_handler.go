package handler

import (
	"encoding/json"
	"net/http"

	"medilink/internal/delivery/dto"
	"medilink/internal/delivery/http/middleware"
	"medilink/internal/usecase"
	"medilink/pkg/response"
	"medilink/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalProfileUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalProfileUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.hospitalUsecase.GetMyProfile(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *HospitalHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateHospitalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.hospitalUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
