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

type WorkerHandler struct {
	workerUsecase usecase.WorkerProfileUsecase
	validator     *validator.CustomValidator
}

func NewWorkerHandler(workerUsecase usecase.WorkerProfileUsecase, validator *validator.CustomValidator) *WorkerHandler {
	return &WorkerHandler{
		workerUsecase: workerUsecase,
		validator:     validator,
	}
}

func (h *WorkerHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.workerUsecase.GetMyProfile(r.Context(), userID)
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

func (h *WorkerHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateWorkerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.workerUsecase.UpdateProfile(r.Context(), userID, &req)
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

// SetVisibility toggles whether the worker appears on hospital maps.
func (h *WorkerHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.workerUsecase.SetVisibility(r.Context(), userID, *req.IsVisible)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to update visibility")
		return
	}

	response.Success(w, http.StatusOK, "Visibility updated successfully", profile)
}
