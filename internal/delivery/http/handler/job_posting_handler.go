package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"medilink/internal/delivery/dto"
	"medilink/internal/delivery/http/middleware"
	"medilink/internal/usecase"
	"medilink/pkg/response"
	"medilink/pkg/validator"
)

type JobPostingHandler struct {
	postingUsecase usecase.JobPostingUsecase
	validator      *validator.CustomValidator
}

func NewJobPostingHandler(postingUsecase usecase.JobPostingUsecase, validator *validator.CustomValidator) *JobPostingHandler {
	return &JobPostingHandler{
		postingUsecase: postingUsecase,
		validator:      validator,
	}
}

func (h *JobPostingHandler) CreatePosting(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	posting, err := h.postingUsecase.CreatePosting(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Hospital profile not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create job posting")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Job posting created successfully", posting)
}

func (h *JobPostingHandler) GetPosting(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid posting ID", nil)
		return
	}

	posting, err := h.postingUsecase.GetPosting(r.Context(), postingID)
	if err != nil {
		if err == usecase.ErrPostingNotFound {
			response.NotFound(w, "Job posting not found")
			return
		}
		response.InternalServerError(w, "Failed to get job posting")
		return
	}

	response.Success(w, http.StatusOK, "Job posting retrieved successfully", posting)
}

func (h *JobPostingHandler) GetMyPostings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	postings, err := h.postingUsecase.GetMyPostings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list job postings")
		return
	}

	response.Success(w, http.StatusOK, "Job postings retrieved successfully", postings)
}

func (h *JobPostingHandler) ClosePosting(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	postingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid posting ID", nil)
		return
	}

	posting, err := h.postingUsecase.ClosePosting(r.Context(), userID, postingID)
	if err != nil {
		switch err {
		case usecase.ErrPostingNotFound:
			response.NotFound(w, "Job posting not found")
		case usecase.ErrNotPostingOwner:
			response.Forbidden(w, "You can only close your own postings")
		default:
			response.InternalServerError(w, "Failed to close job posting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Job posting closed successfully", posting)
}
