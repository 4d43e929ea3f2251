package handler

import (
	"net/http"

	"medilink/internal/delivery/http/middleware"
	"medilink/internal/usecase"
	"medilink/pkg/response"
)

type MapHandler struct {
	mapUsecase usecase.MapUsecase
}

func NewMapHandler(mapUsecase usecase.MapUsecase) *MapHandler {
	return &MapHandler{mapUsecase: mapUsecase}
}

// GetJobMap serves a worker's map: open postings city-wide, optionally
// narrowed to the viewer's declared travel radius with ?within_radius=true.
func (h *MapHandler) GetJobMap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	withinRadius := r.URL.Query().Get("within_radius") == "true"

	jobMap, err := h.mapUsecase.GetWorkerMap(r.Context(), userID, withinRadius)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to load job map")
		return
	}

	response.Success(w, http.StatusOK, "Job map retrieved successfully", jobMap)
}

// GetWorkerMap serves a hospital's map of discoverable workers.
func (h *MapHandler) GetWorkerMap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	workerMap, err := h.mapUsecase.GetHospitalMap(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to load worker map")
		return
	}

	response.Success(w, http.StatusOK, "Worker map retrieved successfully", workerMap)
}
