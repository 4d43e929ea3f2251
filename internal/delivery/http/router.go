package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"medilink/internal/delivery/http/handler"
	"medilink/internal/delivery/http/middleware"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	hospitalHandler   *handler.HospitalHandler
	workerHandler     *handler.WorkerHandler
	jobPostingHandler *handler.JobPostingHandler
	mapHandler        *handler.MapHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	workerHandler *handler.WorkerHandler,
	jobPostingHandler *handler.JobPostingHandler,
	mapHandler *handler.MapHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		hospitalHandler:   hospitalHandler,
		workerHandler:     workerHandler,
		jobPostingHandler: jobPostingHandler,
		mapHandler:        mapHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/hospital", r.authHandler.RegisterHospital).Methods(http.MethodPost)
	auth.HandleFunc("/register/worker", r.authHandler.RegisterWorker).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Hospital profile routes (hospital only)
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.Use(r.authMiddleware.Authenticate)
	hospitals.Use(middleware.RequireHospital)
	hospitals.HandleFunc("/me", r.hospitalHandler.GetMyProfile).Methods(http.MethodGet)
	hospitals.HandleFunc("/me", r.hospitalHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Worker profile routes (worker only)
	workers := api.PathPrefix("/workers").Subrouter()
	workers.Use(r.authMiddleware.Authenticate)
	workers.Use(middleware.RequireWorker)
	workers.HandleFunc("/me", r.workerHandler.GetMyProfile).Methods(http.MethodGet)
	workers.HandleFunc("/me", r.workerHandler.UpdateMyProfile).Methods(http.MethodPut)
	workers.HandleFunc("/me/visibility", r.workerHandler.SetVisibility).Methods(http.MethodPut)

	// Job posting routes; posting detail feeds the map popup for either
	// role, writes stay hospital-only.
	jobs := api.PathPrefix("/jobs").Subrouter()
	jobs.Use(r.authMiddleware.Authenticate)
	jobs.Handle("", middleware.RequireHospital(http.HandlerFunc(r.jobPostingHandler.CreatePosting))).Methods(http.MethodPost)
	jobs.Handle("/mine", middleware.RequireHospital(http.HandlerFunc(r.jobPostingHandler.GetMyPostings))).Methods(http.MethodGet)
	jobs.Handle("/{id}/close", middleware.RequireHospital(http.HandlerFunc(r.jobPostingHandler.ClosePosting))).Methods(http.MethodPatch)
	jobs.HandleFunc("/{id}", r.jobPostingHandler.GetPosting).Methods(http.MethodGet)

	// Map routes, one per viewer role
	maps := api.PathPrefix("/map").Subrouter()
	maps.Use(r.authMiddleware.Authenticate)
	maps.Handle("/jobs", middleware.RequireWorker(http.HandlerFunc(r.mapHandler.GetJobMap))).Methods(http.MethodGet)
	maps.Handle("/workers", middleware.RequireHospital(http.HandlerFunc(r.mapHandler.GetWorkerMap))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
