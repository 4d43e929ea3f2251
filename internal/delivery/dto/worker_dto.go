package dto

import (
	"github.com/google/uuid"

	"medilink/pkg/postcode"
)

// Request DTOs

type UpdateWorkerProfileRequest struct {
	Name              string           `json:"name" validate:"omitempty,min=2"`
	PhoneNumber       string           `json:"phone_number" validate:"omitempty"`
	LicenseType       string           `json:"license_type" validate:"omitempty"`
	Address           *postcode.Result `json:"address" validate:"omitempty"`
	DetailAddress     *string          `json:"detail_address" validate:"omitempty"`
	WorkRadiusKm      *int             `json:"work_radius_km" validate:"omitempty,gt=0"`
	DesiredHourlyRate *int             `json:"desired_hourly_rate" validate:"omitempty,gt=0"`
	AvailableTasks    *string          `json:"available_tasks" validate:"omitempty"`
	AvailableDays     []string         `json:"available_days" validate:"omitempty,dive,oneof=월 화 수 목 금 토 일"`
	StartTime         *string          `json:"start_time" validate:"omitempty"`
	EndTime           *string          `json:"end_time" validate:"omitempty"`
	ContactLink       *string          `json:"contact_link" validate:"omitempty,url"`
	Introduction      *string          `json:"introduction" validate:"omitempty"`
}

type SetVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" validate:"required"`
}

// Response DTOs

// WorkerProfileResponse is the owner-facing view: it includes the precise
// address. It must never be served to any other account.
type WorkerProfileResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	LicenseType       string    `json:"license_type"`
	LicenseNumber     string    `json:"license_number"`
	Address           string    `json:"address"`
	DetailAddress     string    `json:"detail_address,omitempty"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Geocoded          bool      `json:"geocoded"`
	WorkRadiusKm      int       `json:"work_radius_km"`
	DesiredHourlyRate int       `json:"desired_hourly_rate,omitempty"`
	AvailableTasks    string    `json:"available_tasks,omitempty"`
	AvailableDays     []string  `json:"available_days,omitempty"`
	StartTime         string    `json:"start_time,omitempty"`
	EndTime           string    `json:"end_time,omitempty"`
	ContactLink       string    `json:"contact_link,omitempty"`
	Introduction      string    `json:"introduction,omitempty"`
	IsVisible         bool      `json:"is_visible"`
}
