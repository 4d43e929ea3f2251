package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateJobPostingRequest takes a date range; a single-day shift is sent
// with work_end_date equal to work_start_date or omitted.
type CreateJobPostingRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"omitempty"`
	HourlyRate    int    `json:"hourly_rate" validate:"required,gt=0"`
	WorkStartDate string `json:"work_start_date" validate:"required"`
	WorkEndDate   string `json:"work_end_date" validate:"omitempty"`
	StartTime     string `json:"start_time" validate:"required"`
	EndTime       string `json:"end_time" validate:"required"`
	ContactLink   string `json:"contact_link" validate:"omitempty,url"`
}

// Response DTOs

type JobPostingResponse struct {
	ID            uuid.UUID `json:"id"`
	HospitalID    uuid.UUID `json:"hospital_id"`
	HospitalName  string    `json:"hospital_name,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	HourlyRate    int       `json:"hourly_rate"`
	HourlyRateKRW string    `json:"hourly_rate_krw"`
	WorkStartDate string    `json:"work_start_date"`
	WorkEndDate   string    `json:"work_end_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	ContactLink   string    `json:"contact_link,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}

type JobPostingListResponse struct {
	Postings []JobPostingResponse `json:"postings"`
	Total    int                  `json:"total"`
}
