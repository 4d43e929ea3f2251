package dto

import "github.com/google/uuid"

// Map response DTOs. These are the only shapes served across account
// boundaries, so they carry exactly what the map needs and nothing more.

// WorkerPinResponse is the hospital-facing view of a visible worker.
// Coordinates are rounded to reduced precision and no address fields exist
// on this type at all.
type WorkerPinResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Name              string    `json:"name"`
	LicenseType       string    `json:"license_type"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	WorkRadiusKm      int       `json:"work_radius_km"`
	WorkRadiusM       int       `json:"work_radius_m"` // circle radius for map rendering
	DesiredHourlyRate int       `json:"desired_hourly_rate,omitempty"`
	RateKRW           string    `json:"rate_krw,omitempty"`
	AvailableTasks    string    `json:"available_tasks,omitempty"`
	AvailableDays     []string  `json:"available_days,omitempty"`
	StartTime         string    `json:"start_time,omitempty"`
	EndTime           string    `json:"end_time,omitempty"`
	ContactLink       string    `json:"contact_link,omitempty"`
	Introduction      string    `json:"introduction,omitempty"`
}

type WorkerMapResponse struct {
	Workers []WorkerPinResponse `json:"workers"`
	Total   int                 `json:"total"`
	Center  *MapCenter          `json:"center,omitempty"`
}

type JobMapResponse struct {
	Postings []JobPostingResponse `json:"postings"`
	Total    int                  `json:"total"`
	Center   *MapCenter           `json:"center,omitempty"`
	// FilteredByRadius is true when the list was narrowed to the viewer's
	// declared travel radius rather than the city-wide eligible set.
	FilteredByRadius bool `json:"filtered_by_radius"`
}

// MapCenter is the viewer's own resolved location, used to center the map.
// Absent while the viewer's address is ungeocoded.
type MapCenter struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	WorkRadiusKm int     `json:"work_radius_km,omitempty"`
}
