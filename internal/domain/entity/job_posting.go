package entity

import (
	"time"

	"github.com/google/uuid"

	"medilink/pkg/geo"
)

// JobPostingStatus is the lifecycle state of a posting.
type JobPostingStatus string

const (
	JobPostingStatusOpen   JobPostingStatus = "open"
	JobPostingStatusClosed JobPostingStatus = "closed"
)

// JobPosting represents a shift listing published by a hospital.
//
// Coordinates are snapshotted from the hospital profile at creation time and
// are not live-linked: moving the hospital later does not move old postings.
type JobPosting struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Title         string           `gorm:"type:varchar(255);not null" json:"title"`
	Description   string           `gorm:"type:text" json:"description,omitempty"`
	HourlyRate    int              `gorm:"not null" json:"hourly_rate"`
	WorkStartDate time.Time        `gorm:"type:date;not null;index" json:"work_start_date"`
	WorkEndDate   time.Time        `gorm:"type:date;not null" json:"work_end_date"`
	StartTime     string           `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string           `gorm:"type:varchar(5);not null" json:"end_time"`
	Status        JobPostingStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	ContactLink   string           `gorm:"type:varchar(500)" json:"contact_link,omitempty"`
	Latitude      float64          `gorm:"not null;default:0" json:"latitude"`
	Longitude     float64          `gorm:"not null;default:0" json:"longitude"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital HospitalProfile `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

func (j *JobPosting) Location() geo.Point {
	return geo.Point{Lat: j.Latitude, Lng: j.Longitude}
}

func (j *JobPosting) IsOpen() bool {
	return j.Status == JobPostingStatusOpen
}

// Close moves the posting out of worker-facing queries.
func (j *JobPosting) Close() {
	j.Status = JobPostingStatusClosed
}

// IsDisplayable reports whether the posting should appear on worker-facing
// maps: it is open and its location snapshot was resolved at creation.
func (j *JobPosting) IsDisplayable() bool {
	return j.IsOpen() && j.Location().IsSet()
}
