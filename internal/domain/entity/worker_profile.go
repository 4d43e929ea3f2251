package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"medilink/pkg/geo"
)

// DefaultWorkRadiusKm is applied when a worker registers without declaring
// a travel radius.
const DefaultWorkRadiusKm = 5

// WorkerProfile represents a healthcare worker's job-seeking profile.
//
// Address and DetailAddress are owner-private: they are never included in
// responses served to other accounts. Other roles see only the derived
// coordinates at reduced precision plus the declared radius, and only while
// IsVisible is true.
type WorkerProfile struct {
	UserID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseType       string         `gorm:"type:varchar(100);not null;index" json:"license_type"`
	LicenseNumber     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Address           string         `gorm:"type:varchar(500);not null" json:"address"`
	DetailAddress     string         `gorm:"type:varchar(255)" json:"detail_address,omitempty"`
	Latitude          float64        `gorm:"not null;default:0" json:"latitude"`
	Longitude         float64        `gorm:"not null;default:0" json:"longitude"`
	WorkRadiusKm      int            `gorm:"not null;default:5" json:"work_radius_km"`
	DesiredHourlyRate int            `gorm:"default:0" json:"desired_hourly_rate,omitempty"`
	AvailableTasks    string         `gorm:"type:text" json:"available_tasks,omitempty"`
	AvailableDays     datatypes.JSON `gorm:"type:jsonb" json:"available_days,omitempty"`
	StartTime         string         `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime           string         `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	ContactLink       string         `gorm:"type:varchar(500)" json:"contact_link,omitempty"`
	Introduction      string         `gorm:"type:text" json:"introduction,omitempty"`
	IsVisible         bool           `gorm:"not null;default:false;index" json:"is_visible"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WorkerProfile) TableName() string {
	return "worker_profiles"
}

func (p *WorkerProfile) Location() geo.Point {
	return geo.Point{Lat: p.Latitude, Lng: p.Longitude}
}

func (p *WorkerProfile) SetLocation(pt geo.Point) {
	p.Latitude = pt.Lat
	p.Longitude = pt.Lng
}

// IsDiscoverable reports whether the worker should appear on hospital-facing
// maps: the worker opted in and their address has been geocoded. A visible
// worker with sentinel coordinates stays hidden until geocoding succeeds.
func (p *WorkerProfile) IsDiscoverable() bool {
	return p.IsVisible && p.Location().IsSet()
}
