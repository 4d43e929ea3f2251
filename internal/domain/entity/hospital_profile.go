package entity

import (
	"github.com/google/uuid"

	"medilink/pkg/geo"
)

// HospitalType classifies the facility.
type HospitalType string

const (
	HospitalTypeDental   HospitalType = "dental"
	HospitalTypeMedical  HospitalType = "medical"
	HospitalTypeOriental HospitalType = "oriental"
	HospitalTypeNursing  HospitalType = "nursing"
	HospitalTypeOther    HospitalType = "other"
)

// HospitalProfile represents facility-specific profile data
type HospitalProfile struct {
	UserID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"user_id"`
	HospitalName   string       `gorm:"type:varchar(255);not null" json:"hospital_name"`
	HospitalType   HospitalType `gorm:"type:varchar(20);not null;index" json:"hospital_type"`
	BusinessNumber string       `gorm:"column:business_number;type:varchar(50);uniqueIndex;not null" json:"business_number"`
	Address        string       `gorm:"type:varchar(500);not null" json:"address"`
	DetailAddress  string       `gorm:"type:varchar(255)" json:"detail_address,omitempty"`
	Latitude       float64      `gorm:"not null;default:0" json:"latitude"`
	Longitude      float64      `gorm:"not null;default:0" json:"longitude"`
	Description    string       `gorm:"type:text" json:"description,omitempty"`
	ContactLink    string       `gorm:"type:varchar(500)" json:"contact_link,omitempty"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	JobPostings []JobPosting `gorm:"foreignKey:HospitalID" json:"job_postings,omitempty"`
}

func (HospitalProfile) TableName() string {
	return "hospital_profiles"
}

// Location returns the profile coordinates. The zero Point means the address
// has not been geocoded yet.
func (p *HospitalProfile) Location() geo.Point {
	return geo.Point{Lat: p.Latitude, Lng: p.Longitude}
}

// SetLocation stores resolved coordinates on the profile.
func (p *HospitalProfile) SetLocation(pt geo.Point) {
	p.Latitude = pt.Lat
	p.Longitude = pt.Lng
}
