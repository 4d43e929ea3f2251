package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role of an account. Immutable after registration.
type Role string

const (
	RoleHospital Role = "hospital"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin" // reserved, no routes yet
)

// User represents the centralized authentication table
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role        Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phone_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	HospitalProfile *HospitalProfile `gorm:"foreignKey:UserID" json:"hospital_profile,omitempty"`
	WorkerProfile   *WorkerProfile   `gorm:"foreignKey:UserID" json:"worker_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsHospital() bool {
	return u.Role == RoleHospital
}

func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}
