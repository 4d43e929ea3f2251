package dto

import (
	"time"

	"github.com/google/uuid"

	"medilink/pkg/postcode"
)

// Request DTOs

type RegisterHospitalRequest struct {
	Email          string           `json:"email" validate:"required,email"`
	Password       string           `json:"password" validate:"required,min=6"`
	Name           string           `json:"name" validate:"required,min=2"`
	PhoneNumber    string           `json:"phone_number" validate:"required"`
	HospitalName   string           `json:"hospital_name" validate:"required"`
	HospitalType   string           `json:"hospital_type" validate:"required,oneof=dental medical oriental nursing other"`
	BusinessNumber string           `json:"business_number" validate:"required"`
	Address        *postcode.Result `json:"address" validate:"required"`
	DetailAddress  string           `json:"detail_address" validate:"omitempty"`
	Description    string           `json:"description" validate:"omitempty"`
	ContactLink    string           `json:"contact_link" validate:"omitempty,url"`
}

type RegisterWorkerRequest struct {
	Email         string           `json:"email" validate:"required,email"`
	Password      string           `json:"password" validate:"required,min=6"`
	Name          string           `json:"name" validate:"required,min=2"`
	PhoneNumber   string           `json:"phone_number" validate:"required"`
	LicenseType   string           `json:"license_type" validate:"required"`
	LicenseNumber string           `json:"license_number" validate:"required"`
	Address       *postcode.Result `json:"address" validate:"required"`
	DetailAddress string           `json:"detail_address" validate:"omitempty"`
	WorkRadiusKm  int              `json:"work_radius_km" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
