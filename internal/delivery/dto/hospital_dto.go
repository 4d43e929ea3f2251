package dto

import (
	"github.com/google/uuid"

	"medilink/pkg/postcode"
)

// Request DTOs

type UpdateHospitalProfileRequest struct {
	Name          string           `json:"name" validate:"omitempty,min=2"`
	PhoneNumber   string           `json:"phone_number" validate:"omitempty"`
	HospitalName  string           `json:"hospital_name" validate:"omitempty"`
	HospitalType  string           `json:"hospital_type" validate:"omitempty,oneof=dental medical oriental nursing other"`
	Address       *postcode.Result `json:"address" validate:"omitempty"`
	DetailAddress *string          `json:"detail_address" validate:"omitempty"`
	Description   *string          `json:"description" validate:"omitempty"`
	ContactLink   *string          `json:"contact_link" validate:"omitempty,url"`
}

// Response DTOs

type HospitalProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	HospitalName   string    `json:"hospital_name"`
	HospitalType   string    `json:"hospital_type"`
	BusinessNumber string    `json:"business_number"`
	Address        string    `json:"address"`
	DetailAddress  string    `json:"detail_address,omitempty"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Geocoded       bool      `json:"geocoded"`
	Description    string    `json:"description,omitempty"`
	ContactLink    string    `json:"contact_link,omitempty"`
}
