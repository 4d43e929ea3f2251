package converter

import (
	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
)

// HospitalProfileToResponse converts a HospitalProfile entity to its
// owner-facing response DTO.
func HospitalProfileToResponse(profile *entity.HospitalProfile) *dto.HospitalProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.HospitalProfileResponse{
		UserID:         profile.UserID,
		Email:          profile.User.Email,
		Name:           profile.User.Name,
		PhoneNumber:    profile.User.PhoneNumber,
		HospitalName:   profile.HospitalName,
		HospitalType:   string(profile.HospitalType),
		BusinessNumber: profile.BusinessNumber,
		Address:        profile.Address,
		DetailAddress:  profile.DetailAddress,
		Latitude:       profile.Latitude,
		Longitude:      profile.Longitude,
		Geocoded:       profile.Location().IsSet(),
		Description:    profile.Description,
		ContactLink:    profile.ContactLink,
	}
}
