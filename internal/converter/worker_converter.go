package converter

import (
	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
)

// WorkerProfileToResponse builds the owner-facing view, precise address
// included. Only ever served to the profile owner.
func WorkerProfileToResponse(profile *entity.WorkerProfile) *dto.WorkerProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.WorkerProfileResponse{
		UserID:            profile.UserID,
		Email:             profile.User.Email,
		Name:              profile.User.Name,
		PhoneNumber:       profile.User.PhoneNumber,
		LicenseType:       profile.LicenseType,
		LicenseNumber:     profile.LicenseNumber,
		Address:           profile.Address,
		DetailAddress:     profile.DetailAddress,
		Latitude:          profile.Latitude,
		Longitude:         profile.Longitude,
		Geocoded:          profile.Location().IsSet(),
		WorkRadiusKm:      profile.WorkRadiusKm,
		DesiredHourlyRate: profile.DesiredHourlyRate,
		AvailableTasks:    profile.AvailableTasks,
		AvailableDays:     decodeDays(profile.AvailableDays),
		StartTime:         profile.StartTime,
		EndTime:           profile.EndTime,
		ContactLink:       profile.ContactLink,
		Introduction:      profile.Introduction,
		IsVisible:         profile.IsVisible,
	}
}

// WorkerProfileToPin builds the hospital-facing map pin: coordinates at
// reduced precision, declared radius, contact data, and nothing about where
// the worker actually lives.
func WorkerProfileToPin(profile *entity.WorkerProfile) dto.WorkerPinResponse {
	pin := dto.WorkerPinResponse{
		UserID:            profile.UserID,
		Name:              profile.User.Name,
		LicenseType:       profile.LicenseType,
		Latitude:          roundCoord(profile.Latitude),
		Longitude:         roundCoord(profile.Longitude),
		WorkRadiusKm:      profile.WorkRadiusKm,
		WorkRadiusM:       profile.WorkRadiusKm * 1000,
		DesiredHourlyRate: profile.DesiredHourlyRate,
		AvailableTasks:    profile.AvailableTasks,
		AvailableDays:     decodeDays(profile.AvailableDays),
		StartTime:         profile.StartTime,
		EndTime:           profile.EndTime,
		ContactLink:       profile.ContactLink,
		Introduction:      profile.Introduction,
	}
	if profile.DesiredHourlyRate > 0 {
		pin.RateKRW = formatKRW(profile.DesiredHourlyRate)
	}
	return pin
}

func WorkerProfilesToPins(profiles []entity.WorkerProfile) []dto.WorkerPinResponse {
	pins := make([]dto.WorkerPinResponse, len(profiles))
	for i := range profiles {
		pins[i] = WorkerProfileToPin(&profiles[i])
	}
	return pins
}
