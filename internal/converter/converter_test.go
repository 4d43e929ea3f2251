package converter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"medilink/internal/domain/entity"
)

func TestFormatKRW(t *testing.T) {
	assert.Equal(t, "20,000원", formatKRW(20000))
	assert.Equal(t, "0원", formatKRW(0))
	assert.Equal(t, "999원", formatKRW(999))
	assert.Equal(t, "1,000원", formatKRW(1000))
	assert.Equal(t, "1,234,567원", formatKRW(1234567))
}

func TestRoundCoord(t *testing.T) {
	assert.Equal(t, 37.567, roundCoord(37.56654))
	assert.Equal(t, 126.978, roundCoord(126.97801))
	assert.Equal(t, 0.0, roundCoord(0))
}

func TestWorkerProfileToPin_ReducedPrecisionNoAddress(t *testing.T) {
	profile := &entity.WorkerProfile{
		UserID:            uuid.New(),
		User:              entity.User{Name: "김간호", PhoneNumber: "010-1234-5678"},
		LicenseType:       "간호사",
		LicenseNumber:     "RN-12345",
		Address:           "서울시 중구 세종대로 110",
		DetailAddress:     "1201호",
		Latitude:          37.56654321,
		Longitude:         126.97801234,
		WorkRadiusKm:      5,
		DesiredHourlyRate: 20000,
		IsVisible:         true,
	}

	pin := WorkerProfileToPin(profile)

	assert.Equal(t, 37.567, pin.Latitude)
	assert.Equal(t, 126.978, pin.Longitude)
	assert.Equal(t, 5, pin.WorkRadiusKm)
	assert.Equal(t, 5000, pin.WorkRadiusM)
	assert.Equal(t, "20,000원", pin.RateKRW)
}

func TestWorkerProfileToResponse_OwnerKeepsPrecision(t *testing.T) {
	profile := &entity.WorkerProfile{
		UserID:        uuid.New(),
		User:          entity.User{Email: "w@example.com", Name: "김간호"},
		Address:       "서울시 중구 세종대로 110",
		DetailAddress: "1201호",
		Latitude:      37.56654321,
		Longitude:     126.97801234,
		WorkRadiusKm:  5,
	}

	resp := WorkerProfileToResponse(profile)

	assert.Equal(t, 37.56654321, resp.Latitude)
	assert.Equal(t, "서울시 중구 세종대로 110", resp.Address)
	assert.Equal(t, "1201호", resp.DetailAddress)
	assert.True(t, resp.Geocoded)
}

func TestWorkerProfileToResponse_UngeocodedSentinel(t *testing.T) {
	resp := WorkerProfileToResponse(&entity.WorkerProfile{UserID: uuid.New()})
	assert.False(t, resp.Geocoded)
}

func TestEncodeDecodeDays(t *testing.T) {
	days := []string{"월", "수", "금"}
	assert.Equal(t, days, decodeDays(EncodeDays(days)))
	assert.Nil(t, EncodeDays(nil))
	assert.Nil(t, decodeDays(nil))
}

func TestJobPostingToResponse(t *testing.T) {
	start, err := ParseWorkDate("2025-06-01")
	assert.NoError(t, err)

	posting := &entity.JobPosting{
		ID:            uuid.New(),
		Hospital:      entity.HospitalProfile{HospitalName: "연세바로치과"},
		Title:         "주말 스케일링 지원",
		HourlyRate:    20000,
		WorkStartDate: start,
		WorkEndDate:   start,
		StartTime:     "09:00",
		EndTime:       "18:00",
		Status:        entity.JobPostingStatusOpen,
		Latitude:      37.5700,
		Longitude:     126.9800,
	}

	resp := JobPostingToResponse(posting)

	assert.Equal(t, "연세바로치과", resp.HospitalName)
	assert.Equal(t, "20,000원", resp.HourlyRateKRW)
	assert.Equal(t, "2025-06-01", resp.WorkStartDate)
	assert.Equal(t, "2025-06-01", resp.WorkEndDate)
	assert.Equal(t, "open", resp.Status)
}
