package converter

import (
	"time"

	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// JobPostingToResponse converts a JobPosting entity to its response DTO.
// Hospital name is filled when the Hospital relation was preloaded.
func JobPostingToResponse(posting *entity.JobPosting) *dto.JobPostingResponse {
	if posting == nil {
		return nil
	}

	return &dto.JobPostingResponse{
		ID:            posting.ID,
		HospitalID:    posting.HospitalID,
		HospitalName:  posting.Hospital.HospitalName,
		Title:         posting.Title,
		Description:   posting.Description,
		HourlyRate:    posting.HourlyRate,
		HourlyRateKRW: formatKRW(posting.HourlyRate),
		WorkStartDate: posting.WorkStartDate.Format(dateLayout),
		WorkEndDate:   posting.WorkEndDate.Format(dateLayout),
		StartTime:     posting.StartTime,
		EndTime:       posting.EndTime,
		Status:        string(posting.Status),
		ContactLink:   posting.ContactLink,
		Latitude:      posting.Latitude,
		Longitude:     posting.Longitude,
		CreatedAt:     posting.CreatedAt,
	}
}

func JobPostingsToResponses(postings []entity.JobPosting) []dto.JobPostingResponse {
	responses := make([]dto.JobPostingResponse, len(postings))
	for i := range postings {
		responses[i] = *JobPostingToResponse(&postings[i])
	}
	return responses
}

// ParseWorkDate parses a YYYY-MM-DD date field from a posting request.
func ParseWorkDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
