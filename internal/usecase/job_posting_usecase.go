package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"medilink/internal/converter"
	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
	"medilink/internal/domain/repository"
	"medilink/internal/service"
)

var (
	ErrPostingNotFound   = errors.New("job posting not found")
	ErrNotPostingOwner   = errors.New("job posting belongs to another hospital")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("work end date is before start date")
)

type JobPostingUsecase interface {
	CreatePosting(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error)
	GetPosting(ctx context.Context, id uuid.UUID) (*dto.JobPostingResponse, error)
	GetMyPostings(ctx context.Context, hospitalID uuid.UUID) (*dto.JobPostingListResponse, error)
	ClosePosting(ctx context.Context, hospitalID, postingID uuid.UUID) (*dto.JobPostingResponse, error)
}

type jobPostingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalProfileRepository
	postingRepo  repository.JobPostingRepository
	auditService service.AuditService
}

func NewJobPostingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalProfileRepository,
	postingRepo repository.JobPostingRepository,
	auditService service.AuditService,
) JobPostingUsecase {
	return &jobPostingUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		postingRepo:  postingRepo,
		auditService: auditService,
	}
}

func (u *jobPostingUsecase) CreatePosting(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	hospital, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrProfileNotFound
	}

	startDate, err := converter.ParseWorkDate(req.WorkStartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	// A single-day shift omits the end date.
	endDate := startDate
	if req.WorkEndDate != "" {
		endDate, err = converter.ParseWorkDate(req.WorkEndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	// Location is snapshotted from the hospital profile at creation. A
	// hospital with unresolved coordinates may still post; the posting stays
	// off worker maps until a new posting is made after geocoding succeeds.
	posting := &entity.JobPosting{
		HospitalID:    hospital.UserID,
		Title:         req.Title,
		Description:   req.Description,
		HourlyRate:    req.HourlyRate,
		WorkStartDate: startDate,
		WorkEndDate:   endDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        entity.JobPostingStatusOpen,
		ContactLink:   req.ContactLink,
		Latitude:      hospital.Latitude,
		Longitude:     hospital.Longitude,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.postingRepo.Create(tx, posting); err != nil {
		u.log.Warnf("Failed to create job posting: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &hospitalID, entity.AuditActionJobPostingCreate, entity.JSON{
		"posting_id": posting.ID.String(),
		"geocoded":   posting.Location().IsSet(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	posting.Hospital = *hospital
	return converter.JobPostingToResponse(posting), nil
}

func (u *jobPostingUsecase) GetPosting(ctx context.Context, id uuid.UUID) (*dto.JobPostingResponse, error) {
	posting, err := u.postingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find job posting: %+v", err)
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}

	return converter.JobPostingToResponse(posting), nil
}

func (u *jobPostingUsecase) GetMyPostings(ctx context.Context, hospitalID uuid.UUID) (*dto.JobPostingListResponse, error) {
	postings, err := u.postingRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list job postings: %+v", err)
		return nil, err
	}

	return &dto.JobPostingListResponse{
		Postings: converter.JobPostingsToResponses(postings),
		Total:    len(postings),
	}, nil
}

// ClosePosting is the only mutation a posting supports after creation.
func (u *jobPostingUsecase) ClosePosting(ctx context.Context, hospitalID, postingID uuid.UUID) (*dto.JobPostingResponse, error) {
	posting, err := u.postingRepo.FindByID(u.db.WithContext(ctx), postingID)
	if err != nil {
		u.log.Warnf("Failed to find job posting: %+v", err)
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}
	if posting.HospitalID != hospitalID {
		return nil, ErrNotPostingOwner
	}

	posting.Close()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.postingRepo.Update(tx, posting); err != nil {
		u.log.Warnf("Failed to update job posting: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &hospitalID, entity.AuditActionJobPostingClose, entity.JSON{
		"posting_id": posting.ID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.JobPostingToResponse(posting), nil
}
