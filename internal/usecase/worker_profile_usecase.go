package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"medilink/internal/converter"
	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
	"medilink/internal/domain/repository"
	"medilink/internal/infrastructure/geocoder"
	"medilink/internal/service"
)

type WorkerProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.WorkerProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
	SetVisibility(ctx context.Context, userID uuid.UUID, visible bool) (*dto.WorkerProfileResponse, error)
}

type workerProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	workerRepo   repository.WorkerProfileRepository
	geocoder     geocoder.Geocoder
	auditService service.AuditService
}

func NewWorkerProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	workerRepo repository.WorkerProfileRepository,
	geocoderClient geocoder.Geocoder,
	auditService service.AuditService,
) WorkerProfileUsecase {
	return &workerProfileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		workerRepo:   workerRepo,
		geocoder:     geocoderClient,
		auditService: auditService,
	}
}

func (u *workerProfileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.WorkerProfileResponse, error) {
	profile, err := u.workerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find worker profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.WorkerProfileToResponse(profile), nil
}

func (u *workerProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	profile, err := u.workerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find worker profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	// An address change is the only re-geocode trigger; a stale sentinel is
	// replaced only by editing the address again.
	var geocodeErr error
	if req.Address != nil {
		address := req.Address.DisplayAddress()
		location, err := u.geocoder.Geocode(ctx, address)
		profile.Address = address
		profile.SetLocation(location)
		geocodeErr = err
	}

	if req.LicenseType != "" {
		profile.LicenseType = req.LicenseType
	}
	if req.DetailAddress != nil {
		profile.DetailAddress = *req.DetailAddress
	}
	if req.WorkRadiusKm != nil {
		profile.WorkRadiusKm = *req.WorkRadiusKm
	}
	if req.DesiredHourlyRate != nil {
		profile.DesiredHourlyRate = *req.DesiredHourlyRate
	}
	if req.AvailableTasks != nil {
		profile.AvailableTasks = *req.AvailableTasks
	}
	if req.AvailableDays != nil {
		profile.AvailableDays = converter.EncodeDays(req.AvailableDays)
	}
	if req.StartTime != nil {
		profile.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		profile.EndTime = *req.EndTime
	}
	if req.ContactLink != nil {
		profile.ContactLink = *req.ContactLink
	}
	if req.Introduction != nil {
		profile.Introduction = *req.Introduction
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.Name != "" || req.PhoneNumber != "" {
		user, err := u.userRepo.FindByID(tx, userID)
		if err != nil {
			return nil, err
		}
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.PhoneNumber != "" {
			user.PhoneNumber = req.PhoneNumber
		}
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
		profile.User = *user
	}

	if err := u.workerRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update worker profile: %+v", err)
		return nil, err
	}

	if geocodeErr != nil {
		u.log.Infof("Profile saved without coordinates: %v", geocodeErr)
		u.auditService.LogGeocodeFailure(tx, &userID, profile.Address, geocodeErr)
	}
	u.auditService.Log(tx, &userID, entity.AuditActionProfileUpdate, entity.JSON{
		"role":     string(entity.RoleWorker),
		"geocoded": profile.Location().IsSet(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetMyProfile(ctx, userID)
}

// SetVisibility toggles map exposure. It is decoupled from geocoding state:
// a worker may opt in before their address resolves, in which case the
// eligible-set query keeps them hidden until it does.
func (u *workerProfileUsecase) SetVisibility(ctx context.Context, userID uuid.UUID, visible bool) (*dto.WorkerProfileResponse, error) {
	profile, err := u.workerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find worker profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.workerRepo.SetVisibility(tx, userID, visible); err != nil {
		u.log.Warnf("Failed to set visibility: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &userID, entity.AuditActionVisibilityToggle, entity.JSON{
		"is_visible": visible,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetMyProfile(ctx, userID)
}
