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
	"medilink/internal/infrastructure/geocoder"
	"medilink/internal/service"
)

var ErrProfileNotFound = errors.New("profile not found")

type HospitalProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.HospitalProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateHospitalProfileRequest) (*dto.HospitalProfileResponse, error)
}

type hospitalProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalProfileRepository
	geocoder     geocoder.Geocoder
	auditService service.AuditService
}

func NewHospitalProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalProfileRepository,
	geocoderClient geocoder.Geocoder,
	auditService service.AuditService,
) HospitalProfileUsecase {
	return &hospitalProfileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		geocoder:     geocoderClient,
		auditService: auditService,
	}
}

func (u *hospitalProfileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.HospitalProfileResponse, error) {
	profile, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.HospitalProfileToResponse(profile), nil
}

func (u *hospitalProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateHospitalProfileRequest) (*dto.HospitalProfileResponse, error) {
	profile, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	// An address change is the only re-geocode trigger.
	var geocodeErr error
	if req.Address != nil {
		address := req.Address.DisplayAddress()
		location, err := u.geocoder.Geocode(ctx, address)
		profile.Address = address
		profile.SetLocation(location)
		geocodeErr = err
	}

	if req.HospitalName != "" {
		profile.HospitalName = req.HospitalName
	}
	if req.HospitalType != "" {
		profile.HospitalType = entity.HospitalType(req.HospitalType)
	}
	if req.DetailAddress != nil {
		profile.DetailAddress = *req.DetailAddress
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.ContactLink != nil {
		profile.ContactLink = *req.ContactLink
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

	if err := u.hospitalRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update hospital profile: %+v", err)
		return nil, err
	}

	if geocodeErr != nil {
		u.log.Infof("Profile saved without coordinates: %v", geocodeErr)
		u.auditService.LogGeocodeFailure(tx, &userID, profile.Address, geocodeErr)
	}
	u.auditService.Log(tx, &userID, entity.AuditActionProfileUpdate, entity.JSON{
		"role":     string(entity.RoleHospital),
		"geocoded": profile.Location().IsSet(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetMyProfile(ctx, userID)
}
