package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
	domainRepo "medilink/internal/domain/repository"
)

type hospitalProfileRepository struct{}

func NewHospitalProfileRepository() domainRepo.HospitalProfileRepository {
	return &hospitalProfileRepository{}
}

func (r *hospitalProfileRepository) Create(db *gorm.DB, profile *entity.HospitalProfile) error {
	return db.Create(profile).Error
}

func (r *hospitalProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalProfile, error) {
	var profile entity.HospitalProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *hospitalProfileRepository) Update(db *gorm.DB, profile *entity.HospitalProfile) error {
	return db.Omit("User").Save(profile).Error
}
