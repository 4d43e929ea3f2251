package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
	domainRepo "medilink/internal/domain/repository"
)

type workerProfileRepository struct{}

func NewWorkerProfileRepository() domainRepo.WorkerProfileRepository {
	return &workerProfileRepository{}
}

func (r *workerProfileRepository) Create(db *gorm.DB, profile *entity.WorkerProfile) error {
	return db.Create(profile).Error
}

func (r *workerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.WorkerProfile, error) {
	var profile entity.WorkerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindVisible excludes the sentinel (0,0) in SQL so ungeocoded workers never
// reach the map, even with is_visible already set.
func (r *workerProfileRepository) FindVisible(db *gorm.DB) ([]entity.WorkerProfile, error) {
	var profiles []entity.WorkerProfile
	err := db.Preload("User").
		Where("is_visible = ?", true).
		Where("NOT (latitude = 0 AND longitude = 0)").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *workerProfileRepository) Update(db *gorm.DB, profile *entity.WorkerProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *workerProfileRepository) SetVisibility(db *gorm.DB, userID uuid.UUID, visible bool) error {
	return db.Model(&entity.WorkerProfile{}).
		Where("user_id = ?", userID).
		Update("is_visible", visible).Error
}
