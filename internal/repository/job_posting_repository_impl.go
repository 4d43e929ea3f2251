package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
	domainRepo "medilink/internal/domain/repository"
)

type jobPostingRepository struct{}

func NewJobPostingRepository() domainRepo.JobPostingRepository {
	return &jobPostingRepository{}
}

func (r *jobPostingRepository) Create(db *gorm.DB, posting *entity.JobPosting) error {
	return db.Create(posting).Error
}

func (r *jobPostingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.JobPosting, error) {
	var posting entity.JobPosting
	err := db.Preload("Hospital").Where("id = ?", id).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &posting, nil
}

func (r *jobPostingRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.JobPosting, error) {
	var postings []entity.JobPosting
	err := db.Where("hospital_id = ?", hospitalID).
		Order("work_start_date ASC, start_time ASC").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}

// FindOpen excludes the sentinel (0,0) in SQL: postings created while the
// hospital was still ungeocoded never reach worker maps.
func (r *jobPostingRepository) FindOpen(db *gorm.DB) ([]entity.JobPosting, error) {
	var postings []entity.JobPosting
	err := db.Preload("Hospital").
		Where("status = ?", entity.JobPostingStatusOpen).
		Where("NOT (latitude = 0 AND longitude = 0)").
		Order("work_start_date ASC, start_time ASC").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *jobPostingRepository) Update(db *gorm.DB, posting *entity.JobPosting) error {
	return db.Omit("Hospital").Save(posting).Error
}
