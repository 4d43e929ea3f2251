package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
)

type JobPostingRepository interface {
	Create(db *gorm.DB, posting *entity.JobPosting) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.JobPosting, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.JobPosting, error)
	// FindOpen returns the worker-facing eligible set: open postings whose
	// location snapshot was resolved.
	FindOpen(db *gorm.DB) ([]entity.JobPosting, error)
	Update(db *gorm.DB, posting *entity.JobPosting) error
}
