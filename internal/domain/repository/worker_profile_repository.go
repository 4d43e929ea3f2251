package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
)

type WorkerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.WorkerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.WorkerProfile, error)
	// FindVisible returns the hospital-facing eligible set: workers who opted
	// in and have resolved coordinates.
	FindVisible(db *gorm.DB) ([]entity.WorkerProfile, error)
	Update(db *gorm.DB, profile *entity.WorkerProfile) error
	SetVisibility(db *gorm.DB, userID uuid.UUID, visible bool) error
}
