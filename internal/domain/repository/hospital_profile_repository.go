package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
)

type HospitalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.HospitalProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalProfile, error)
	Update(db *gorm.DB, profile *entity.HospitalProfile) error
}
