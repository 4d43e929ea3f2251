package repository

import (
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByAction(db *gorm.DB, action string, limit int) ([]entity.AuditLog, error)
}
