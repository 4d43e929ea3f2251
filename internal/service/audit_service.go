package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"medilink/internal/domain/entity"
	"medilink/internal/domain/repository"
	"medilink/internal/infrastructure/geocoder"
)

// AuditService records the audit trail. Audit writes are best-effort inside
// the caller's transaction; a failed audit write is logged but never fails
// the surrounding operation.
type AuditService interface {
	Log(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON)
	LogGeocodeFailure(tx *gorm.DB, userID *uuid.UUID, address string, err error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Log(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}

// LogGeocodeFailure distinguishes unresolvable addresses from provider
// outages; the two causes look the same to end users but not to telemetry.
func (s *auditService) LogGeocodeFailure(tx *gorm.DB, userID *uuid.UUID, address string, err error) {
	action := entity.AuditActionGeocodeUnavailable
	if errors.Is(err, geocoder.ErrNotFound) {
		action = entity.AuditActionGeocodeNotFound
	}

	s.Log(tx, userID, action, entity.JSON{
		"address": address,
		"cause":   err.Error(),
	})
}
