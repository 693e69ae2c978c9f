package service

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
	"dental-clinic-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService records who did what to which row. Best effort: a failed audit
// write is logged and swallowed, never surfaced to the caller.
type AuditService interface {
	Record(ctx context.Context, actorID *uint, action string, entityName string, entityID string, detail map[string]interface{})
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

func (s *auditService) Record(ctx context.Context, actorID *uint, action string, entityName string, entityID string, detail map[string]interface{}) {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range detail {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		UserID:   actorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
