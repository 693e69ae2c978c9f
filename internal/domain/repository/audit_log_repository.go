package repository

import (
	"context"

	"dental-clinic-portal/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
}
