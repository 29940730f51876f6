package adapter

import (
	"context"

	"github.com/ecommerce/backend/internal/domain/entity"
)

// AuditLog records authentication events.
type AuditLog interface {
	Record(ctx context.Context, entry entity.AuditEntry) error
}
