package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
)

// auditLogRepository stores audit entries in a capped Redis list, newest first.
type auditLogRepository struct {
	client  *redis.Client
	key     string
	maxSize int64
}

// NewAuditLogRepository creates a Redis-backed audit log.
func NewAuditLogRepository(client *redis.Client, key string, maxSize int) adapter.AuditLog {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &auditLogRepository{
		client:  client,
		key:     key,
		maxSize: int64(maxSize),
	}
}

// Record pushes the entry and trims the list in one round trip.
func (r *auditLogRepository) Record(ctx context.Context, entry entity.AuditEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, payload)
	pipe.LTrim(ctx, r.key, 0, r.maxSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store audit entry: %w", err)
	}
	return nil
}
