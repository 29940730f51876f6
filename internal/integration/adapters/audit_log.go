package adapters

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/domain/entity"
)

// slogAuditLog writes audit entries as structured log records.
type slogAuditLog struct {
	logger *slog.Logger
}

// NewSlogAuditLog creates an audit log backed by the given logger.
// A nil logger uses slog.Default().
func NewSlogAuditLog(logger *slog.Logger) adapter.AuditLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAuditLog{logger: logger.With("component", "audit")}
}

// Record logs the entry at info level for success and warn level for failure.
func (l *slogAuditLog) Record(ctx context.Context, entry entity.AuditEntry) error {
	level := slog.LevelInfo
	if entry.Outcome == entity.AuditOutcomeFailure {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, "Authentication audit",
		"event", entry.Event,
		"username", entry.Username,
		"outcome", entry.Outcome,
		"reason", entry.Reason,
		"client_ip", entry.ClientIP,
		"occurred_at", entry.OccurredAt,
	)
	return nil
}

// multiAuditLog fans an entry out to several sinks.
type multiAuditLog struct {
	sinks []adapter.AuditLog
}

// NewMultiAuditLog combines audit sinks. Every sink is attempted; errors are joined.
func NewMultiAuditLog(sinks ...adapter.AuditLog) adapter.AuditLog {
	return &multiAuditLog{sinks: sinks}
}

// Record writes the entry to every sink.
func (m *multiAuditLog) Record(ctx context.Context, entry entity.AuditEntry) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Record(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
