package events

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/manager-dashboard/pkg/logger"
)

// AuditHandler writes every event to the request-scoped logger, so audit
// lines share the trace id of the request that caused them.
func AuditHandler() Handler {
	return func(ctx context.Context, event Event) error {
		logger.From(ctx).LogAttrs(ctx, slog.LevelInfo, "audit",
			slog.String("event_type", event.EventType()),
			slog.String("event_id", event.EventID()),
			slog.Time("occurred_at", event.OccurredAt()),
			slog.Any("payload", event.Payload()),
		)
		return nil
	}
}
