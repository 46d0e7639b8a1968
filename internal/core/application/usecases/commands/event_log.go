package commands

import (
	"context"
	"log/slog"
	"time"

	"caps/internal/core/domain/model/parcel"
)

// logEvent writes the hub's audit line for a completed transition.
func logEvent(ctx context.Context, logger *slog.Logger, kind parcel.Kind, payload any) {
	logger.InfoContext(ctx, "EVENT",
		slog.String("event", kind.String()),
		slog.Time("time", time.Now()),
		slog.Any("payload", payload),
	)
}
