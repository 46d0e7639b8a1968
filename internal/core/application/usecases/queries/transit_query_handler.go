package queries

import (
	"context"
	"log/slog"
	"time"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
)

// TransitQueryHandler answers a transit request with the store's pending packages.
// The packages stay pending; only the requesting driver receives the answer.
type TransitQueryHandler struct {
	ledger   ports.Ledger
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewTransitQueryHandler(ledger ports.Ledger, notifier ports.Notifier, logger *slog.Logger) TransitQueryHandler {
	return TransitQueryHandler{
		ledger:   ledger,
		notifier: notifier,
		logger:   logger.With("component", "transit_handler"),
	}
}

// Handle emits the pending packages, an empty object when there are none, and returns them.
func (h TransitQueryHandler) Handle(ctx context.Context, query TransitQuery) (map[string]parcel.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := h.ledger.Transit(query.Store())
	h.notifier.ToConn(query.Sender(), ports.Message{Event: parcel.Transit.String(), Payload: packages})

	h.logger.InfoContext(ctx, "EVENT",
		slog.String("event", parcel.Transit.String()),
		slog.Time("time", time.Now()),
		slog.String("store", query.Store()),
		slog.Int("packages", len(packages)),
	)
	return packages, nil
}
