package commands

import (
	"context"
	"log/slog"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
)

// PickupCommandHandler stores the package as pending and broadcasts the pickup to
// every other connection so drivers learn about it.
type PickupCommandHandler struct {
	ledger   ports.Ledger
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewPickupCommandHandler(ledger ports.Ledger, notifier ports.Notifier, logger *slog.Logger) PickupCommandHandler {
	return PickupCommandHandler{
		ledger:   ledger,
		notifier: notifier,
		logger:   logger.With("component", "pickup_handler"),
	}
}

// Handle applies the pickup. A rejected pickup is reported to the sender as pickup-error.
func (h PickupCommandHandler) Handle(ctx context.Context, cmd PickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.ledger.Pickup(cmd.Order()); err != nil {
		h.notifier.ToConn(cmd.Sender(), ports.Message{
			Event:   parcel.Pickup.ErrorEvent(),
			Payload: ports.ErrorPayload{Error: err.Error(), Message: "Hub cannot accept package for pickup"},
		})
		return err
	}

	h.notifier.Broadcast(cmd.Sender(), ports.Message{Event: parcel.Pickup.String(), Payload: cmd.Order()})
	logEvent(ctx, h.logger, parcel.Pickup, cmd.Order())
	return nil
}
