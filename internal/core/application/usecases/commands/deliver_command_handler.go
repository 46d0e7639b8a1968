package commands

import (
	"context"
	"log/slog"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
)

// DeliverCommandHandler moves a package from pending to received and notifies the
// vendor's channel.
//
// A package the hub never saw picked up is reported back to the driver as
// delivered-error; the ledger is left untouched.
type DeliverCommandHandler struct {
	ledger   ports.Ledger
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewDeliverCommandHandler(ledger ports.Ledger, notifier ports.Notifier, logger *slog.Logger) DeliverCommandHandler {
	return DeliverCommandHandler{
		ledger:   ledger,
		notifier: notifier,
		logger:   logger.With("component", "deliver_handler"),
	}
}

func (h DeliverCommandHandler) Handle(ctx context.Context, cmd DeliverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := h.ledger.Deliver(cmd.ClientID(), cmd.MessageID(), cmd.Order())
	if err != nil {
		h.notifier.ToConn(cmd.Sender(), ports.Message{
			Event:   parcel.Delivered.ErrorEvent(),
			Payload: ports.ErrorPayload{Error: err.Error(), Message: "Driver cannot deliver package"},
		})
		return err
	}

	payload := DeliveredPayload{
		ClientID:  record.ClientID,
		MessageID: record.MessageID,
		Order:     record.Order,
	}
	h.notifier.ToRoom(record.ClientID, cmd.Sender(), ports.Message{Event: parcel.Delivered.String(), Payload: payload})
	logEvent(ctx, h.logger, parcel.Delivered, payload)
	return nil
}
