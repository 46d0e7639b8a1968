package commands

import (
	"context"
	"log/slog"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
)

// AcknowledgeFailedMessage is the human readable part of every acknowledge-error.
const AcknowledgeFailedMessage = "Vendor cannot acknowledge package delivery"

// AcknowledgeCommandHandler removes an acknowledged package from received, completing
// its lifecycle.
//
// When nothing was delivered under the ids, acknowledge-error is sent to the sender
// and to the rest of the vendor's channel.
type AcknowledgeCommandHandler struct {
	ledger   ports.Ledger
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewAcknowledgeCommandHandler(
	ledger ports.Ledger,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcknowledgeCommandHandler {
	return AcknowledgeCommandHandler{
		ledger:   ledger,
		notifier: notifier,
		logger:   logger.With("component", "acknowledge_handler"),
	}
}

func (h AcknowledgeCommandHandler) Handle(ctx context.Context, cmd AcknowledgeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := h.ledger.Acknowledge(cmd.ClientID(), cmd.MessageID())
	if err != nil {
		h.logger.WarnContext(ctx, "error removing message from vendor received queue",
			slog.String("clientId", cmd.ClientID()),
			slog.String("messageId", cmd.MessageID()),
			slog.String("error", err.Error()),
		)
		msg := ports.Message{
			Event:   parcel.Acknowledge.ErrorEvent(),
			Payload: ports.ErrorPayload{Error: err.Error(), Message: AcknowledgeFailedMessage},
		}
		h.notifier.ToConn(cmd.Sender(), msg)
		h.notifier.ToRoom(cmd.Store(), cmd.Sender(), msg)
		return err
	}

	h.logger.InfoContext(ctx, "vendor acknowledged package delivery",
		slog.String("clientId", record.ClientID),
		slog.String("removed", record.MessageID),
	)
	logEvent(ctx, h.logger, parcel.Acknowledge, record)
	return nil
}
