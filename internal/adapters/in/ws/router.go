package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"caps/internal/core/application/usecases/commands"
	"caps/internal/core/application/usecases/queries"
	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/metrics"
)

// Handlers groups the use cases the Router dispatches to.
type Handlers struct {
	Join        commands.JoinCommandHandler
	Pickup      commands.PickupCommandHandler
	Deliver     commands.DeliverCommandHandler
	Acknowledge commands.AcknowledgeCommandHandler
	Transit     queries.TransitQueryHandler
}

// Router decodes inbound frames and dispatches them to the matching handler.
//
// Every failure is contained to the frame that caused it: the sender is told via an
// error event and the connection stays open.
type Router struct {
	handlers Handlers
	notifier ports.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewRouter(handlers Handlers, notifier ports.Notifier, m *metrics.Metrics, logger *slog.Logger) *Router {
	return &Router{
		handlers: handlers,
		notifier: notifier,
		metrics:  m,
		logger:   logger.With("component", "ws_router"),
	}
}

// Dispatch handles one frame sent by sender.
func (r *Router) Dispatch(ctx context.Context, sender ports.ConnID, data []byte) error {
	var envelope envelopeDTO
	if err := json.Unmarshal(data, &envelope); err != nil {
		r.metrics.EventFailed(ErrorEvent)
		r.fail(sender, ErrorEvent, err, "Hub cannot decode event")
		return errs.NewValueIsInvalidErrorWithCause("envelope", err)
	}

	label := eventLabel(envelope.Event)
	r.metrics.EventReceived(label)
	err := r.dispatch(ctx, sender, envelope)
	if err != nil {
		r.metrics.EventFailed(label)
		r.logger.WarnContext(ctx, "event failed",
			slog.String("conn", string(sender)),
			slog.String("event", envelope.Event),
			slog.String("error", err.Error()))
	}
	return err
}

func (r *Router) dispatch(ctx context.Context, sender ports.ConnID, envelope envelopeDTO) error {
	if envelope.Event == JoinEvent {
		var payload joinDTO
		if err := decode(envelope.Payload, &payload); err != nil {
			r.fail(sender, JoinEvent+"-error", err, "Hub rejected join payload")
			return err
		}
		cmd, err := commands.NewJoinCommand(sender, payload.Store)
		if err != nil {
			r.fail(sender, JoinEvent+"-error", err, "Hub rejected join payload")
			return err
		}
		return r.handlers.Join.Handle(ctx, cmd)
	}

	kind, err := parcel.ParseKind(envelope.Event)
	if err != nil {
		r.fail(sender, ErrorEvent, err, "Hub does not know this event")
		return err
	}

	switch kind {
	case parcel.Pickup:
		var order parcel.Order
		if err = decode(envelope.Payload, &order); err != nil {
			return r.reject(sender, kind, err)
		}
		cmd, cmdErr := commands.NewPickupCommand(sender, order)
		if cmdErr != nil {
			return r.reject(sender, kind, cmdErr)
		}
		return r.handlers.Pickup.Handle(ctx, cmd)

	case parcel.Transit:
		var payload transitDTO
		if err = decode(envelope.Payload, &payload); err != nil {
			return r.reject(sender, kind, err)
		}
		query, queryErr := queries.NewTransitQuery(sender, payload.Store)
		if queryErr != nil {
			return r.reject(sender, kind, queryErr)
		}
		_, err = r.handlers.Transit.Handle(ctx, query)
		return err

	case parcel.Delivered:
		var payload deliveredDTO
		if err = decode(envelope.Payload, &payload); err != nil {
			return r.reject(sender, kind, err)
		}
		cmd, cmdErr := commands.NewDeliverCommand(sender, payload.ClientID, payload.MessageID, payload.Order)
		if cmdErr != nil {
			return r.reject(sender, kind, cmdErr)
		}
		return r.handlers.Deliver.Handle(ctx, cmd)

	case parcel.Acknowledge:
		var payload acknowledgeDTO
		if err = decode(envelope.Payload, &payload); err != nil {
			return r.reject(sender, kind, err)
		}
		cmd, cmdErr := commands.NewAcknowledgeCommand(sender, payload.ClientID, payload.MessageID, payload.Store)
		if cmdErr != nil {
			return r.reject(sender, kind, cmdErr)
		}
		return r.handlers.Acknowledge.Handle(ctx, cmd)

	case parcel.Reserved:
		return nil

	case parcel.Unknown:
		return errs.NewValueIsInvalidError("event")
	}

	return fmt.Errorf("unhandled event kind %d", kind)
}

// reject reports a malformed payload; the ledger is not touched.
func (r *Router) reject(sender ports.ConnID, kind parcel.Kind, err error) error {
	r.fail(sender, kind.ErrorEvent(), err, fmt.Sprintf("Hub rejected malformed %s payload", kind))
	return err
}

func (r *Router) fail(sender ports.ConnID, event string, err error, message string) {
	r.notifier.ToConn(sender, ports.Message{
		Event:   event,
		Payload: ports.ErrorPayload{Error: err.Error(), Message: message},
	})
}

// eventLabel bounds the metric label set: names outside the protocol share one label.
func eventLabel(name string) string {
	if name == JoinEvent {
		return name
	}
	if kind, err := parcel.ParseKind(name); err == nil {
		return kind.String()
	}
	return parcel.Unknown.String()
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errs.NewValueIsRequiredErrorWithCause("payload", errors.New("event has no payload"))
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return nil
}
