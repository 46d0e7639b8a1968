package hubclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"caps/internal/core/domain/model/parcel"
)

type deliveredMessage struct {
	ClientID  string       `json:"clientId"`
	MessageID string       `json:"messageId"`
	Order     parcel.Order `json:"order"`
}

type acknowledgeMessage struct {
	ClientID  string `json:"clientId"`
	MessageID string `json:"messageId"`
	Store     string `json:"store"`
}

type errorMessage struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OrderFactory makes the next synthetic order of a store.
type OrderFactory func(store string) (parcel.Order, error)

// Vendor is a store handing packages to the hub. It acknowledges every delivery
// it is told about.
type Vendor struct {
	client *Client
	store  string
	logger *slog.Logger
}

func NewVendor(client *Client, store string, logger *slog.Logger) *Vendor {
	v := &Vendor{
		client: client,
		store:  store,
		logger: logger.With("component", "vendor", "store", store),
	}
	client.On(parcel.Delivered.String(), v.onDelivered)
	client.On(parcel.Acknowledge.ErrorEvent(), v.onAcknowledgeError)
	return v
}

// Join subscribes the connection to the store's channel.
func (v *Vendor) Join() error {
	return v.client.Emit("join", map[string]string{"store": v.store})
}

// Pickup hands one order to the hub.
func (v *Vendor) Pickup(order parcel.Order) error {
	return v.client.Emit(parcel.Pickup.String(), order)
}

// Run emits a new order every interval until ctx is done.
func (v *Vendor) Run(ctx context.Context, interval time.Duration, next OrderFactory) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			order, err := next(v.store)
			if err != nil {
				return err
			}
			if err := v.Pickup(order); err != nil {
				return err
			}
			v.logger.InfoContext(ctx, "Package ready for pickup", slog.String("order_id", order.OrderID))
		}
	}
}

func (v *Vendor) onDelivered(ctx context.Context, payload json.RawMessage) {
	var msg deliveredMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		v.logger.WarnContext(ctx, "Malformed delivered event", slog.String("error", err.Error()))
		return
	}

	var customer string
	_ = json.Unmarshal(msg.Order.Field("customer"), &customer)
	v.logger.InfoContext(ctx, "Thank you "+customer+" for shopping with "+msg.ClientID)

	store := msg.Order.Store
	if store == "" {
		store = v.store
	}
	if err := v.client.Emit(parcel.Acknowledge.String(), acknowledgeMessage{
		ClientID:  msg.ClientID,
		MessageID: msg.MessageID,
		Store:     store,
	}); err != nil {
		v.logger.ErrorContext(ctx, "Failed to acknowledge delivery",
			slog.String("message_id", msg.MessageID),
			slog.String("error", err.Error()))
	}
}

func (v *Vendor) onAcknowledgeError(ctx context.Context, payload json.RawMessage) {
	var msg errorMessage
	_ = json.Unmarshal(payload, &msg)
	v.logger.WarnContext(ctx, "Acknowledge rejected by hub",
		slog.String("message", msg.Message),
		slog.String("error", msg.Error))
}
