package hubclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"caps/internal/core/domain/model/parcel"
)

type transitMessage struct {
	Store string `json:"store"`
}

// Driver picks up packages announced by vendors and reports them delivered after
// a delay.
//
// Every transit reply repeats the vendor's whole pending queue, and a reply the hub
// built before it saw a delivered event still lists that package. A delivered package
// is therefore remembered until a transit reply requested after the delivery leaves
// it out. The hub answers one connection in order, so replies are matched to requests
// first in, first out.
type Driver struct {
	client *Client
	delay  time.Duration
	logger *slog.Logger

	mu        sync.Mutex
	requested []string
	// store -> message id -> delivered
	tracked map[string]map[string]bool
	timers  []*time.Timer
}

func NewDriver(client *Client, delay time.Duration, logger *slog.Logger) *Driver {
	d := &Driver{
		client:  client,
		delay:   delay,
		logger:  logger.With("component", "driver"),
		tracked: make(map[string]map[string]bool),
	}
	client.On(parcel.Pickup.String(), d.onPickup)
	client.On(parcel.Transit.String(), d.onTransit)
	client.On(parcel.Delivered.ErrorEvent(), d.onDeliveredError)
	return d
}

// Stop cancels deliveries that have not fired yet.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, timer := range d.timers {
		timer.Stop()
	}
	d.timers = nil
}

// Tracked returns how many packages of store the driver is carrying or has delivered
// without a later transit reply confirming it.
func (d *Driver) Tracked(store string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tracked[store])
}

func (d *Driver) onPickup(ctx context.Context, payload json.RawMessage) {
	var order parcel.Order
	if err := json.Unmarshal(payload, &order); err != nil || order.Store == "" {
		d.logger.WarnContext(ctx, "Malformed pickup event")
		return
	}

	d.mu.Lock()
	d.requested = append(d.requested, order.Store)
	d.mu.Unlock()

	if err := d.client.Emit(parcel.Transit.String(), transitMessage{Store: order.Store}); err != nil {
		d.logger.ErrorContext(ctx, "Failed to request transit", slog.String("error", err.Error()))
	}
}

func (d *Driver) onTransit(ctx context.Context, payload json.RawMessage) {
	var pending map[string]parcel.Record
	if err := json.Unmarshal(payload, &pending); err != nil {
		d.logger.WarnContext(ctx, "Malformed transit event", slog.String("error", err.Error()))
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var store string
	if len(d.requested) > 0 {
		store, d.requested = d.requested[0], d.requested[1:]
	}

	for id, record := range pending {
		if store == "" {
			store = record.ClientID
		}
		packages := d.tracked[record.ClientID]
		if packages == nil {
			packages = make(map[string]bool)
			d.tracked[record.ClientID] = packages
		}
		if _, ok := packages[id]; ok {
			continue
		}
		packages[id] = false

		d.logger.InfoContext(ctx, "Package in transit", slog.String("order_id", id))
		msg := deliveredMessage{ClientID: record.ClientID, MessageID: id, Order: record.Order}
		d.timers = append(d.timers, time.AfterFunc(d.delay, func() { d.deliver(msg) }))
	}

	// delivered packages missing from this reply are done for good
	for id, delivered := range d.tracked[store] {
		if _, listed := pending[id]; delivered && !listed {
			delete(d.tracked[store], id)
		}
	}
	if len(d.tracked[store]) == 0 {
		delete(d.tracked, store)
	}
}

func (d *Driver) deliver(msg deliveredMessage) {
	ctx := context.Background()
	d.setDelivered(msg, true)

	if err := d.client.Emit(parcel.Delivered.String(), msg); err != nil {
		d.setDelivered(msg, false)
		d.logger.ErrorContext(ctx, "Failed to report delivery",
			slog.String("order_id", msg.MessageID),
			slog.String("error", err.Error()))
		return
	}
	d.logger.InfoContext(ctx, "Package delivered", slog.String("order_id", msg.MessageID))
}

// setDelivered marks a package delivered before it is reported, so a transit reply
// handled right after the report already sees it. A failed report forgets the package.
func (d *Driver) setDelivered(msg deliveredMessage, delivered bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	packages := d.tracked[msg.ClientID]
	if packages == nil {
		return
	}
	if delivered {
		packages[msg.MessageID] = true
	} else {
		delete(packages, msg.MessageID)
	}
}

func (d *Driver) onDeliveredError(ctx context.Context, payload json.RawMessage) {
	var msg errorMessage
	_ = json.Unmarshal(payload, &msg)
	d.logger.WarnContext(ctx, "Delivery rejected by hub", slog.String("error", msg.Error))
}
