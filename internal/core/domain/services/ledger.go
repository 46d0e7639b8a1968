package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/model/queue"
	"caps/internal/pkg/errs"
)

// ErrDuplicatePackage is returned by Pickup under the Reject policy when the order is already pending.
var ErrDuplicatePackage = errors.New("package is already pending")

// Slot tells where a package currently sits in the ledger.
type Slot int

const (
	Absent Slot = iota
	InPending
	InReceived
)

func (s Slot) String() string {
	switch s {
	case InPending:
		return "pending"
	case InReceived:
		return "received"
	default:
		return "absent"
	}
}

// Stats counts the ledger contents.
type Stats struct {
	Vendors  int `json:"vendors"`
	Pending  int `json:"pending"`
	Received int `json:"received"`
}

type vendorQueues = queue.KeyedQueue[*queue.KeyedQueue[parcel.Record]]

// Ledger tracks, per vendor, packages awaiting delivery (pending) and packages
// delivered but not yet acknowledged (received).
//
// Inner per-vendor queues are created on first insert and kept until Reclaim evicts
// them. Ledger is safe for concurrent use.
type Ledger struct {
	mu       sync.Mutex
	pending  *vendorQueues
	received *vendorQueues
	policy   DuplicatePolicy
}

// NewLedger creates an empty ledger applying policy to repeated pickups.
func NewLedger(policy DuplicatePolicy) *Ledger {
	return &Ledger{
		pending:  queue.New[*queue.KeyedQueue[parcel.Record]](),
		received: queue.New[*queue.KeyedQueue[parcel.Record]](),
		policy:   policy,
	}
}

// Policy returns the duplicate pickup policy.
func (l *Ledger) Policy() DuplicatePolicy {
	return l.policy
}

// Pickup records order as pending for its store and returns the stored record.
func (l *Ledger) Pickup(order parcel.Order) (parcel.Record, error) {
	if err := order.Validate(); err != nil {
		return parcel.Record{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	packages := vendorQueue(l.pending, order.Store)
	if _, exists := packages.Read(order.OrderID); exists && l.policy == Reject {
		return parcel.Record{}, fmt.Errorf("%w: %s/%s", ErrDuplicatePackage, order.Store, order.OrderID)
	}

	record := parcel.NewPickupRecord(order)
	packages.Save(order.OrderID, record)
	return record, nil
}

// Transit returns a copy of every pending package of store keyed by message id.
// A store without pickups yields an empty, non-nil map.
func (l *Ledger) Transit(store string) map[string]parcel.Record {
	return l.snapshot(l.pending, store)
}

// Deliver moves a package from pending to received. The received record carries
// order, or the pending record's order when order has no id.
//
// An unknown vendor or message id leaves the ledger untouched and returns an error
// matching errs.ErrObjectNotFound.
func (l *Ledger) Deliver(clientID, messageID string, order parcel.Order) (parcel.Record, error) {
	if err := requireIDs(clientID, messageID); err != nil {
		return parcel.Record{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	packages, ok := l.pending.Read(clientID)
	if !ok {
		return parcel.Record{}, errs.NewObjectNotFoundErrorWithCause(
			"messageId", messageID, fmt.Errorf("no pending packages for %s", clientID))
	}

	pending, ok := packages.Remove(messageID)
	if !ok {
		return parcel.Record{}, errs.NewObjectNotFoundErrorWithCause(
			"messageId", messageID, fmt.Errorf("package is not pending for %s", clientID))
	}

	if order.OrderID == "" {
		order = pending.Order
	}

	record := parcel.NewDeliveredRecord(clientID, messageID, order)
	vendorQueue(l.received, clientID).Save(messageID, record)
	return record, nil
}

// Acknowledge removes a delivered package from received and returns it.
//
// An unknown vendor or message id returns an error matching errs.ErrObjectNotFound.
func (l *Ledger) Acknowledge(clientID, messageID string) (parcel.Record, error) {
	if err := requireIDs(clientID, messageID); err != nil {
		return parcel.Record{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	inbox, ok := l.received.Read(clientID)
	if !ok {
		return parcel.Record{}, errs.NewObjectNotFoundErrorWithCause(
			"messageId", messageID, fmt.Errorf("no received packages for %s", clientID))
	}

	record, ok := inbox.Remove(messageID)
	if !ok {
		return parcel.Record{}, errs.NewObjectNotFoundErrorWithCause(
			"messageId", messageID, fmt.Errorf("package was not delivered to %s", clientID))
	}
	return record, nil
}

// Received returns a copy of every delivered, unacknowledged package of store.
func (l *Ledger) Received(store string) map[string]parcel.Record {
	return l.snapshot(l.received, store)
}

// Locate reports which slot holds the package.
func (l *Ledger) Locate(store, messageID string) Slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	if packages, ok := l.pending.Read(store); ok {
		if _, ok = packages.Read(messageID); ok {
			return InPending
		}
	}
	if packages, ok := l.received.Read(store); ok {
		if _, ok = packages.Read(messageID); ok {
			return InReceived
		}
	}
	return Absent
}

// Stats counts vendors with an inner queue in either ledger and the packages held.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	vendors := make(map[string]struct{})
	var stats Stats
	for _, store := range l.pending.Keys() {
		vendors[store] = struct{}{}
		packages, _ := l.pending.Read(store)
		stats.Pending += packages.Len()
	}
	for _, store := range l.received.Keys() {
		vendors[store] = struct{}{}
		packages, _ := l.received.Read(store)
		stats.Received += packages.Len()
	}
	stats.Vendors = len(vendors)
	return stats
}

// Reclaim evicts the inner queues of vendors whose pending and received queues are
// both empty and returns the evicted vendor ids in ascending order.
func (l *Ledger) Reclaim() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var evicted []string
	for _, store := range l.pending.Keys() {
		packages, _ := l.pending.Read(store)
		if !packages.IsEmpty() {
			continue
		}
		if inbox, ok := l.received.Read(store); ok && !inbox.IsEmpty() {
			continue
		}
		l.pending.Remove(store)
		l.received.Remove(store)
		evicted = append(evicted, store)
	}
	for _, store := range l.received.Keys() {
		inbox, _ := l.received.Read(store)
		if _, ok := l.pending.Read(store); ok || !inbox.IsEmpty() {
			continue
		}
		l.received.Remove(store)
		evicted = append(evicted, store)
	}
	slices.Sort(evicted)
	return evicted
}

func (l *Ledger) snapshot(queues *vendorQueues, store string) map[string]parcel.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	packages, ok := queues.Read(store)
	if !ok {
		return map[string]parcel.Record{}
	}
	return packages.Snapshot()
}

// vendorQueue returns the inner queue of store, creating it on first use.
func vendorQueue(queues *vendorQueues, store string) *queue.KeyedQueue[parcel.Record] {
	packages, ok := queues.Read(store)
	if !ok {
		packages = queue.New[parcel.Record]()
		queues.Save(store, packages)
	}
	return packages
}

func requireIDs(clientID, messageID string) error {
	var problems []error
	if strings.TrimSpace(clientID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientId"))
	}
	if strings.TrimSpace(messageID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("messageId"))
	}
	return errors.Join(problems...)
}
