// Package ports defines the contracts between the hub's use cases and the
// infrastructure around them: the delivery ledger and the real-time transport.
package ports

import "caps/internal/core/domain/model/parcel"

// Ledger is the delivery state the event handlers read and mutate.
// services.Ledger is the in-memory implementation.
type Ledger interface {
	// Pickup stores order as pending for its store.
	Pickup(order parcel.Order) (parcel.Record, error)

	// Transit returns a copy of a store's pending packages keyed by message id.
	// A store without pickups yields an empty map.
	Transit(store string) map[string]parcel.Record

	// Deliver moves a package from pending to received.
	Deliver(clientID, messageID string, order parcel.Order) (parcel.Record, error)

	// Acknowledge removes a package from received.
	Acknowledge(clientID, messageID string) (parcel.Record, error)
}
