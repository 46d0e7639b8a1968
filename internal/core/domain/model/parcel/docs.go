// Package parcel provides the domain values the hub tracks for every package.
//
// The package includes:
//   - Kind: the closed set of lifecycle events (pickup, transit, delivered,
//     acknowledge, reserved)
//   - Order: the vendor's order document, routed by store and orderId and otherwise passed through byte for byte
//   - Record: one package's lifecycle snapshot as stored in the ledger
//
// Lifecycle of a record:
//
//	pickup ──> pending ──(transit reads)──> delivered ──> received ──> acknowledge ──> discarded
//
// A record is keyed by its message id (the order id) within its vendor's queue.
package parcel
