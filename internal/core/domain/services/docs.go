// Package services provides the delivery Ledger, the only stateful component of the hub.
//
// The Ledger owns two nested KeyedQueues, pending and received, each keyed by vendor
// id and then by message id. Every transition runs under one mutex so a package
// occupies at most one slot at any time, even with one goroutine per connection.
package services
