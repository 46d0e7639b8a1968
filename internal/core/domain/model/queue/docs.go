// Package queue provides KeyedQueue, the lookup table the delivery ledger is built from.
//
// Despite the name a KeyedQueue is not FIFO: it maps a unique string key to a value
// and supports insert-or-replace, lookup and delete. The ledger nests two levels of
// it, vendor id to a vendor's packages and message id to a package record.
//
// KeyedQueue is not safe for concurrent use; the ledger serializes access.
package queue
