// Package hubclient is the outbound side of the hub protocol.
//
// Client speaks the JSON envelope over a WebSocket connection and dispatches inbound
// events to registered handlers. Vendor and Driver build the two simulated parties on
// top of it: a vendor hands packages over and acknowledges deliveries, a driver asks
// for the vendor's pending packages and reports each one delivered.
package hubclient
