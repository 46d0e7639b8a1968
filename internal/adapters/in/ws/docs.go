// Package ws is the hub's real-time transport: a gorilla/websocket endpoint, the
// registry of live connections and rooms, and the Router that turns inbound frames
// into commands and queries.
//
// Every frame is a JSON envelope:
//
//	{"event": "pickup", "payload": {"store": "Acme", "orderId": "o1", ...}}
//
// Each connection is served by one reader goroutine, so events from a single party
// are handled in the order they were sent. Outbound messages go through a buffered
// per-connection queue drained by a writer goroutine; a party that stops reading is
// disconnected once its queue is full. Disconnects never touch the ledger.
package ws
