package ports

// ConnID identifies one live connection to the hub.
type ConnID string

// Message is one outbound event. Payload is encoded by the transport.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Notifier delivers events to connected parties. Sends are best effort: a
// connection that went away is skipped, never reported to the caller.
type Notifier interface {
	// Broadcast sends msg to every connection except the one given.
	Broadcast(except ConnID, msg Message)

	// ToRoom sends msg to every member of room except the one given.
	ToRoom(room string, except ConnID, msg Message)

	// ToConn sends msg to a single connection.
	ToConn(id ConnID, msg Message)

	// Join adds the connection to room.
	Join(id ConnID, room string)
}

// ErrorPayload is the body of every "<event>-error" message.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
