package ws

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"caps/internal/core/ports"
)

// Hub is the registry of live connections and room membership. It implements
// ports.Notifier.
type Hub struct {
	mu     sync.RWMutex
	conns  map[ports.ConnID]*conn
	rooms  map[string]map[ports.ConnID]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns:  make(map[ports.ConnID]*conn),
		rooms:  make(map[string]map[ports.ConnID]struct{}),
		logger: logger.With("component", "ws_hub"),
	}
}

func (h *Hub) register(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

// unregister drops the connection and its room memberships.
func (h *Hub) unregister(id ports.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, id)
	for room, members := range h.rooms {
		delete(members, id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) Broadcast(except ports.ConnID, msg ports.Message) {
	data, ok := h.encode(msg)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.conns {
		if id != except {
			c.enqueue(data)
		}
	}
}

func (h *Hub) ToRoom(room string, except ports.ConnID, msg ports.Message) {
	data, ok := h.encode(msg)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[room] {
		if id == except {
			continue
		}
		if c, found := h.conns[id]; found {
			c.enqueue(data)
		}
	}
}

func (h *Hub) ToConn(id ports.ConnID, msg ports.Message) {
	data, ok := h.encode(msg)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, found := h.conns[id]; found {
		c.enqueue(data)
	}
}

// Join adds a live connection to room. Unknown connections are ignored.
func (h *Hub) Join(id ports.ConnID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, found := h.conns[id]; !found {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[ports.ConnID]struct{})
		h.rooms[room] = members
	}
	members[id] = struct{}{}
}

// Members returns the connections in room, sorted.
func (h *Hub) Members(room string) []ports.ConnID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]ports.ConnID, 0, len(h.rooms[room]))
	for id := range h.rooms[room] {
		members = append(members, id)
	}
	slices.Sort(members)
	return members
}

// Len returns the number of live connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close disconnects every party.
func (h *Hub) Close() {
	h.mu.RLock()
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.close()
	}
}

func (h *Hub) encode(msg ports.Message) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("cannot encode outbound message",
			slog.String("event", msg.Event),
			slog.String("error", err.Error()))
		return nil, false
	}
	return data, true
}
