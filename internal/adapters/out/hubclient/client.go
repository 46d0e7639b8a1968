package hubclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrClientClosed is returned by Emit after the connection has been closed.
var ErrClientClosed = errors.New("hub client is closed")

const writeWait = 10 * time.Second

// Handler processes the payload of one inbound event.
type Handler func(ctx context.Context, payload json.RawMessage)

type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client is a thread-safe hub connection.
type Client struct {
	conn *websocket.Conn

	writeMu sync.Mutex
	closed  bool

	handlersMu sync.RWMutex
	handlers   map[string]Handler

	logger *slog.Logger
}

// Dial connects to the hub endpoint, e.g. ws://localhost:3001/caps.
func Dial(ctx context.Context, url string, logger *slog.Logger) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	return &Client{
		conn:     conn,
		handlers: make(map[string]Handler),
		logger:   logger.With("component", "hub_client"),
	}, nil
}

// On registers the handler of an event, replacing any previous one.
func (c *Client) On(event string, handler Handler) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.handlers[event] = handler
}

// Emit sends one event. A nil payload is sent without a payload field.
func (c *Client) Emit(event string, payload any) error {
	msg := envelope{Event: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", event, err)
		}
		msg.Payload = raw
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Run reads events and dispatches them to their handlers until ctx is cancelled or
// the hub closes the connection. Handlers run on the reading goroutine, in arrival order.
func (c *Client) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		var msg envelope
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.WarnContext(ctx, "Dropping undecodable frame", slog.String("error", err.Error()))
			continue
		}

		c.handlersMu.RLock()
		handler, ok := c.handlers[msg.Event]
		c.handlersMu.RUnlock()
		if !ok {
			c.logger.DebugContext(ctx, "No handler for event", slog.String("event", msg.Event))
			continue
		}
		handler(ctx, msg.Payload)
	}
}

// Close sends a close frame and closes the connection. It is safe to call more than once.
func (c *Client) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	return c.conn.Close()
}
