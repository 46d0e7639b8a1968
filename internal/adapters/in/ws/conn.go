package ws

import (
	"log/slog"
	"sync"
	"time"

	"caps/internal/core/ports"

	"github.com/gorilla/websocket"
)

type conn struct {
	id     ports.ConnID
	ws     *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	config Config
	logger *slog.Logger
}

func newConn(id ports.ConnID, ws *websocket.Conn, config Config, logger *slog.Logger) *conn {
	return &conn{
		id:     id,
		ws:     ws,
		send:   make(chan []byte, config.SendBuffer),
		done:   make(chan struct{}),
		config: config,
		logger: logger.With(slog.String("conn", string(id))),
	}
}

// enqueue queues data for the writer. A full queue closes the connection.
func (c *conn) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	case <-c.done:
		return false
	default:
		c.logger.Warn("outbound queue full, closing connection")
		c.close()
		return false
	}
}

func (c *conn) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}

// readLoop calls handle for every text frame until the peer goes away.
func (c *conn) readLoop(handle func(data []byte)) {
	defer c.close()

	c.ws.SetReadLimit(c.config.ReadLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.config.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.config.PongWait))
	})

	for {
		messageType, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("connection read failed", slog.String("error", err.Error()))
			}
			return
		}
		if messageType != websocket.TextMessage {
			c.logger.Debug("ignoring non-text frame", slog.Int("type", messageType))
			continue
		}
		handle(data)
	}
}

// writeLoop drains the outbound queue and keeps the connection alive with pings.
func (c *conn) writeLoop() {
	ticker := time.NewTicker(c.config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(c.config.WriteWait)
			if err := c.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
