package ws

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"caps/internal/core/ports"
	"caps/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Config tunes the WebSocket endpoint. Zero fields take the defaults of DefaultConfig.
type Config struct {
	ReadLimit  int64
	WriteWait  time.Duration
	PongWait   time.Duration
	PingPeriod time.Duration
	SendBuffer int
}

func DefaultConfig() Config {
	return Config{
		ReadLimit:  64 * 1024,
		WriteWait:  10 * time.Second,
		PongWait:   60 * time.Second,
		PingPeriod: 54 * time.Second,
		SendBuffer: 256,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReadLimit <= 0 {
		c.ReadLimit = d.ReadLimit
	}
	if c.WriteWait <= 0 {
		c.WriteWait = d.WriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = d.PongWait
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = d.SendBuffer
	}
	return c
}

// Server upgrades HTTP requests to hub connections.
type Server struct {
	config   Config
	hub      *Hub
	router   *Router
	metrics  *metrics.Metrics
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(config Config, hub *Hub, router *Router, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		config:  config.withDefaults(),
		hub:     hub,
		router:  router,
		metrics: m,
		logger:  logger.With("component", "ws_server"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP serves one connection until the peer disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newConn(ports.ConnID(uuid.NewString()), ws, s.config, s.logger)
	s.hub.register(c)
	s.metrics.ConnectionOpened()
	s.logger.Info("client connected to caps server",
		slog.String("conn", string(c.id)),
		slog.String("remote_addr", r.RemoteAddr))

	defer func() {
		s.hub.unregister(c.id)
		s.metrics.ConnectionClosed()
		s.logger.Info("client disconnected", slog.String("conn", string(c.id)))
	}()

	ctx := context.WithoutCancel(r.Context())
	go c.writeLoop()
	c.readLoop(func(data []byte) {
		_ = s.router.Dispatch(ctx, c.id, data)
	})
}

// Hub returns the connection registry.
func (s *Server) Hub() *Hub {
	return s.hub
}
