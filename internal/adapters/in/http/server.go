package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"caps/internal/adapters/in/ws"
	"caps/internal/core/application/usecases/queries"
	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/services"
	"caps/internal/generated/servers"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface and also mounts the WebSocket
// endpoint, metrics and the API docs next to the generated routes.
type Server struct {
	getPackagesHandler queries.GetPackagesQueryHandler
	wsServer           *ws.Server
	metrics            *metrics.Metrics
	wsPath             string
}

// NewServer creates the HTTP server. wsPath is where parties connect, e.g. "/caps".
func NewServer(
	getPackagesHandler queries.GetPackagesQueryHandler,
	wsServer *ws.Server,
	m *metrics.Metrics,
	wsPath string,
) *Server {
	return &Server{
		getPackagesHandler: getPackagesHandler,
		wsServer:           wsServer,
		metrics:            m,
		wsPath:             wsPath,
	}
}

// swaggerDoc hands the embedded OpenAPI document to swag.
type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// swag keeps a process-wide registry and panics on a second registration.
var registerDoc sync.Once

// RegisterRoutes validates the embedded OpenAPI document and mounts every
// endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}
	if err := swagger.Validate(context.Background()); err != nil {
		return fmt.Errorf("validate openapi document: %w", err)
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET(s.wsPath, echo.WrapHandler(s.wsServer))
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	servers.RegisterHandlers(e, s)
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetPendingPackages handles GET /api/v1/stores/{store}/pending - packages awaiting delivery.
func (s *Server) GetPendingPackages(ctx echo.Context, store servers.Store) error {
	return s.getPackages(ctx, store, services.InPending)
}

// GetReceivedPackages handles GET /api/v1/stores/{store}/received - delivered, unacknowledged packages.
func (s *Server) GetReceivedPackages(ctx echo.Context, store servers.Store) error {
	return s.getPackages(ctx, store, services.InReceived)
}

// GetLedgerStats handles GET /api/v1/ledger/stats.
func (s *Server) GetLedgerStats(ctx echo.Context) error {
	stats := s.getPackagesHandler.Stats(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, servers.Stats{
		Vendors:  stats.Vendors,
		Pending:  stats.Pending,
		Received: stats.Received,
	})
}

func (s *Server) getPackages(ctx echo.Context, store servers.Store, slot services.Slot) error {
	query, err := queries.NewGetPackagesQuery(store, slot)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
			status = http.StatusBadRequest
		}
		return ctx.JSON(status, servers.Error{Code: status, Message: "Invalid store: " + err.Error()})
	}

	packages, err := s.getPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read packages",
		})
	}

	response := make(servers.Packages, len(packages))
	for id, record := range packages {
		item, err := toRecord(record)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to encode packages",
			})
		}
		response[id] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

func toRecord(record parcel.Record) (servers.Record, error) {
	order, err := json.Marshal(record.Order)
	if err != nil {
		return servers.Record{}, err
	}
	return servers.Record{
		Event:     servers.RecordEvent(record.Event.String()),
		MessageId: record.MessageID,
		ClientId:  record.ClientID,
		Order:     order,
	}, nil
}
