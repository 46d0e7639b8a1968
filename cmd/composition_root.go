package cmd

import (
	"log/slog"

	httpadapter "caps/internal/adapters/in/http"
	"caps/internal/adapters/in/ws"
	"caps/internal/core/application/usecases/commands"
	"caps/internal/core/application/usecases/queries"
	"caps/internal/core/domain/services"
	"caps/internal/jobs"
	"caps/internal/pkg/metrics"
)

// CompositionRoot owns the single ledger and the hub and wires them into every handler.
type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	ledger  *services.Ledger
	hub     *ws.Hub
	metrics *metrics.Metrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := services.ParseDuplicatePolicy(config.LedgerDuplicatePolicy)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:  config,
		logger:  logger,
		ledger:  services.NewLedger(policy),
		hub:     ws.NewHub(logger),
		metrics: metrics.New(),
	}, nil
}

func (c *CompositionRoot) Ledger() *services.Ledger {
	return c.ledger
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateJoinCommandHandler() commands.JoinCommandHandler {
	return commands.NewJoinCommandHandler(c.hub)
}

func (c *CompositionRoot) CreatePickupCommandHandler() commands.PickupCommandHandler {
	return commands.NewPickupCommandHandler(c.ledger, c.hub, c.logger)
}

func (c *CompositionRoot) CreateDeliverCommandHandler() commands.DeliverCommandHandler {
	return commands.NewDeliverCommandHandler(c.ledger, c.hub, c.logger)
}

func (c *CompositionRoot) CreateAcknowledgeCommandHandler() commands.AcknowledgeCommandHandler {
	return commands.NewAcknowledgeCommandHandler(c.ledger, c.hub, c.logger)
}

func (c *CompositionRoot) CreateTransitQueryHandler() queries.TransitQueryHandler {
	return queries.NewTransitQueryHandler(c.ledger, c.hub, c.logger)
}

func (c *CompositionRoot) CreateGetPackagesQueryHandler() queries.GetPackagesQueryHandler {
	return queries.NewGetPackagesQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateRouter() *ws.Router {
	return ws.NewRouter(ws.Handlers{
		Join:        c.CreateJoinCommandHandler(),
		Pickup:      c.CreatePickupCommandHandler(),
		Deliver:     c.CreateDeliverCommandHandler(),
		Acknowledge: c.CreateAcknowledgeCommandHandler(),
		Transit:     c.CreateTransitQueryHandler(),
	}, c.hub, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateWSServer() *ws.Server {
	return ws.NewServer(ws.DefaultConfig(), c.hub, c.CreateRouter(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateGetPackagesQueryHandler(), c.CreateWSServer(), c.metrics, c.config.WSPath)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.ledger, c.metrics, jobs.Schedules{
		Stats:   c.config.LedgerStatsSchedule,
		Reclaim: c.config.LedgerReclaimSchedule,
	}, c.logger)
}
