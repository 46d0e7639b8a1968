package jobs

import (
	"context"
	"log/slog"

	"caps/internal/core/domain/services"
	"caps/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StatsSource provides the ledger counters.
type StatsSource interface {
	Stats() services.Stats
}

// LedgerStatsJob periodically logs the ledger size and exports it as metrics.
type LedgerStatsJob struct {
	ledger   StatsSource
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLedgerStatsJob(ledger StatsSource, m *metrics.Metrics, schedule string, logger *slog.Logger) *LedgerStatsJob {
	return &LedgerStatsJob{
		ledger:   ledger,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ledger_stats_job"),
	}
}

// Run performs one stats pass.
func (j *LedgerStatsJob) Run() {
	stats := j.ledger.Stats()
	j.metrics.ObserveLedger(stats.Vendors, stats.Pending, stats.Received)
	j.logger.InfoContext(context.Background(), "Ledger stats",
		slog.Int("vendors", stats.Vendors),
		slog.Int("pending", stats.Pending),
		slog.Int("received", stats.Received))
}

// Start schedules the job. An empty schedule leaves it disabled.
func (j *LedgerStatsJob) Start() error {
	if j.schedule == "" {
		return nil
	}
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger stats job started", slog.String("schedule", j.schedule))
	return nil
}

// Stop stops the job and waits for a running pass to finish.
func (j *LedgerStatsJob) Stop() {
	<-j.cron.Stop().Done()
}
