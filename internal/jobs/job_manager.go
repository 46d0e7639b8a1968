package jobs

import (
	"fmt"
	"log/slog"

	"caps/internal/pkg/metrics"
)

// Ledger is what the jobs need from the delivery ledger.
type Ledger interface {
	StatsSource
	Reclaimer
}

// Schedules holds the cron expressions of the jobs; empty disables a job.
type Schedules struct {
	Stats   string
	Reclaim string
}

// JobManager coordinates all scheduled jobs in the hub.
type JobManager struct {
	statsJob   *LedgerStatsJob
	reclaimJob *LedgerReclaimJob
}

func NewJobManager(ledger Ledger, m *metrics.Metrics, schedules Schedules, logger *slog.Logger) *JobManager {
	return &JobManager{
		statsJob:   NewLedgerStatsJob(ledger, m, schedules.Stats, logger),
		reclaimJob: NewLedgerReclaimJob(ledger, schedules.Reclaim, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsJob.Start(); err != nil {
		return fmt.Errorf("failed to start ledger stats job: %w", err)
	}

	if err := jm.reclaimJob.Start(); err != nil {
		jm.statsJob.Stop()
		return fmt.Errorf("failed to start ledger reclaim job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reclaimJob.Stop()
	jm.statsJob.Stop()
}
