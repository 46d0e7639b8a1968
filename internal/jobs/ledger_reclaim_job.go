package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Reclaimer evicts drained vendor queues.
type Reclaimer interface {
	Reclaim() []string
}

// LedgerReclaimJob evicts the inner queues of vendors with nothing pending or received.
type LedgerReclaimJob struct {
	ledger   Reclaimer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLedgerReclaimJob(ledger Reclaimer, schedule string, logger *slog.Logger) *LedgerReclaimJob {
	return &LedgerReclaimJob{
		ledger:   ledger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ledger_reclaim_job"),
	}
}

// Run performs one reclamation pass and returns the evicted vendors.
func (j *LedgerReclaimJob) Run() []string {
	evicted := j.ledger.Reclaim()
	if len(evicted) > 0 {
		j.logger.InfoContext(context.Background(), "Reclaimed drained vendor queues",
			slog.Int("count", len(evicted)),
			slog.Any("vendors", evicted))
	}
	return evicted
}

// Start schedules the job. An empty schedule leaves it disabled.
func (j *LedgerReclaimJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Ledger reclaim job disabled")
		return nil
	}
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run() }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger reclaim job started", slog.String("schedule", j.schedule))
	return nil
}

// Stop stops the job and waits for a running pass to finish.
func (j *LedgerReclaimJob) Stop() {
	<-j.cron.Stop().Done()
}
