// Package jobs provides scheduled background tasks for the hub.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LedgerStatsJob - logs the ledger counters and publishes them as metrics
// 2. LedgerReclaimJob - evicts vendors whose pending and received queues are both empty
//
// # Usage
//
//	jobManager := jobs.NewJobManager(ledger, m, schedules, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. An empty schedule disables
// the job; reclamation is disabled unless configured, so vendor queues live for the
// whole process by default.
package jobs
