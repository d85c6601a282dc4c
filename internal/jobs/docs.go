// Package jobs provides scheduled background tasks for the food donation
// coordination system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the donation lifecycle.
//
// # Available Jobs
//
// 1. ExpirySweepJob - Runs every minute to expire overdue donations and
// cancel any pickup request still active on them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireDonationsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *", firing at the top of
// every minute. Donations past their expiry date move to Expired on the
// next tick, so staleness is bounded by one minute.
//
// # Error Handling
//
// The sweep is idempotent: a failed run leaves overdue donations in place
// and the next tick retries them. Failures are logged and never stop the
// schedule.
package jobs
