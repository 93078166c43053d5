// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel pending orders whose
// package pickup window has closed and return their reserved stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expirePendingOrdersHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. A pickup window closes at most one minute
// before the sweep notices it, which is accurate enough for cleanup work.
//
// # Error Handling
//
// The expiry job logs every error; a failed sweep leaves the stale orders
// pending and the next run picks them up again. Failed job starts will stop
// any already running jobs.
package jobs
