// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the freight service.
//
// # Available Jobs
//
// 1. StowageJob - Runs every ten seconds to distribute shore-side containers across the fleet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stowContainersHandler, logger)
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
// The stowage job uses the cron expression "*/10 * * * * *", running every
// ten seconds. Containers no ship can accept simply stay ashore and are
// retried on the next round, so a failed placement is not an error.
//
// # Error Handling
//
// Stowage round failures are logged and retried on the next tick; the job
// itself keeps running.
package jobs
