// Package jobs provides scheduled background tasks for the shipment
// tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every 10 minutes to flag in-flight shipments
// past their estimated delivery date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(overdueDeliveryJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The overdue sweep logs store errors and retries on the next tick
// - Failed job starts leave no jobs running
package jobs
