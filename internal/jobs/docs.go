// Package jobs provides scheduled background tasks for the escrow shipment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the shipment lifecycle needs.
//
// # Available Jobs
//
// 1. DisputeWindowJob - Runs every minute to auto-confirm delivered shipments whose dispute window expired
// 2. TrackingPollJob - Runs every five minutes to poll carriers for in-transit parcels and record deliveries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dueWindowsHandler, expiryHandler,
//		inTransitHandler, updateHandler, trackingAdapter, clk, logger)
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
// The dispute window sweep runs at the top of every minute; expiry is a
// deadline measured in days, so minute resolution is more than enough. The
// tracking poll runs every five minutes to stay polite to carrier APIs.
//
// # Error Handling
//
// - Both jobs log failures and keep going; one bad shipment never starves the rest of a sweep
// - Carrier errors and non-delivered answers are treated as "no news" and skipped silently
// - Failed job starts will stop any already running jobs
package jobs
