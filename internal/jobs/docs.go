// Package jobs provides scheduled background tasks for the food delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required while the marketplace is running.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every second to offer the oldest pending order to the
// best free driver (fewest rejections first).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business outcomes (no pending orders, no
// free drivers) and logs everything else. A failed job start stops any jobs
// that already started.
package jobs
