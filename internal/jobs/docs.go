// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ParcelDispatchJob - Assigns the oldest pending parcel to the
// least-loaded active agent, one parcel per tick.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch spec uses the six-field cron format with a seconds column.
// Automatic dispatch is optional: when disabled in configuration the job
// manager is never constructed and assignment stays manual.
//
// # Error Handling
//
// The dispatch job ignores expected business errors (no pending parcels,
// no active agents) and logs everything else.
package jobs
