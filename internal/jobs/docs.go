// Package jobs provides scheduled background tasks for the booking system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingRebroadcastJob - Re-notifies eligible translators of jobs still
// pending acceptance, so unclaimed bookings do not go stale.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(rebroadcastHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed rebroadcast run is logged and retried on the next tick; per-job
// notification failures inside a run never abort the sweep.
package jobs
