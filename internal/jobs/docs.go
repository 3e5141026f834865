// Package jobs provides scheduled background tasks for the hotel operations
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RoomStatusDigestJob - Runs daily at 08:00 to log a snapshot of pending
// room-service orders and today's scheduled cleanings.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(summaryHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Digest failures are logged and the schedule keeps running; a failed job
// start aborts StartAll.
package jobs
