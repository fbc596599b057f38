// Package jobs provides scheduled background tasks using
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. QueueRefreshJob - periodically recomputes every active work center's
// queue and rewrites its cache entry, so operator terminals stay warm
// even when no step event has invalidated the cache recently.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(queueHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
