// Package jobs provides the scheduled background work of the service.
//
// OrderAssignmentJob retries courier assignment for orders that could not be
// assigned right after payment (nobody on shift at the time). Timers owns
// the one-shot deferred follow-ups the conversation flows schedule, so
// pending work can be cancelled on shutdown.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(notifier, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
