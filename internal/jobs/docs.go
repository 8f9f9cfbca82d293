// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DueReminderJob runs every REMINDER_INTERVAL and publishes order.due_soon for
// open orders due between now+REMINDER_LEAD and now+REMINDER_LEAD+REMINDER_INTERVAL.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(notifyHandler, 15*time.Minute, 24*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the next tick tries again. Windows are not
// persisted, so a pass skipped while the service is down is not replayed.
package jobs
