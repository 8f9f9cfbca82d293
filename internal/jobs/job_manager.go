package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// It owns their lifecycle so main starts and stops them as one unit.
type JobManager struct {
	dueReminderJob *DueReminderJob
}

// NewJobManager creates the manager and its jobs. Nothing runs until StartAll.
//
// Example:
//
//	jm := jobs.NewJobManager(handler, time.Minute, 24*time.Hour, logger)
//	if err := jm.StartAll(); err != nil {
//	    return err
//	}
//	defer jm.StopAll()
func NewJobManager(
	notifyDueOrdersHandler NotifyDueOrdersHandler,
	reminderInterval, reminderLead time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dueReminderJob: NewDueReminderJob(notifyDueOrdersHandler, reminderInterval, reminderLead, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns the first start error, wrapped with the job name.
func (jm *JobManager) StartAll() error {
	if err := jm.dueReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start due reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
// It blocks until in-flight runs complete.
func (jm *JobManager) StopAll() {
	jm.dueReminderJob.Stop()
}
