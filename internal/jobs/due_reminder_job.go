package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotifyDueOrdersHandler announces the orders due inside a window.
// It returns how many reminders were published.
type NotifyDueOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyDueOrdersCommand) (int, error)
}

// DueReminderJob announces orders coming due. Every interval it covers the
// window [now+lead, now+lead+interval), so consecutive runs tile the timeline.
type DueReminderJob struct {
	handler  NotifyDueOrdersHandler
	cron     *cron.Cron
	interval time.Duration
	lead     time.Duration
	logger   *slog.Logger
}

// NewDueReminderJob creates a stopped job.
//
// Parameters:
//   - handler: use case run on every tick
//   - interval: tick period and window width, must be positive
//   - lead: how far ahead of now the window starts
func NewDueReminderJob(
	handler NotifyDueOrdersHandler,
	interval, lead time.Duration,
	logger *slog.Logger,
) *DueReminderJob {
	return &DueReminderJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		interval: interval,
		lead:     lead,
		logger:   logger.With("component", "due_reminder_job"),
	}
}

// Start schedules Run every interval and starts the scheduler.
// Returns the cron error for an interval it cannot parse.
func (j *DueReminderJob) Start() error {
	if _, err := j.cron.AddFunc("@every "+j.interval.String(), j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due reminder job started",
		"interval", j.interval.String(), "lead", j.lead.String())
	return nil
}

// Run executes one reminder pass.
// Failures are logged; the next tick tries its own window.
func (j *DueReminderJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewNotifyDueOrdersCommand(time.Now().UTC().Add(j.lead), j.interval)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due reminder job misconfigured", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due reminder job failed", "sent", sent, "error", err)
		return
	}
	if sent > 0 {
		j.logger.InfoContext(ctx, "Due reminders sent", "sent", sent,
			"from", cmd.From().Format(time.RFC3339), "to", cmd.To().Format(time.RFC3339))
	}
}

// Stop halts the scheduler.
// It waits for a running pass to finish.
func (j *DueReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Due reminder job stopped")
}
