package jobs

import (
	"context"
	"log/slog"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// rebroadcastSchedule re-announces the pending pool every five minutes.
// Frequent enough that unclaimed bookings stay visible, rare enough not to
// spam translator devices.
const rebroadcastSchedule = "*/5 * * * *"

// PendingRebroadcastJob periodically re-notifies eligible translators of jobs
// still waiting for acceptance.
type PendingRebroadcastJob struct {
	handler commands.RebroadcastPendingJobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingRebroadcastJob creates the scheduled rebroadcast job.
func NewPendingRebroadcastJob(
	handler commands.RebroadcastPendingJobsCommandHandler,
	logger *slog.Logger,
) *PendingRebroadcastJob {
	return &PendingRebroadcastJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_rebroadcast_job"),
	}
}

// Start begins the rebroadcast schedule.
func (j *PendingRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc(rebroadcastSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRebroadcastPendingJobsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Pending rebroadcast command invalid", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending rebroadcast job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job started (running every five minutes)")
	return nil
}

// Stop stops the rebroadcast schedule.
func (j *PendingRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job stopped")
}
