package jobs

import (
	"fmt"
	"log/slog"

	"booking/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingRebroadcastJob *PendingRebroadcastJob
}

// NewJobManager creates a job manager wired to the rebroadcast handler.
func NewJobManager(
	rebroadcastHandler commands.RebroadcastPendingJobsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingRebroadcastJob: NewPendingRebroadcastJob(rebroadcastHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingRebroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending rebroadcast job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingRebroadcastJob.Stop()
}
