package jobs

import (
	"fmt"
	"log/slog"

	"shopfloor/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	queueRefreshJob *QueueRefreshJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	queueHandler queries.GetWorkCenterQueueQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueRefreshJob: NewQueueRefreshJob(queueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.queueRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueRefreshJob.Stop()
}
