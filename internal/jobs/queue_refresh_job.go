package jobs

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// queueRefreshSchedule runs the refresh every 30 seconds, comfortably
// inside the cache TTL so terminals rarely hit a cold entry.
const queueRefreshSchedule = "*/30 * * * * *"

// QueueRefreshJob keeps the work center queue cache warm. Step commands
// invalidate the cache on every mutation; this job fills the gaps so a
// terminal poll after a quiet stretch still gets a cache hit.
type QueueRefreshJob struct {
	handler queries.GetWorkCenterQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueRefreshJob creates a job refreshing every active work center's
// cached queue.
func NewQueueRefreshJob(handler queries.GetWorkCenterQueueQueryHandler, logger *slog.Logger) *QueueRefreshJob {
	return &QueueRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *QueueRefreshJob) Start() error {
	_, err := j.cron.AddFunc(queueRefreshSchedule, func() {
		ctx := context.Background()

		workCenterIDs, err := j.handler.ActiveWorkCenterIDs(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue refresh job failed to list work centers", "error", err)
			return
		}

		for _, workCenterID := range workCenterIDs {
			if err := j.handler.Refresh(ctx, workCenterID); err != nil {
				j.logger.ErrorContext(ctx, "Queue refresh failed",
					"workCenterId", workCenterID.String(), "error", err)
			}
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue refresh job started")
	return nil
}

// Stop stops the refresh job.
func (j *QueueRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue refresh job stopped")
}
