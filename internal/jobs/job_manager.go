package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderMonitorJob *OrderMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler and clock as dependencies to wire up job execution.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderMonitorJob: NewOrderMonitorJob(getActiveOrdersHandler, clk, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start order monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderMonitorJob.Stop()
}
