package jobs

import (
	"fmt"
	"log/slog"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/ports"
	"escrowship/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	disputeWindowJob *DisputeWindowJob
	trackingPollJob  *TrackingPollJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query and command handlers as dependencies to wire up the job
// execution.
func NewJobManager(
	dueWindows queries.GetDueDisputeWindowsQueryHandler,
	expiry commands.ProcessDisputeWindowExpiryCommandHandler,
	inTransit queries.GetInTransitShipmentsQueryHandler,
	update commands.UpdateTrackingStatusCommandHandler,
	adapter ports.TrackingAdapter,
	clk clock.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		disputeWindowJob: NewDisputeWindowJob(dueWindows, expiry, clk, logger),
		trackingPollJob:  NewTrackingPollJob(inTransit, update, adapter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.disputeWindowJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispute window job: %w", err)
	}

	if err := jm.trackingPollJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.disputeWindowJob.Stop()
		return fmt.Errorf("failed to start tracking poll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingPollJob.Stop()
	jm.disputeWindowJob.Stop()
}
