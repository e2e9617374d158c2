package jobs

import (
	"context"
	"log/slog"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// DisputeWindowJob manages the scheduled expiry of dispute windows.
// Runs every minute to auto-confirm delivered shipments whose window
// passed without a dispute.
type DisputeWindowJob struct {
	dueWindows queries.GetDueDisputeWindowsQueryHandler
	expiry     commands.ProcessDisputeWindowExpiryCommandHandler
	clock      clock.Clock
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDisputeWindowJob creates a new job for sweeping expired dispute windows.
// Uses the due-windows query as its work list and the expiry command to
// process each hit.
func NewDisputeWindowJob(
	dueWindows queries.GetDueDisputeWindowsQueryHandler,
	expiry commands.ProcessDisputeWindowExpiryCommandHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *DisputeWindowJob {
	return &DisputeWindowJob{
		dueWindows: dueWindows,
		expiry:     expiry,
		clock:      clk,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dispute_window_job"),
	}
}

// Start begins the dispute window job to run every minute.
func (j *DisputeWindowJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		due, err := j.dueWindows.Handle(ctx, queries.NewGetDueDisputeWindowsQuery(j.clock.Now()))
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispute window sweep query failed", "error", err)
			return
		}

		for _, hit := range due {
			cmd, err := commands.NewProcessDisputeWindowExpiryCommand(hit.ID)
			if err != nil {
				j.logger.ErrorContext(ctx, "Dispute window sweep command invalid",
					"shipmentId", hit.ID.String(), "error", err)
				continue
			}

			// One shipment failing must not starve the rest of the sweep.
			if err := j.expiry.Handle(ctx, cmd); err != nil {
				j.logger.ErrorContext(ctx, "Dispute window expiry failed",
					"shipmentId", hit.ID.String(), "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispute window job started (running every minute)")
	return nil
}

// Stop stops the dispute window job.
func (j *DisputeWindowJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispute window job stopped")
}
