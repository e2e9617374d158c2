package jobs

import (
	"context"
	"log/slog"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrackingPollJob manages the scheduled polling of carrier tracking.
// Runs every five minutes to ask carriers about in-transit parcels and
// record deliveries.
type TrackingPollJob struct {
	inTransit queries.GetInTransitShipmentsQueryHandler
	update    commands.UpdateTrackingStatusCommandHandler
	adapter   ports.TrackingAdapter
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTrackingPollJob creates a new job for polling carrier tracking.
// Uses the in-transit query as its work list, the tracking adapter for
// carrier answers, and the tracking-status command to record deliveries.
func NewTrackingPollJob(
	inTransit queries.GetInTransitShipmentsQueryHandler,
	update commands.UpdateTrackingStatusCommandHandler,
	adapter ports.TrackingAdapter,
	logger *slog.Logger,
) *TrackingPollJob {
	return &TrackingPollJob{
		inTransit: inTransit,
		update:    update,
		adapter:   adapter,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "tracking_poll_job"),
	}
}

// Start begins the tracking poll job to run every five minutes.
func (j *TrackingPollJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		shipments, err := j.inTransit.Handle(ctx, queries.NewGetInTransitShipmentsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking poll query failed", "error", err)
			return
		}

		for _, s := range shipments {
			// Carrier answers are soft signals: an error or an absent
			// delivery means "no news", never a state change.
			status, err := j.adapter.CheckDeliveryStatus(ctx, s.Carrier, s.TrackingNumber)
			if err != nil {
				j.logger.WarnContext(ctx, "Carrier delivery check failed",
					"shipmentId", s.ID.String(), "carrier", s.Carrier.String(), "error", err)
				continue
			}
			if !status.Delivered {
				continue
			}

			cmd, err := commands.NewUpdateTrackingStatusCommand(
				s.ID, true, status.DeliveredAt, status.SignedBy)
			if err != nil {
				j.logger.ErrorContext(ctx, "Tracking update command invalid",
					"shipmentId", s.ID.String(), "error", err)
				continue
			}

			if err := j.update.Handle(ctx, cmd); err != nil {
				j.logger.ErrorContext(ctx, "Tracking update failed",
					"shipmentId", s.ID.String(), "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking poll job started (running every five minutes)")
	return nil
}

// Stop stops the tracking poll job.
func (j *TrackingPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking poll job stopped")
}
