package queries_test

import (
	"errors"
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/pkg/clock"
	"escrowship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func timelineKeys(events []services.TimelineEvent) []string {
	keys := make([]string, 0, len(events))
	for _, event := range events {
		keys = append(keys, event.Key)
	}
	return keys
}

func TestGetTimelineQueryHandler_Handle_ShipmentOverridesHints(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetTimelineQueryHandler(repo, clock.NewFixed(deliveredAt.Add(time.Hour)))

	// The hints deliberately disagree with the record; the record wins.
	query, err := queries.NewGetTimelineQuery(
		aggregate.ID(), t0.Add(-30*24*time.Hour), category.Electronics)
	require.NoError(t, err)

	events, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, []string{
		services.MilestoneEscrowFunded,
		services.MilestoneAwaitingDispatch,
		services.MilestoneInTransit,
		services.MilestoneDelivered,
		services.MilestoneDisputeWindow,
		services.MilestoneFundsReleased,
	}, timelineKeys(events))

	funded := events[0]
	require.NotNil(t, funded.OccurredAt)
	assert.True(t, funded.OccurredAt.Equal(aggregate.CreatedAt()))
	assert.True(t, funded.Completed)

	window := events[4]
	assert.True(t, window.Current)
	assert.False(t, window.Completed)
	repo.AssertExpectations(t)
}

func TestGetTimelineQueryHandler_Handle_NoShipmentYet_ShowsPendingDispatch(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	fundedAt := t0

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, shipmentID).
		Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID)).Once()

	h := queries.NewGetTimelineQueryHandler(repo, clock.NewFixed(fundedAt.Add(24*time.Hour)))
	query, err := queries.NewGetTimelineQuery(shipmentID, fundedAt, category.Jewelry)
	require.NoError(t, err)

	events, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, events, 6)
	assert.True(t, events[0].Completed)
	assert.True(t, events[1].Current)
	assert.False(t, events[1].ActionRequired)
	for _, event := range events[2:] {
		assert.False(t, event.Completed)
		assert.False(t, event.Current)
	}
}

func TestGetTimelineQueryHandler_Handle_NoShipmentPastSla_FlagsAction(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, shipmentID).
		Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID)).Once()

	// Well past any category's shipping SLA.
	h := queries.NewGetTimelineQueryHandler(repo, clock.NewFixed(t0.Add(30*24*time.Hour)))
	query, err := queries.NewGetTimelineQuery(shipmentID, t0, category.Jewelry)
	require.NoError(t, err)

	events, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, events, 6)
	assert.Equal(t, services.MilestoneAwaitingDispatch, events[1].Key)
	assert.True(t, events[1].ActionRequired)
}

func TestGetTimelineQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	dbErr := errors.New("connection reset")

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, shipmentID).Return(nil, dbErr).Once()

	h := queries.NewGetTimelineQueryHandler(repo, clock.NewFixed(t0))
	query, err := queries.NewGetTimelineQuery(shipmentID, t0, category.Jewelry)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetTimelineQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetTimelineQueryHandler(new(MockShipmentRepository), clock.NewFixed(t0))

	_, err := h.Handle(t.Context(), queries.GetTimelineQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTimelineQueryIsNotConstructed)
}
