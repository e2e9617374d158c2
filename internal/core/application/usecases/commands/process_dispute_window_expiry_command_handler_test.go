package commands_test

import (
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/pkg/clock"
	"escrowship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessDisputeWindowExpiryCommandHandler_Handle_ExpiredWindow(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)
	cmd, _ := commands.NewProcessDisputeWindowExpiryCommand(aggregate.ID())

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	gateway := new(MockEscrowGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		gateway.On("NotifyReleaseDecision", ctx, aggregate.EscrowID(), mock.MatchedBy(func(d services.ReleaseDecision) bool {
			return d.CanRelease && d.Reason == "buyer confirmed"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessDisputeWindowExpiryCommandHandler(
		factory, clock.NewFixed(deliveredAt.Add(73*time.Hour)), gateway)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Confirmed, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestProcessDisputeWindowExpiryCommandHandler_Handle_OpenWindowWritesNothing(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)
	cmd, _ := commands.NewProcessDisputeWindowExpiryCommand(aggregate.ID())

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockEscrowGateway)
	h := commands.NewProcessDisputeWindowExpiryCommandHandler(
		factory, clock.NewFixed(deliveredAt.Add(10*time.Hour)), gateway)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	gateway.AssertNotCalled(t, "NotifyReleaseDecision", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessDisputeWindowExpiryCommandHandler_Handle_DisputedStaysDisputed(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)
	require.NoError(t, aggregate.ReportIssue())
	cmd, _ := commands.NewProcessDisputeWindowExpiryCommand(aggregate.ID())

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessDisputeWindowExpiryCommandHandler(
		factory, clock.NewFixed(deliveredAt.Add(80*time.Hour)), new(MockEscrowGateway))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Disputed, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcessDisputeWindowExpiryCommandHandler_Handle_PendingIsACallerBug(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingJewelry(t)
	cmd, _ := commands.NewProcessDisputeWindowExpiryCommand(aggregate.ID())

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessDisputeWindowExpiryCommandHandler(
		factory, clock.NewFixed(t0.Add(100*time.Hour)), new(MockEscrowGateway))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}
