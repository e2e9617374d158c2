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

func TestReportIssueCommandHandler_Handle_FreezesRelease(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)
	cmd, _ := commands.NewReportIssueCommand(aggregate.ID())

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
			return !d.CanRelease && d.Reason == "dispute in progress"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportIssueCommandHandler(factory, clock.NewFixed(deliveredAt.Add(5*time.Hour)), gateway)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Disputed, aggregate.Status())
	gateway.AssertExpectations(t)
}

func TestReportIssueCommandHandler_Handle_PendingCannotDispute(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingJewelry(t)
	cmd, _ := commands.NewReportIssueCommand(aggregate.ID())

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

	h := commands.NewReportIssueCommandHandler(factory, clock.NewFixed(t0), new(MockEscrowGateway))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
