package commands_test

import (
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddShippingInfoCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddShippingInfoCommand(
			kernel.NewUUID(), carrier.FedEx, "794685241326", declaredValue(t), true)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("missing_tracking_number", func(t *testing.T) {
		_, err := commands.NewAddShippingInfoCommand(
			kernel.NewUUID(), carrier.FedEx, "", declaredValue(t), true)
		require.Error(t, err)
	})

	t.Run("unknown_carrier", func(t *testing.T) {
		_, err := commands.NewAddShippingInfoCommand(
			kernel.NewUUID(), carrier.Unknown, "794685241326", declaredValue(t), true)
		require.Error(t, err)
	})
}

func TestAddShippingInfoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingJewelry(t)
	cmd, _ := commands.NewAddShippingInfoCommand(
		aggregate.ID(), carrier.FedEx, "794685241326", declaredValue(t), true)

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
			return !d.CanRelease && d.Reason == "awaiting delivery"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShippingInfoCommandHandler(factory, clock.NewFixed(t0.Add(time.Hour)), gateway)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestAddShippingInfoCommandHandler_Handle_PolicyViolationRollsBack(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingJewelry(t)
	// USPS is not an approved jewelry carrier.
	cmd, _ := commands.NewAddShippingInfoCommand(
		aggregate.ID(), carrier.USPS, "9400100000000000000000", declaredValue(t), true)

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
	h := commands.NewAddShippingInfoCommandHandler(factory, clock.NewFixed(t0), gateway)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	var notApproved *shipment.CarrierNotApprovedError
	require.ErrorAs(t, err, &notApproved)
	assert.Equal(t, shipment.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	gateway.AssertNotCalled(t, "NotifyReleaseDecision", mock.Anything, mock.Anything, mock.Anything)
}
