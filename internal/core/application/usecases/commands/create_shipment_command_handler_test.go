package commands_test

import (
	"errors"
	"testing"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateShipmentCommand(
			kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, declaredValue(t))
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(
			kernel.UUID{}, kernel.NewUUID(), category.Jewelry, declaredValue(t))
		require.Error(t, err)

		_, err = commands.NewCreateShipmentCommand(
			kernel.NewUUID(), kernel.NewUUID(), category.Unknown, declaredValue(t))
		require.Error(t, err)

		_, err = commands.NewCreateShipmentCommand(
			kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, kernel.Money{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_Validate", func(t *testing.T) {
		var cmd commands.CreateShipmentCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
	})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	escrowID := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), escrowID, category.Jewelry, declaredValue(t))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	gateway := new(MockEscrowGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		gateway.On("NotifyReleaseDecision", ctx, escrowID, mock.MatchedBy(func(d services.ReleaseDecision) bool {
			return !d.CanRelease && d.Reason == "awaiting delivery"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, clock.NewFixed(t0), gateway)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, clock.NewFixed(t0), new(MockEscrowGateway))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, declaredValue(t))

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateShipmentCommandHandler(factory, clock.NewFixed(t0), new(MockEscrowGateway))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, declaredValue(t))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockEscrowGateway)
	h := commands.NewCreateShipmentCommandHandler(factory, clock.NewFixed(t0), gateway)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	gateway.AssertNotCalled(t, "NotifyReleaseDecision", mock.Anything, mock.Anything, mock.Anything)
}
