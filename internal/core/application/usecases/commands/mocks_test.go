package commands_test

import (
	"context"
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/core/domain/services"
	"escrowship/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetByEscrowID(ctx context.Context, escrowID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, escrowID)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockEscrowGateway struct{ mock.Mock }

func (m *MockEscrowGateway) NotifyReleaseDecision(
	ctx context.Context,
	escrowID kernel.UUID,
	decision services.ReleaseDecision,
) error {
	args := m.Called(ctx, escrowID, decision)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func declaredValue(t *testing.T) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(125000)
	require.NoError(t, err)
	return m
}

func jewelryPolicy(t *testing.T) category.Policy {
	t.Helper()
	policy, err := category.PolicyFor(category.Jewelry)
	require.NoError(t, err)
	return policy
}

func pendingJewelry(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, declaredValue(t), t0)
	require.NoError(t, err)
	return s
}

func shippedJewelry(t *testing.T) *shipment.Shipment {
	t.Helper()
	s := pendingJewelry(t)
	err := s.AddShippingInfo(
		jewelryPolicy(t), carrier.FedEx, "794685241326", declaredValue(t), true, t0.Add(time.Hour))
	require.NoError(t, err)
	return s
}

func deliveredJewelry(t *testing.T, deliveredAt time.Time) *shipment.Shipment {
	t.Helper()
	s := shippedJewelry(t)
	require.NoError(t, s.MarkDelivered(jewelryPolicy(t), deliveredAt))
	return s
}
