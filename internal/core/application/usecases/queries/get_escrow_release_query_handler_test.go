package queries_test

import (
	"context"
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/pkg/clock"
	"escrowship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
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

func deliveredJewelry(t *testing.T, deliveredAt time.Time) *shipment.Shipment {
	t.Helper()

	declared, err := kernel.NewMoney(125000)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), category.Jewelry, declared, t0)
	require.NoError(t, err)

	policy, err := category.PolicyFor(category.Jewelry)
	require.NoError(t, err)

	require.NoError(t, s.AddShippingInfo(
		policy, carrier.FedEx, "794685241326", declared, true, t0.Add(time.Hour)))
	require.NoError(t, s.MarkDelivered(policy, deliveredAt))
	return s
}

func TestGetEscrowReleaseQueryHandler_Handle_ExpiredWindowReleases(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	// The jewelry dispute window is 72 hours, so four days after delivery
	// it has expired.
	h := queries.NewGetEscrowReleaseQueryHandler(repo, clock.NewFixed(deliveredAt.Add(4*24*time.Hour)))
	query, err := queries.NewGetEscrowReleaseQuery(aggregate.ID())
	require.NoError(t, err)

	result, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, aggregate.ID().IsEqual(result.ShipmentID))
	assert.True(t, aggregate.EscrowID().IsEqual(result.EscrowID))
	assert.True(t, result.Decision.CanRelease)
	assert.Equal(t, "window expired without dispute", result.Decision.Reason)
	assert.True(t, result.Decision.Conditions.TrackingDelivered)
	assert.True(t, result.Decision.Conditions.DisputeWindowExpired)
	assert.False(t, result.Decision.Conditions.BuyerConfirmed)
	repo.AssertExpectations(t)
}

func TestGetEscrowReleaseQueryHandler_Handle_WithinWindowHolds(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetEscrowReleaseQueryHandler(repo, clock.NewFixed(deliveredAt.Add(time.Hour)))
	query, err := queries.NewGetEscrowReleaseQuery(aggregate.ID())
	require.NoError(t, err)

	result, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.False(t, result.Decision.CanRelease)
	assert.Equal(t, "within dispute window", result.Decision.Reason)
}

func TestGetEscrowReleaseQueryHandler_Handle_BuyerConfirmedReleases(t *testing.T) {
	ctx := t.Context()
	deliveredAt := t0.Add(48 * time.Hour)
	aggregate := deliveredJewelry(t, deliveredAt)
	require.NoError(t, aggregate.ConfirmReceipt(deliveredAt.Add(2*time.Hour)))

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetEscrowReleaseQueryHandler(repo, clock.NewFixed(deliveredAt.Add(3*time.Hour)))
	query, err := queries.NewGetEscrowReleaseQuery(aggregate.ID())
	require.NoError(t, err)

	result, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, result.Decision.CanRelease)
	assert.Equal(t, "buyer confirmed", result.Decision.Reason)
	assert.True(t, result.Decision.Conditions.BuyerConfirmed)
}

func TestGetEscrowReleaseQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()

	repo := new(MockShipmentRepository)
	repo.On("Get", mock.Anything, shipmentID).
		Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID)).Once()

	h := queries.NewGetEscrowReleaseQueryHandler(repo, clock.NewFixed(t0))
	query, err := queries.NewGetEscrowReleaseQuery(shipmentID)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetEscrowReleaseQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetEscrowReleaseQueryHandler(new(MockShipmentRepository), clock.NewFixed(t0))

	_, err := h.Handle(t.Context(), queries.GetEscrowReleaseQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetEscrowReleaseQueryIsNotConstructed)
}
