package shipmentrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"escrowship/internal/adapters/out/postgres/shipmentrepo"
	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"
	"escrowship/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify database
// persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createPendingShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_SecondShipmentForSameEscrow_Rejected() {
	ctx := context.Background()
	escrowID := kernel.NewUUID()

	first := suite.createPendingShipmentForEscrow(escrowID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// The unique index on escrow_id enforces the one-shipment-per-escrow rule.
	second := suite.createPendingShipmentForEscrow(escrowID)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "duplicate")

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_ReturnsShipment() {
	ctx := context.Background()

	original := suite.createPendingShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.EscrowID().IsEqual(retrieved.EscrowID()))
	suite.Equal(category.Jewelry, retrieved.Category())
	suite.Equal(shipment.Pending, retrieved.Status())
	suite.Equal(int64(125000), retrieved.DeclaredValue().Cents())
	suite.Empty(retrieved.TrackingNumber())
	suite.Nil(retrieved.ShippedAt())
	suite.Empty(retrieved.ProofDocuments())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByEscrowID_ExistingShipment_ReturnsShipment() {
	ctx := context.Background()
	escrowID := kernel.NewUUID()

	original := suite.createPendingShipmentForEscrow(escrowID)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByEscrowID(ctx, escrowID)
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(escrowID.IsEqual(retrieved.EscrowID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByEscrowID_NoShipmentYet_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEscrowID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitionsPersist() {
	ctx := context.Background()

	testShipment := suite.createPendingShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	policy, err := category.PolicyFor(category.Jewelry)
	suite.Require().NoError(err)

	declared := testShipment.DeclaredValue()

	// Dispatch
	shippedAt := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	err = testShipment.AddShippingInfo(policy, carrier.FedEx, "794685241326", declared, true, shippedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, retrieved.Status())
	suite.Equal(carrier.FedEx, retrieved.Carrier())
	suite.Equal("794685241326", retrieved.TrackingNumber())
	suite.Equal(int64(125000), retrieved.InsuredValue().Cents())
	suite.True(retrieved.InsuranceConfirmed())
	suite.Require().NotNil(retrieved.ShippedAt())
	suite.True(retrieved.ShippedAt().Equal(shippedAt))

	// Delivery opens the dispute window
	deliveredAt := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(testShipment.MarkDelivered(policy, deliveredAt))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err = suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.DeliveredAt())
	suite.True(retrieved.DeliveredAt().Equal(deliveredAt))
	suite.Require().NotNil(retrieved.DisputeWindowEnds())
	suite.True(retrieved.DisputeWindowEnds().Equal(deliveredAt.Add(72 * time.Hour)))

	// Buyer confirmation closes the lifecycle
	confirmedAt := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC)
	suite.Require().NoError(testShipment.ConfirmReceipt(confirmedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err = suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Confirmed, retrieved.Status())
	suite.Require().NotNil(retrieved.ConfirmedAt())
	suite.True(retrieved.ConfirmedAt().Equal(confirmedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ProofDocumentsSurviveRoundTrip() {
	ctx := context.Background()

	testShipment := suite.createPendingShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	testShipment.AddProofDocument(shipment.ProofDocument{
		Kind:    "dispatch_photo",
		URI:     "s3://evidence/dispatch-1.jpg",
		AddedAt: time.Date(2025, time.March, 10, 13, 5, 0, 0, time.UTC),
	})
	testShipment.AddProofDocument(shipment.ProofDocument{
		Kind:    "insurance_certificate",
		URI:     "s3://evidence/policy-1.pdf",
		AddedAt: time.Date(2025, time.March, 10, 13, 10, 0, 0, time.UTC),
	})
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	proofs := retrieved.ProofDocuments()
	suite.Require().Len(proofs, 2)
	suite.Equal("dispatch_photo", proofs[0].Kind)
	suite.Equal("s3://evidence/dispatch-1.jpg", proofs[0].URI)
	suite.Equal("insurance_certificate", proofs[1].Kind)
	suite.True(proofs[0].AddedAt.Before(proofs[1].AddedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_CancelledShipmentKeepsReason() {
	ctx := context.Background()

	testShipment := suite.createPendingShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.Cancel("seller unable to fulfil"))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Cancelled, retrieved.Status())
	suite.Equal("seller unable to fulfil", retrieved.CancelReason())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createPendingShipment()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// TestShipmentRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *ShipmentRepositoryIntegrationTestSuite) TestShipmentRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with zero UUID",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.UUID{})
				return err
			},
			expected: "required",
		},
		{
			name: "get by escrow with zero UUID",
			operation: func() error {
				_, err := suite.repository.GetByEscrowID(context.Background(), kernel.UUID{})
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent shipment",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent shipment",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.createPendingShipment())
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestShipmentRepository_Concurrency verifies repository behavior under concurrent reads.
func (suite *ShipmentRepositoryIntegrationTestSuite) TestShipmentRepository_Concurrency() {
	ctx := context.Background()

	testShipment := suite.createPendingShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	results := make(chan *shipment.Shipment, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrieved, readErr := suite.repository.Get(ctx, testShipment.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrieved
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.True(testShipment.ID().IsEqual(result.ID()))
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createPendingShipment creates a basic jewelry shipment awaiting dispatch.
func (suite *ShipmentRepositoryIntegrationTestSuite) createPendingShipment() *shipment.Shipment {
	return suite.createPendingShipmentForEscrow(kernel.NewUUID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createPendingShipmentForEscrow(
	escrowID kernel.UUID,
) *shipment.Shipment {
	declared, err := kernel.NewMoney(125000)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), escrowID, category.Jewelry, declared,
		time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return testShipment
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
