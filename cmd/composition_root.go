package cmd

import (
	"log/slog"

	"escrowship/internal/adapters/out/escrow"
	"escrowship/internal/adapters/out/postgres"
	"escrowship/internal/adapters/out/tracking"
	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/ports"
	"escrowship/internal/jobs"
	"escrowship/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	clock           clock.Clock
	escrowGateway   ports.EscrowGateway
	trackingAdapter ports.TrackingAdapter
	logger          *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:           clock.NewSystem(),
		escrowGateway:   escrow.NewLogEscrowGateway(logger),
		trackingAdapter: tracking.NewManualTrackingAdapter(logger),
		logger:          logger,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

// shipmentRepository returns a repository bound to the main connection with
// immediate execution, for reads outside a unit of work.
func (c *CompositionRoot) shipmentRepository() ports.ShipmentRepository {
	return c.uowFactory.Create().ShipmentRepository()
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateAddShippingInfoCommandHandler() commands.AddShippingInfoCommandHandler {
	return commands.NewAddShippingInfoCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateUpdateTrackingStatusCommandHandler() commands.UpdateTrackingStatusCommandHandler {
	return commands.NewUpdateTrackingStatusCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	return commands.NewConfirmReceiptCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateProcessDisputeWindowExpiryCommandHandler() commands.ProcessDisputeWindowExpiryCommandHandler {
	return commands.NewProcessDisputeWindowExpiryCommandHandler(c.shipmentUoWFactory(), c.clock, c.escrowGateway)
}

func (c *CompositionRoot) CreateAddProofDocumentCommandHandler() commands.AddProofDocumentCommandHandler {
	return commands.NewAddProofDocumentCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByEscrowQueryHandler() queries.GetShipmentByEscrowQueryHandler {
	return queries.NewGetShipmentByEscrowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDueDisputeWindowsQueryHandler() queries.GetDueDisputeWindowsQueryHandler {
	return queries.NewGetDueDisputeWindowsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInTransitShipmentsQueryHandler() queries.GetInTransitShipmentsQueryHandler {
	return queries.NewGetInTransitShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.shipmentRepository(), c.clock)
}

func (c *CompositionRoot) CreateGetEscrowReleaseQueryHandler() queries.GetEscrowReleaseQueryHandler {
	return queries.NewGetEscrowReleaseQueryHandler(c.shipmentRepository(), c.clock)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDueDisputeWindowsQueryHandler(),
		c.CreateProcessDisputeWindowExpiryCommandHandler(),
		c.CreateGetInTransitShipmentsQueryHandler(),
		c.CreateUpdateTrackingStatusCommandHandler(),
		c.trackingAdapter,
		c.clock,
		c.logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
