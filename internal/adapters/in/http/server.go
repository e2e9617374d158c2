package http

import (
	"errors"
	"net/http"

	"escrowship/internal/core/application/usecases/commands"
	"escrowship/internal/core/application/usecases/queries"
	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/generated/servers"
	"escrowship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler   commands.CreateShipmentCommandHandler
	addShippingInfoHandler  commands.AddShippingInfoCommandHandler
	updateTrackingHandler   commands.UpdateTrackingStatusCommandHandler
	confirmReceiptHandler   commands.ConfirmReceiptCommandHandler
	reportIssueHandler      commands.ReportIssueCommandHandler
	cancelShipmentHandler   commands.CancelShipmentCommandHandler
	addProofDocumentHandler commands.AddProofDocumentCommandHandler

	// Query handlers
	getShipmentHandler         queries.GetShipmentQueryHandler
	getShipmentByEscrowHandler queries.GetShipmentByEscrowQueryHandler
	getTimelineHandler         queries.GetTimelineQueryHandler
	getEscrowReleaseHandler    queries.GetEscrowReleaseQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	addShippingInfoHandler commands.AddShippingInfoCommandHandler,
	updateTrackingHandler commands.UpdateTrackingStatusCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	addProofDocumentHandler commands.AddProofDocumentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getShipmentByEscrowHandler queries.GetShipmentByEscrowQueryHandler,
	getTimelineHandler queries.GetTimelineQueryHandler,
	getEscrowReleaseHandler queries.GetEscrowReleaseQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:      createShipmentHandler,
		addShippingInfoHandler:     addShippingInfoHandler,
		updateTrackingHandler:      updateTrackingHandler,
		confirmReceiptHandler:      confirmReceiptHandler,
		reportIssueHandler:         reportIssueHandler,
		cancelShipmentHandler:      cancelShipmentHandler,
		addProofDocumentHandler:    addProofDocumentHandler,
		getShipmentHandler:         getShipmentHandler,
		getShipmentByEscrowHandler: getShipmentByEscrowHandler,
		getTimelineHandler:         getTimelineHandler,
		getEscrowReleaseHandler:    getEscrowReleaseHandler,
	}
}

// CreateShipment handles POST /api/v1/shipments - registers a shipment for a funded escrow.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body servers.NewShipment
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	escrowID, err := kernel.UUIDFromBytes(body.EscrowId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cat, err := category.FromString(body.Category)
	if err != nil {
		return writeError(ctx, err)
	}

	declaredValue, err := kernel.NewMoney(body.DeclaredValueCents)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, escrowID, cat, declaredValue)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedShipment{Id: shipmentID.Bytes()})
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(model))
}

// GetShipmentByEscrow handles GET /api/v1/shipments/escrow/{escrowId}.
func (s *Server) GetShipmentByEscrow(ctx echo.Context, escrowId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(escrowId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentByEscrowQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getShipmentByEscrowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(model))
}

// AddShippingInfo handles POST /api/v1/shipments/{shipmentId}/shipping-info.
func (s *Server) AddShippingInfo(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var body servers.ShippingInfo
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	shipCarrier, err := carrier.FromString(body.Carrier)
	if err != nil {
		return writeError(ctx, err)
	}

	// Zero cents means no insurance was taken out; categories whose policy
	// waives insurance accept that.
	var insuredValue kernel.Money
	if body.InsuredValueCents > 0 {
		if insuredValue, err = kernel.NewMoney(body.InsuredValueCents); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewAddShippingInfoCommand(
		id, shipCarrier, body.TrackingNumber, insuredValue, body.InsuranceConfirmed)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addShippingInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/shipments/{shipmentId}/delivered.
func (s *Server) MarkDelivered(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var body servers.DeliveryNotice
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	signedBy := ""
	if body.SignedBy != nil {
		signedBy = *body.SignedBy
	}

	cmd, err := commands.NewUpdateTrackingStatusCommand(id, body.Delivered, body.DeliveredAt, signedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmReceipt handles POST /api/v1/shipments/{shipmentId}/confirm.
func (s *Server) ConfirmReceipt(ctx echo.Context, shipmentId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmReceiptCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenDispute handles POST /api/v1/shipments/{shipmentId}/dispute.
func (s *Server) OpenDispute(ctx echo.Context, shipmentId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reportIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/{shipmentId}/cancel.
func (s *Server) CancelShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var body servers.CancelRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(id, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddProofDocument handles POST /api/v1/shipments/{shipmentId}/proofs.
func (s *Server) AddProofDocument(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var body servers.NewProofDocument
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddProofDocumentCommand(id, body.Kind, body.Uri)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addProofDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTimeline handles GET /api/v1/shipments/{shipmentId}/timeline.
func (s *Server) GetTimeline(
	ctx echo.Context,
	shipmentId openapi_types.UUID,
	params servers.GetTimelineParams,
) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := s.buildTimelineQuery(ctx, id, params)
	if err != nil {
		return writeError(ctx, err)
	}

	events, err := s.getTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.TimelineEvent, len(events))
	for i, event := range events {
		response[i] = servers.TimelineEvent{
			Key:            event.Key,
			Label:          event.Label,
			OccurredAt:     event.OccurredAt,
			Completed:      event.Completed,
			Current:        event.Current,
			ActionRequired: event.ActionRequired,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// buildTimelineQuery assembles a timeline query from the request. The
// escrow funding time and category hints are only needed before the seller
// creates the shipment record; when they are absent the persisted shipment
// supplies them, and a missing shipment is then a 404.
func (s *Server) buildTimelineQuery(
	ctx echo.Context,
	id kernel.UUID,
	params servers.GetTimelineParams,
) (queries.GetTimelineQuery, error) {
	if params.Category != nil && params.EscrowCreatedAt != nil {
		cat, err := category.FromString(*params.Category)
		if err != nil {
			return queries.GetTimelineQuery{}, err
		}
		return queries.NewGetTimelineQuery(id, *params.EscrowCreatedAt, cat)
	}

	lookup, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return queries.GetTimelineQuery{}, err
	}

	model, err := s.getShipmentHandler.Handle(ctx.Request().Context(), lookup)
	if err != nil {
		return queries.GetTimelineQuery{}, err
	}

	cat, err := category.FromString(model.Category)
	if err != nil {
		return queries.GetTimelineQuery{}, err
	}

	return queries.NewGetTimelineQuery(id, model.CreatedAt, cat)
}

// GetEscrowRelease handles GET /api/v1/shipments/{shipmentId}/release.
func (s *Server) GetEscrowRelease(ctx echo.Context, shipmentId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetEscrowReleaseQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getEscrowReleaseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ReleaseDecision{
		ShipmentId: result.ShipmentID.Bytes(),
		EscrowId:   result.EscrowID.Bytes(),
		CanRelease: result.Decision.CanRelease,
		Reason:     result.Decision.Reason,
		Conditions: servers.ReleaseConditions{
			TrackingDelivered:    result.Decision.Conditions.TrackingDelivered,
			BuyerConfirmed:       result.Decision.Conditions.BuyerConfirmed,
			DisputeWindowExpired: result.Decision.Conditions.DisputeWindowExpired,
			DisputeActive:        result.Decision.Conditions.DisputeActive,
			SellerFailedSla:      result.Decision.Conditions.SellerFailedSLA,
		},
	})
}

// toShipmentResponse maps the read model onto the wire representation.
func toShipmentResponse(model queries.ShipmentReadModel) servers.Shipment {
	return servers.Shipment{
		Id:                 model.ID.Bytes(),
		EscrowId:           model.EscrowID.Bytes(),
		Category:           model.Category,
		Carrier:            model.Carrier,
		Status:             model.Status,
		TrackingNumber:     model.TrackingNumber,
		TrackingUrl:        model.TrackingURL,
		DeclaredValueCents: model.DeclaredValueCents,
		InsuredValueCents:  model.InsuredValueCents,
		InsuranceConfirmed: model.InsuranceConfirmed,
		CancelReason:       model.CancelReason,
		CreatedAt:          model.CreatedAt,
		ShippedAt:          model.ShippedAt,
		DeliveredAt:        model.DeliveredAt,
		ConfirmedAt:        model.ConfirmedAt,
		DisputeWindowEnds:  model.DisputeWindowEnds,
	}
}

// writeError maps an application error onto an HTTP status by its
// classification sentinel.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}
