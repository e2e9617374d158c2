// Package queries contains read operations for retrieving shipment state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentReadModel is the flat read-side projection of one shipment.
// Enumerations travel as their wire names, money as integer cents; the
// tracking URL is pre-resolved from the carrier's template.
type ShipmentReadModel struct {
	ID                 kernel.UUID
	EscrowID           kernel.UUID
	Category           string
	Carrier            string
	TrackingNumber     string
	TrackingURL        string
	Status             string
	DeclaredValueCents int64
	InsuredValueCents  int64
	InsuranceConfirmed bool
	CancelReason       string
	CreatedAt          time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	ConfirmedAt        *time.Time
	DisputeWindowEnds  *time.Time
}

// shipmentColumns is the select list scanShipmentRow expects, in order.
const shipmentColumns = `
		id,
		escrow_id,
		category,
		carrier,
		tracking_number,
		status,
		declared_value_cents,
		insured_value_cents,
		insurance_confirmed,
		cancel_reason,
		created_at,
		shipped_at,
		delivered_at,
		confirmed_at,
		dispute_window_ends`

// scanShipmentRow maps one shipments row onto the read model.
func scanShipmentRow(rows *sql.Rows) (ShipmentReadModel, error) {
	var (
		model         ShipmentReadModel
		id, escrowID  uuid.UUID
		categoryValue int
		carrierValue  int
		statusValue   int
		shippedAt     sql.NullTime
		deliveredAt   sql.NullTime
		confirmedAt   sql.NullTime
		windowEnds    sql.NullTime
	)

	err := rows.Scan(
		&id,
		&escrowID,
		&categoryValue,
		&carrierValue,
		&model.TrackingNumber,
		&statusValue,
		&model.DeclaredValueCents,
		&model.InsuredValueCents,
		&model.InsuranceConfirmed,
		&model.CancelReason,
		&model.CreatedAt,
		&shippedAt,
		&deliveredAt,
		&confirmedAt,
		&windowEnds,
	)
	if err != nil {
		return ShipmentReadModel{}, err
	}

	if model.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentReadModel{}, err
	}
	if model.EscrowID, err = kernel.UUIDFromBytes(escrowID[:]); err != nil {
		return ShipmentReadModel{}, err
	}

	shipCarrier := carrier.Carrier(carrierValue)
	model.Category = category.Category(categoryValue).String()
	model.Carrier = shipCarrier.String()
	model.TrackingURL = shipCarrier.TrackingURL(model.TrackingNumber)
	model.Status = shipment.Status(statusValue).String()

	if shippedAt.Valid {
		model.ShippedAt = &shippedAt.Time
	}
	if deliveredAt.Valid {
		model.DeliveredAt = &deliveredAt.Time
	}
	if confirmedAt.Valid {
		model.ConfirmedAt = &confirmedAt.Time
	}
	if windowEnds.Valid {
		model.DisputeWindowEnds = &windowEnds.Time
	}

	return model, nil
}
