// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"escrowship/internal/core/domain/model/carrier"
	"escrowship/internal/core/domain/model/category"
	"escrowship/internal/core/domain/model/kernel"
	"escrowship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. One row per shipment; the escrow_id carries a unique index
// enforcing the 1:1 escrow-to-shipment mapping at the storage level, and
// status plus dispute_window_ends are indexed for the scheduler feeds.
type ShipmentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	EscrowID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Category           int
	Carrier            int
	TrackingNumber     string
	Status             int `gorm:"index"`
	DeclaredValueCents int64
	InsuredValueCents  int64
	InsuranceConfirmed bool
	CancelReason       string
	CreatedAt          time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	ConfirmedAt        *time.Time
	DisputeWindowEnds  *time.Time         `gorm:"index"`
	ProofDocuments     []ProofDocumentDTO `gorm:"serializer:json;type:jsonb"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ProofDocumentDTO is one evidence entry, stored inline as part of the
// shipment row's JSON document trail.
type ProofDocumentDTO struct {
	Kind    string    `json:"kind"`
	URI     string    `json:"uri"`
	AddedAt time.Time `json:"addedAt"`
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	proofs := make([]ProofDocumentDTO, 0, len(aggregate.ProofDocuments()))
	for _, doc := range aggregate.ProofDocuments() {
		proofs = append(proofs, ProofDocumentDTO{
			Kind:    doc.Kind,
			URI:     doc.URI,
			AddedAt: doc.AddedAt,
		})
	}

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		EscrowID:           aggregate.EscrowID().Bytes(),
		Category:           int(aggregate.Category()),
		Carrier:            int(aggregate.Carrier()),
		TrackingNumber:     aggregate.TrackingNumber(),
		Status:             int(aggregate.Status()),
		DeclaredValueCents: aggregate.DeclaredValue().Cents(),
		InsuredValueCents:  aggregate.InsuredValue().Cents(),
		InsuranceConfirmed: aggregate.InsuranceConfirmed(),
		CancelReason:       aggregate.CancelReason(),
		CreatedAt:          aggregate.CreatedAt(),
		ShippedAt:          aggregate.ShippedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		DisputeWindowEnds:  aggregate.DisputeWindowEnds(),
		ProofDocuments:     proofs,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate using RestoreShipment; no business
// rules are re-applied.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	escrowID, err := kernel.UUIDFromBytes(dto.EscrowID[:])
	if err != nil {
		return nil, err
	}

	declaredValue, err := kernel.NewMoney(dto.DeclaredValueCents)
	if err != nil {
		return nil, err
	}

	// A zero insured value means no insurance was taken out (the category
	// waived it, or the shipment has not been dispatched).
	var insuredValue kernel.Money
	if dto.InsuredValueCents > 0 {
		if insuredValue, err = kernel.NewMoney(dto.InsuredValueCents); err != nil {
			return nil, err
		}
	}

	var proofs []shipment.ProofDocument
	if len(dto.ProofDocuments) > 0 {
		proofs = make([]shipment.ProofDocument, 0, len(dto.ProofDocuments))
		for _, doc := range dto.ProofDocuments {
			proofs = append(proofs, shipment.ProofDocument{
				Kind:    doc.Kind,
				URI:     doc.URI,
				AddedAt: doc.AddedAt,
			})
		}
	}

	return shipment.RestoreShipment(
		id,
		escrowID,
		category.Category(dto.Category),
		shipment.Status(dto.Status),
		carrier.Carrier(dto.Carrier),
		dto.TrackingNumber,
		declaredValue,
		insuredValue,
		dto.InsuranceConfirmed,
		dto.CancelReason,
		dto.CreatedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.ConfirmedAt,
		dto.DisputeWindowEnds,
		proofs,
	)
}
