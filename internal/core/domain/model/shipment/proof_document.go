package shipment

import (
	"time"

	"escrowship/internal/pkg/errs"
)

// ProofDocument is one entry in a shipment's ordered evidence trail:
// drop-off receipts, insurance certificates, chain-of-custody records,
// photos of the packed item. Documents are append-only.
type ProofDocument struct {
	// Kind labels the document ("dropoff_receipt", "insurance_certificate", ...).
	Kind string

	// URI points at the stored document; storage itself is out of scope.
	URI string

	// AddedAt records when the document was attached.
	AddedAt time.Time
}

// NewProofDocument creates a validated proof document entry.
func NewProofDocument(kind, uri string, addedAt time.Time) (ProofDocument, error) {
	if kind == "" {
		return ProofDocument{}, errs.NewValueIsRequiredError("proof document kind")
	}
	if uri == "" {
		return ProofDocument{}, errs.NewValueIsRequiredError("proof document uri")
	}
	return ProofDocument{Kind: kind, URI: uri, AddedAt: addedAt.UTC()}, nil
}
