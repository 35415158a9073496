package domain

import "time"

// DecreeCategory distinguishes the two administrative decree types.
type DecreeCategory string

const (
	DecreeCorrection  DecreeCategory = "CORRECTION"
	DecreeReplacement DecreeCategory = "REPLACEMENT"
)

// OriginType tags the chancery copy of a decree with the partition and
// category it originated from.
type OriginType string

const (
	OriginParishCorrection  OriginType = "PARISH_CORRECTION"
	OriginParishReplacement OriginType = "PARISH_REPLACEMENT"
)

// Decree is the immutable audit record of one administrative action. It is
// created exactly once per successful workflow execution and never mutated;
// corrections to a decree are modeled as editing the record it produced.
type Decree struct {
	DecreeID          string         `json:"decreeID"` // Primary Key (UUID)
	DecreeNumber      string         `json:"decreeNumber"`
	DecreeDate        time.Time      `json:"decreeDate"`
	Category          DecreeCategory `json:"category"`
	AnnulmentConceptID *string       `json:"annulmentConceptID"`

	// OriginalRecordRef snapshots the annulled record's natural key. Nil for
	// replacement decrees, where no original exists to annul.
	OriginalRecordRef *NaturalKey `json:"originalRecordRef"`

	NewRecordID string `json:"newRecordID"`
	ParishID    string `json:"parishID"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OriginTypeFor maps a decree category to its chancery-copy origin tag.
func OriginTypeFor(category DecreeCategory) OriginType {
	if category == DecreeReplacement {
		return OriginParishReplacement
	}
	return OriginParishCorrection
}
