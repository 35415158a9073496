package dto

import (
	"time"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// OriginalKeyRef identifies the record a correction decree targets.
type OriginalKeyRef struct {
	SacramentType string `json:"sacramentType" binding:"required"`
	Book          string `json:"book" binding:"required"`
	Folio         string `json:"folio" binding:"required"`
	Entry         string `json:"entry" binding:"required"`
}

// CorrectionDecreeRequest annuls one active record and creates its
// replacement. Field-level problems are aggregated and returned together.
type CorrectionDecreeRequest struct {
	OriginalKey        OriginalKeyRef `json:"originalKey" binding:"required"`
	AnnulmentConceptID string         `json:"annulmentConceptID"`
	DecreeNumber       string         `json:"decreeNumber"`
	DecreeDate         string         `json:"decreeDate"` // YYYY-MM-DD
	NewRecord          RecordFields   `json:"newRecord" binding:"required"`
}

// ReplacementDecreeRequest creates a supplementary record where no original
// exists to annul (lost or destroyed book).
type ReplacementDecreeRequest struct {
	SacramentType      string       `json:"sacramentType" binding:"required"`
	AnnulmentConceptID string       `json:"annulmentConceptID"`
	DecreeNumber       string       `json:"decreeNumber"`
	DecreeDate         string       `json:"decreeDate"` // YYYY-MM-DD
	NewRecord          RecordFields `json:"newRecord" binding:"required"`
}

// DecreeResponse is the result of a successful decree workflow: the decree
// and both record snapshots. Warning is set when the notification leg failed
// after the writes had already been persisted.
type DecreeResponse struct {
	Decree         DecreeView      `json:"decree"`
	OriginalRecord *RecordResponse `json:"originalRecord,omitempty"`
	NewRecord      RecordResponse  `json:"newRecord"`
	Warning        string          `json:"warning,omitempty"`
}

// DecreeView is the read shape of one decree.
type DecreeView struct {
	DecreeID           string          `json:"decreeID"`
	DecreeNumber       string          `json:"decreeNumber"`
	DecreeDate         time.Time       `json:"decreeDate"`
	Category           string          `json:"category"`
	AnnulmentConceptID *string         `json:"annulmentConceptID,omitempty"`
	OriginalRecordRef  *OriginalKeyRef `json:"originalRecordRef,omitempty"`
	NewRecordID        string          `json:"newRecordID"`
	ParishID           string          `json:"parishID"`
	OriginType         string          `json:"originType,omitempty"`
	CreatedBy          string          `json:"createdBy"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToDecreeView converts a domain decree.
func ToDecreeView(d *domain.Decree) DecreeView {
	view := DecreeView{
		DecreeID:           d.DecreeID,
		DecreeNumber:       d.DecreeNumber,
		DecreeDate:         d.DecreeDate,
		Category:           string(d.Category),
		AnnulmentConceptID: d.AnnulmentConceptID,
		NewRecordID:        d.NewRecordID,
		ParishID:           d.ParishID,
		CreatedBy:          d.CreatedBy,
		CreatedAt:          d.CreatedAt,
	}
	if d.OriginalRecordRef != nil {
		view.OriginalRecordRef = &OriginalKeyRef{
			SacramentType: string(d.OriginalRecordRef.SacramentType),
			Book:          d.OriginalRecordRef.Book,
			Folio:         d.OriginalRecordRef.Folio,
			Entry:         d.OriginalRecordRef.Entry,
		}
	}
	return view
}

// ListDecreesResponse wraps a tenant decree listing.
type ListDecreesResponse struct {
	Decrees []DecreeView `json:"decrees"`
}

// ValidationErrorResponse is the body returned for aggregated field errors.
type ValidationErrorResponse struct {
	Error  string                `json:"error"`
	Fields []apperrors.FieldError `json:"fields"`
}
