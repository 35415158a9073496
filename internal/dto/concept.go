package dto

import (
	"time"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// CreateConceptRequest defines the payload for cataloguing a new annulment
// concept.
type CreateConceptRequest struct {
	Code           string `json:"code" binding:"required"`
	Description    string `json:"description" binding:"required"`
	IssuingOffice  string `json:"issuingOffice"`
	Category       string `json:"category" binding:"required,oneof=CORRECTION REPLACEMENT"`
	NoteTemplateID string `json:"noteTemplateID"`
}

// UpdateConceptRequest defines the editable concept fields. Nil means leave
// unchanged.
type UpdateConceptRequest struct {
	Code           *string `json:"code"`
	Description    *string `json:"description"`
	IssuingOffice  *string `json:"issuingOffice"`
	Category       *string `json:"category" binding:"omitempty,oneof=CORRECTION REPLACEMENT"`
	NoteTemplateID *string `json:"noteTemplateID"`
}

// ConceptResponse is the read shape of one catalogued concept.
type ConceptResponse struct {
	ConceptID      string    `json:"conceptID"`
	ParishID       string    `json:"parishID,omitempty"`
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	IssuingOffice  string    `json:"issuingOffice,omitempty"`
	Category       string    `json:"category"`
	NoteTemplateID string    `json:"noteTemplateID,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToConceptResponse converts a domain concept.
func ToConceptResponse(c *domain.AnnulmentConcept) ConceptResponse {
	return ConceptResponse{
		ConceptID:      c.ConceptID,
		ParishID:       c.ParishID,
		Code:           c.Code,
		Description:    c.Description,
		IssuingOffice:  c.IssuingOffice,
		Category:       string(c.Category),
		NoteTemplateID: c.NoteTemplateID,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
	}
}

// ListConceptsResponse wraps a catalog listing sorted by code.
type ListConceptsResponse struct {
	Concepts []ConceptResponse `json:"concepts"`
}

// PutTemplateSetRequest replaces a tenant's marginal-note template set.
type PutTemplateSetRequest struct {
	AnnulledRecordTemplate string `json:"annulledRecordTemplate"`
	NewRecordTemplate      string `json:"newRecordTemplate"`
	ReplacementTemplate    string `json:"replacementTemplate"`
	StandardTemplate       string `json:"standardTemplate"`
}

// TemplateSetResponse is the read shape of a tenant's template set.
type TemplateSetResponse struct {
	ParishID               string `json:"parishID"`
	AnnulledRecordTemplate string `json:"annulledRecordTemplate"`
	NewRecordTemplate      string `json:"newRecordTemplate"`
	ReplacementTemplate    string `json:"replacementTemplate"`
	StandardTemplate       string `json:"standardTemplate"`
}
