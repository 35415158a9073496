package domain

// AnnulmentConcept is a catalogued, reusable justification for a decree.
type AnnulmentConcept struct {
	ConceptID string `json:"conceptID"` // Primary Key (UUID)

	// ParishID scopes the concept to one parish. Empty means diocese-wide.
	ParishID string `json:"parishID"`

	Code          string         `json:"code"` // short sortable code, listed in natural order
	Description   string         `json:"description"`
	IssuingOffice string         `json:"issuingOffice"`
	Category      DecreeCategory `json:"category"`
	NoteTemplateID string        `json:"noteTemplateID"`

	AuditFields
}
