package models

// AnnulmentConcept is the stored document shape of a catalogued decree reason.
type AnnulmentConcept struct {
	ConceptID      string `json:"conceptID"`
	ParishID       string `json:"parishID"`
	Code           string `json:"code"`
	Description    string `json:"description"`
	IssuingOffice  string `json:"issuingOffice"`
	Category       string `json:"category"`
	NoteTemplateID string `json:"noteTemplateID"`
	AuditFields
}
