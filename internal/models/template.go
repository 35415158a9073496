package models

// MarginalNoteTemplateSet is the stored document shape of a tenant's note
// templates. One document per parish.
type MarginalNoteTemplateSet struct {
	ParishID               string `json:"parishID"`
	AnnulledRecordTemplate string `json:"annulledRecordTemplate"`
	NewRecordTemplate      string `json:"newRecordTemplate"`
	ReplacementTemplate    string `json:"replacementTemplate"`
	StandardTemplate       string `json:"standardTemplate"`
	AuditFields
}
