package domain

// Placeholder tokens substituted by the marginal-note engine. These are
// matched literally; unrecognized tokens are left untouched in the output.
const (
	TokenDecreeDate     = "[DECREE_DATE]"
	TokenDecreeNumber   = "[DECREE_NUMBER]"
	TokenNewBook        = "[NEW_BOOK]"
	TokenNewFolio       = "[NEW_FOLIO]"
	TokenNewEntry       = "[NEW_ENTRY]"
	TokenOriginalBook   = "[ORIGINAL_BOOK]"
	TokenOriginalFolio  = "[ORIGINAL_FOLIO]"
	TokenOriginalEntry  = "[ORIGINAL_ENTRY]"
	TokenIssuingOffice  = "[ISSUING_OFFICE]"
	TokenPriestName     = "[PRIEST_NAME]"
	TokenExpeditionDate = "[EXPEDITION_DATE]"
)

// MarginalNoteTemplateSet holds a tenant's current note templates, one per
// category. Templates are mutable configuration, not versioned: the engine
// always reads the current text at display time, so a template edit
// retroactively changes how historical decrees display.
type MarginalNoteTemplateSet struct {
	ParishID string `json:"parishID"`

	// AnnulledRecordTemplate is shown on the record a correction annulled.
	AnnulledRecordTemplate string `json:"annulledRecordTemplate"`

	// NewRecordTemplate is shown on the record a correction created.
	NewRecordTemplate string `json:"newRecordTemplate"`

	// ReplacementTemplate is shown on a record created by a replacement decree.
	ReplacementTemplate string `json:"replacementTemplate"`

	// StandardTemplate is the default when no decree applies.
	StandardTemplate string `json:"standardTemplate"`

	AuditFields
}
