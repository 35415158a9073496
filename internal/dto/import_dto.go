package dto

import "github.com/parishbooks/parish_registry_app/internal/core/domain"

// ImportUploadRequest is the collaborator-facing bulk import shape: a
// document with one top-level array of flat legacy rows, field names being
// the short legacy exporter codes. Only the reconciler's mapping step knows
// this vocabulary.
type ImportUploadRequest struct {
	SacramentType string           `json:"sacramentType" binding:"required"`
	Rows          []map[string]any `json:"rows" binding:"required"`
}

// ReconcileResponse is the classification preview of one uploaded dataset.
// Nothing has been written when this is returned.
type ReconcileResponse struct {
	Total      int                    `json:"total"`
	ValidNew   []RecordResponse       `json:"validNew"`
	Duplicates []domain.DuplicateRow  `json:"duplicates"`
	Invalid    []domain.RejectedRow   `json:"invalid"`
}

// ConfirmImportRequest persists the validNew half of a reconciled upload.
// The rows are re-submitted so the server re-runs duplicate detection against
// the current store state before writing.
type ConfirmImportRequest struct {
	SacramentType string           `json:"sacramentType" binding:"required"`
	Rows          []map[string]any `json:"rows" binding:"required"`
}

// ConfirmImportResponse reports what the confirmation step actually wrote.
type ConfirmImportResponse struct {
	Persisted  int                   `json:"persisted"`
	Duplicates []domain.DuplicateRow `json:"duplicates"`
	Invalid    []domain.RejectedRow  `json:"invalid"`
}
