package services

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// RecordSvcFacade exposes record display operations. Marginal notes are
// resolved lazily from the tenant's current templates on every read.
type RecordSvcFacade interface {
	// GetRecord retrieves one record with its resolved marginal note.
	GetRecord(ctx context.Context, parishID, recordID string, noteCtx NoteContext) (*dto.RecordResponse, error)

	// ListRecords retrieves a parish's records with resolved notes,
	// optionally filtered by sacrament type.
	ListRecords(ctx context.Context, parishID string, sacramentType *domain.SacramentType, noteCtx NoteContext) (*dto.ListRecordsResponse, error)
}
