package services

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// ImportSvcFacade is the bulk-ingestion pipeline. Reconcile only classifies;
// ConfirmImport is the explicit step that persists.
type ImportSvcFacade interface {
	// Reconcile validates, maps and deduplicates raw legacy rows against the
	// current store without writing anything.
	Reconcile(ctx context.Context, parishID string, sacramentType domain.SacramentType, rows []map[string]any) (*domain.ImportBatch, error)

	// ConfirmImport re-runs the pipeline against the live store state and
	// persists the surviving validNew records.
	ConfirmImport(ctx context.Context, parishID string, sacramentType domain.SacramentType, rows []map[string]any, creatorUserID string) (*dto.ConfirmImportResponse, error)
}
