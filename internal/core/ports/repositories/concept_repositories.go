package repositories

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// ConceptReader defines read operations for the annulment concept catalog
type ConceptReader interface {
	FindConceptByID(ctx context.Context, tenantID, conceptID string) (*domain.AnnulmentConcept, error)

	// ListConcepts retrieves a tenant's concepts, optionally filtered by
	// decree category. Ordering is the caller's concern.
	ListConcepts(ctx context.Context, tenantID string, category *domain.DecreeCategory) ([]domain.AnnulmentConcept, error)
}

// ConceptWriter defines write operations for the annulment concept catalog
type ConceptWriter interface {
	SaveConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error
	UpdateConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error
	DeleteConcept(ctx context.Context, tenantID, conceptID string) error
}

// ConceptRepositoryFacade combines all concept repository interfaces.
type ConceptRepositoryFacade interface {
	ConceptReader
	ConceptWriter
}

// TemplateRepository manages a tenant's marginal-note template set. One
// document per parish; a missing set resolves to apperrors.ErrNotFound.
type TemplateRepository interface {
	FindTemplateSet(ctx context.Context, parishID string) (*domain.MarginalNoteTemplateSet, error)
	SaveTemplateSet(ctx context.Context, templates domain.MarginalNoteTemplateSet) error
}
