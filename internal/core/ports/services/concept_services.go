package services

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// ConceptSvcFacade is the tenant-scoped annulment concept catalog.
type ConceptSvcFacade interface {
	CreateConcept(ctx context.Context, tenantID string, req dto.CreateConceptRequest, creatorUserID string) (*domain.AnnulmentConcept, error)
	GetConceptByID(ctx context.Context, tenantID, conceptID string) (*domain.AnnulmentConcept, error)

	// ListConcepts returns the catalog sorted by code in natural order, so
	// "C2" sorts before "C10".
	ListConcepts(ctx context.Context, tenantID string, category *domain.DecreeCategory) ([]domain.AnnulmentConcept, error)

	UpdateConcept(ctx context.Context, tenantID, conceptID string, req dto.UpdateConceptRequest, updaterUserID string) (*domain.AnnulmentConcept, error)

	// DeleteConcept fails with apperrors.ErrReferencedEntity while any decree
	// still references the concept.
	DeleteConcept(ctx context.Context, tenantID, conceptID string) error
}

// TemplateSvcFacade manages a tenant's marginal-note template set.
type TemplateSvcFacade interface {
	GetTemplateSet(ctx context.Context, parishID string) (*domain.MarginalNoteTemplateSet, error)
	PutTemplateSet(ctx context.Context, parishID string, req dto.PutTemplateSetRequest, updaterUserID string) (*domain.MarginalNoteTemplateSet, error)
}
