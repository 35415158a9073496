package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	"github.com/parishbooks/parish_registry_app/internal/models"
	"github.com/parishbooks/parish_registry_app/internal/utils/mapping"
)

// ConceptRepository persists the annulment concept catalog, one collection
// per tenant.
type ConceptRepository struct {
	store portsrepo.DocumentStore
}

func NewConceptRepository(store portsrepo.DocumentStore) *ConceptRepository {
	return &ConceptRepository{store: store}
}

// Ensure ConceptRepository implements the ports facade
var _ portsrepo.ConceptRepositoryFacade = (*ConceptRepository)(nil)

func (r *ConceptRepository) FindConceptByID(ctx context.Context, tenantID, conceptID string) (*domain.AnnulmentConcept, error) {
	concepts, err := r.loadConcepts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for i := range concepts {
		if concepts[i].ConceptID == conceptID {
			return &concepts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: concept %s", apperrors.ErrNotFound, conceptID)
}

func (r *ConceptRepository) ListConcepts(ctx context.Context, tenantID string, category *domain.DecreeCategory) ([]domain.AnnulmentConcept, error) {
	concepts, err := r.loadConcepts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return concepts, nil
	}
	filtered := make([]domain.AnnulmentConcept, 0, len(concepts))
	for i := range concepts {
		if concepts[i].Category == *category {
			filtered = append(filtered, concepts[i])
		}
	}
	return filtered, nil
}

func (r *ConceptRepository) SaveConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error {
	return r.mutate(ctx, tenantID, func(concepts []models.AnnulmentConcept) ([]models.AnnulmentConcept, error) {
		return append(concepts, mapping.ToModelConcept(concept)), nil
	})
}

func (r *ConceptRepository) UpdateConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error {
	return r.mutate(ctx, tenantID, func(concepts []models.AnnulmentConcept) ([]models.AnnulmentConcept, error) {
		for i := range concepts {
			if concepts[i].ConceptID == concept.ConceptID {
				concepts[i] = mapping.ToModelConcept(concept)
				return concepts, nil
			}
		}
		return nil, fmt.Errorf("%w: concept %s", apperrors.ErrNotFound, concept.ConceptID)
	})
}

func (r *ConceptRepository) DeleteConcept(ctx context.Context, tenantID, conceptID string) error {
	return r.mutate(ctx, tenantID, func(concepts []models.AnnulmentConcept) ([]models.AnnulmentConcept, error) {
		for i := range concepts {
			if concepts[i].ConceptID == conceptID {
				return append(concepts[:i], concepts[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: concept %s", apperrors.ErrNotFound, conceptID)
	})
}

func (r *ConceptRepository) mutate(ctx context.Context, tenantID string, fn func([]models.AnnulmentConcept) ([]models.AnnulmentConcept, error)) error {
	collectionKey := portsrepo.CollectionKey(portsrepo.EntityConcept, tenantID)

	return r.store.Update(ctx, []string{collectionKey}, func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error) {
		concepts, err := decodeConcepts(collections[collectionKey])
		if err != nil {
			return nil, err
		}
		updated, err := fn(concepts)
		if err != nil {
			return nil, err
		}
		documents := make([]json.RawMessage, len(updated))
		for i := range updated {
			doc, err := json.Marshal(updated[i])
			if err != nil {
				return nil, fmt.Errorf("failed to encode concept %s: %w", updated[i].ConceptID, err)
			}
			documents[i] = doc
		}
		return map[string][]json.RawMessage{collectionKey: documents}, nil
	})
}

func (r *ConceptRepository) loadConcepts(ctx context.Context, tenantID string) ([]domain.AnnulmentConcept, error) {
	documents, err := r.store.Get(ctx, portsrepo.CollectionKey(portsrepo.EntityConcept, tenantID))
	if err != nil {
		return nil, err
	}
	concepts, err := decodeConcepts(documents)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AnnulmentConcept, len(concepts))
	for i := range concepts {
		out[i] = mapping.ToDomainConcept(concepts[i])
	}
	return out, nil
}

func decodeConcepts(documents []json.RawMessage) ([]models.AnnulmentConcept, error) {
	concepts := make([]models.AnnulmentConcept, 0, len(documents))
	for _, doc := range documents {
		var m models.AnnulmentConcept
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("corrupt concept document: %w", err)
		}
		concepts = append(concepts, m)
	}
	return concepts, nil
}
