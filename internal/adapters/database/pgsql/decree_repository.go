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

// DecreeRepository reads decree collections and writes chancery copies.
// Parish-side decrees are written by RecordRepository as part of the atomic
// decree application.
type DecreeRepository struct {
	store portsrepo.DocumentStore
}

func NewDecreeRepository(store portsrepo.DocumentStore) *DecreeRepository {
	return &DecreeRepository{store: store}
}

// Ensure DecreeRepository implements the ports facade
var _ portsrepo.DecreeRepositoryFacade = (*DecreeRepository)(nil)

func (r *DecreeRepository) FindDecreeByID(ctx context.Context, tenantID, decreeID string) (*domain.Decree, error) {
	decrees, err := r.loadDecrees(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for i := range decrees {
		if decrees[i].DecreeID == decreeID {
			return &decrees[i], nil
		}
	}
	return nil, fmt.Errorf("%w: decree %s", apperrors.ErrNotFound, decreeID)
}

func (r *DecreeRepository) FindDecreeByNewRecordID(ctx context.Context, parishID, recordID string) (*domain.Decree, error) {
	decrees, err := r.loadDecrees(ctx, parishID)
	if err != nil {
		return nil, err
	}
	for i := range decrees {
		if decrees[i].NewRecordID == recordID {
			return &decrees[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no decree created record %s", apperrors.ErrNotFound, recordID)
}

func (r *DecreeRepository) ListDecreesByTenant(ctx context.Context, tenantID string) ([]domain.Decree, error) {
	return r.loadDecrees(ctx, tenantID)
}

func (r *DecreeRepository) CountDecreesByConcept(ctx context.Context, tenantID, conceptID string) (int, error) {
	decrees, err := r.loadDecrees(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range decrees {
		if decrees[i].AnnulmentConceptID != nil && *decrees[i].AnnulmentConceptID == conceptID {
			count++
		}
	}
	return count, nil
}

// SaveChanceryCopy appends the decree copy to the chancery partition. The
// write is idempotent keyed by decree ID so a retried publish after a partial
// failure never duplicates the copy.
func (r *DecreeRepository) SaveChanceryCopy(ctx context.Context, chanceryID string, decree domain.Decree, originType domain.OriginType) error {
	collectionKey := portsrepo.CollectionKey(portsrepo.EntityDecree, chanceryID)

	return r.store.Update(ctx, []string{collectionKey}, func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error) {
		documents := collections[collectionKey]
		for _, doc := range documents {
			var existing models.Decree
			if err := json.Unmarshal(doc, &existing); err != nil {
				return nil, fmt.Errorf("corrupt decree document: %w", err)
			}
			if existing.DecreeID == decree.DecreeID {
				return nil, nil
			}
		}

		copyModel := mapping.ToModelDecree(decree)
		copyModel.OriginType = string(originType)
		doc, err := json.Marshal(copyModel)
		if err != nil {
			return nil, fmt.Errorf("failed to encode chancery copy of decree %s: %w", decree.DecreeID, err)
		}
		return map[string][]json.RawMessage{collectionKey: append(documents, doc)}, nil
	})
}

func (r *DecreeRepository) loadDecrees(ctx context.Context, tenantID string) ([]domain.Decree, error) {
	documents, err := r.store.Get(ctx, portsrepo.CollectionKey(portsrepo.EntityDecree, tenantID))
	if err != nil {
		return nil, err
	}
	decrees := make([]domain.Decree, 0, len(documents))
	for _, doc := range documents {
		var m models.Decree
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("corrupt decree document: %w", err)
		}
		decrees = append(decrees, mapping.ToDomainDecree(m))
	}
	return decrees, nil
}
