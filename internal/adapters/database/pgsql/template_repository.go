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

// TemplateRepository persists the marginal-note template set, one document
// per parish.
type TemplateRepository struct {
	store portsrepo.DocumentStore
}

func NewTemplateRepository(store portsrepo.DocumentStore) *TemplateRepository {
	return &TemplateRepository{store: store}
}

// Ensure TemplateRepository implements the ports interface
var _ portsrepo.TemplateRepository = (*TemplateRepository)(nil)

func (r *TemplateRepository) FindTemplateSet(ctx context.Context, parishID string) (*domain.MarginalNoteTemplateSet, error) {
	documents, err := r.store.Get(ctx, portsrepo.CollectionKey(portsrepo.EntityTemplate, parishID))
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: no template set for parish %s", apperrors.ErrNotFound, parishID)
	}
	var m models.MarginalNoteTemplateSet
	if err := json.Unmarshal(documents[0], &m); err != nil {
		return nil, fmt.Errorf("corrupt template document: %w", err)
	}
	templates := mapping.ToDomainTemplateSet(m)
	return &templates, nil
}

func (r *TemplateRepository) SaveTemplateSet(ctx context.Context, templates domain.MarginalNoteTemplateSet) error {
	doc, err := json.Marshal(mapping.ToModelTemplateSet(templates))
	if err != nil {
		return fmt.Errorf("failed to encode template set: %w", err)
	}
	collectionKey := portsrepo.CollectionKey(portsrepo.EntityTemplate, templates.ParishID)
	return r.store.Put(ctx, collectionKey, []json.RawMessage{doc})
}
