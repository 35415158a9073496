package repositories

import (
	"context"
	"encoding/json"
	"fmt"
)

// Entity type prefixes for collection keys.
const (
	EntityRecord   = "record"
	EntityDecree   = "decree"
	EntityConcept  = "concept"
	EntityTemplate = "template"
)

// CollectionKey forms the per-tenant key of one document collection,
// {entityType}_{tenantId}.
func CollectionKey(entityType, tenantID string) string {
	return fmt.Sprintf("%s_%s", entityType, tenantID)
}

// DocumentStore is the external Record Store collaborator: a per-tenant keyed
// document store with overwrite-whole-collection semantics. There is no
// partial-row update primitive; entity repositories read a collection, change
// it in memory and write it back.
type DocumentStore interface {
	// Get returns the documents of a collection. A missing collection is an
	// empty slice, not an error.
	Get(ctx context.Context, collectionKey string) ([]json.RawMessage, error)

	// Put overwrites a collection with the given documents.
	Put(ctx context.Context, collectionKey string, documents []json.RawMessage) error

	// Update atomically applies fn to the named collections. The store holds
	// all listed collections locked for the duration, so concurrent updates of
	// the same collections serialize. fn returns the full new contents per
	// key; keys absent from the result are left unchanged.
	Update(ctx context.Context, collectionKeys []string, fn func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error)) error
}
