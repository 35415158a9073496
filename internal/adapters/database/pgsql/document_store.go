package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
)

// DocumentStore is the pgsql-backed record store. Each tenant collection is
// one row of document_collections holding the whole collection as a jsonb
// array; writes overwrite the full collection, matching the store contract
// of get/put with no partial-row update.
type DocumentStore struct {
	db *pgxpool.Pool
}

func NewDocumentStore(db *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{db: db}
}

// Ensure DocumentStore implements the ports interface
var _ portsrepo.DocumentStore = (*DocumentStore)(nil)

func (s *DocumentStore) Get(ctx context.Context, collectionKey string) ([]json.RawMessage, error) {
	query := `
        SELECT documents
        FROM document_collections
        WHERE collection_key = $1;
    `
	var raw []byte
	err := s.db.QueryRow(ctx, query, collectionKey).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collectionKey, err)
	}
	return decodeDocuments(collectionKey, raw)
}

func (s *DocumentStore) Put(ctx context.Context, collectionKey string, documents []json.RawMessage) error {
	raw, err := encodeDocuments(documents)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collectionKey, err)
	}
	query := `
        INSERT INTO document_collections (collection_key, documents)
        VALUES ($1, $2)
        ON CONFLICT (collection_key) DO UPDATE SET
            documents = EXCLUDED.documents;
    `
	if _, err := s.db.Exec(ctx, query, collectionKey, raw); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collectionKey, err)
	}
	return nil
}

// Update applies fn to the named collections inside one transaction, holding
// row locks on all of them for the duration. Keys are locked in sorted order
// so two updates touching overlapping key sets cannot deadlock.
func (s *DocumentStore) Update(ctx context.Context, collectionKeys []string, fn func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error)) error {
	keys := append([]string(nil), collectionKeys...)
	sort.Strings(keys)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	// Missing collections must exist before they can be locked FOR UPDATE.
	ensureQuery := `
        INSERT INTO document_collections (collection_key, documents)
        VALUES ($1, '[]'::jsonb)
        ON CONFLICT (collection_key) DO NOTHING;
    `
	lockQuery := `
        SELECT documents
        FROM document_collections
        WHERE collection_key = $1
        FOR UPDATE;
    `
	collections := make(map[string][]json.RawMessage, len(keys))
	for _, key := range keys {
		if _, err := tx.Exec(ctx, ensureQuery, key); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", key, err)
		}
		var raw []byte
		if err := tx.QueryRow(ctx, lockQuery, key).Scan(&raw); err != nil {
			return fmt.Errorf("failed to lock collection %s: %w", key, err)
		}
		documents, err := decodeDocuments(key, raw)
		if err != nil {
			return err
		}
		collections[key] = documents
	}

	updated, err := fn(collections)
	if err != nil {
		return err
	}

	writeQuery := `
        UPDATE document_collections
        SET documents = $2
        WHERE collection_key = $1;
    `
	for _, key := range keys {
		documents, ok := updated[key]
		if !ok {
			continue
		}
		raw, err := encodeDocuments(documents)
		if err != nil {
			return fmt.Errorf("failed to encode collection %s: %w", key, err)
		}
		if _, err := tx.Exec(ctx, writeQuery, key, raw); err != nil {
			return fmt.Errorf("failed to write collection %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit collection update: %w", err)
	}
	return nil
}

func decodeDocuments(collectionKey string, raw []byte) ([]json.RawMessage, error) {
	if len(raw) == 0 {
		return []json.RawMessage{}, nil
	}
	var documents []json.RawMessage
	if err := json.Unmarshal(raw, &documents); err != nil {
		return nil, fmt.Errorf("corrupt collection %s: %w", collectionKey, err)
	}
	return documents, nil
}

func encodeDocuments(documents []json.RawMessage) ([]byte, error) {
	if documents == nil {
		documents = []json.RawMessage{}
	}
	return json.Marshal(documents)
}
