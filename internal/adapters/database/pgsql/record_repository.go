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
	"github.com/parishbooks/parish_registry_app/internal/utils/recordkey"
)

// RecordRepository persists sacramental records as per-parish document
// collections. All decree writes go through Update so the active-status
// re-check, key allocation and commit happen under one collection lock.
type RecordRepository struct {
	store portsrepo.DocumentStore
}

func NewRecordRepository(store portsrepo.DocumentStore) *RecordRepository {
	return &RecordRepository{store: store}
}

// Ensure RecordRepository implements the ports facade
var _ portsrepo.RecordRepositoryFacade = (*RecordRepository)(nil)

func (r *RecordRepository) FindRecordByID(ctx context.Context, parishID, recordID string) (*domain.SacramentalRecord, error) {
	records, err := r.loadRecords(ctx, parishID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].RecordID == recordID {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: record %s", apperrors.ErrNotFound, recordID)
}

// FindRecordByKey prefers the ACTIVE record matching the natural key. When
// only annulled records carry the key, the most recently updated one is
// returned so callers can distinguish "already annulled" from "never
// existed".
func (r *RecordRepository) FindRecordByKey(ctx context.Context, key domain.NaturalKey) (*domain.SacramentalRecord, error) {
	records, err := r.loadRecords(ctx, key.ParishID)
	if err != nil {
		return nil, err
	}
	return findByKey(records, key)
}

func (r *RecordRepository) ListRecordsByParish(ctx context.Context, parishID string, sacramentType *domain.SacramentType) ([]domain.SacramentalRecord, error) {
	records, err := r.loadRecords(ctx, parishID)
	if err != nil {
		return nil, err
	}
	if sacramentType == nil {
		return records, nil
	}
	filtered := make([]domain.SacramentalRecord, 0, len(records))
	for i := range records {
		if records[i].SacramentType == *sacramentType {
			filtered = append(filtered, records[i])
		}
	}
	return filtered, nil
}

func (r *RecordRepository) ApplyCorrection(ctx context.Context, original domain.SacramentalRecord, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error) {
	parishID := newRecord.ParishID
	recordKey := portsrepo.CollectionKey(portsrepo.EntityRecord, parishID)
	decreeKey := portsrepo.CollectionKey(portsrepo.EntityDecree, parishID)

	var persisted domain.SacramentalRecord
	err := r.store.Update(ctx, []string{recordKey, decreeKey}, func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error) {
		records, err := decodeRecords(collections[recordKey])
		if err != nil {
			return nil, err
		}

		// Re-check under the lock: a racing correction may have annulled the
		// original since the service read it.
		idx := -1
		for i := range records {
			if records[i].RecordID == original.RecordID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: record %s", apperrors.ErrNotFound, original.RecordID)
		}
		if records[idx].Status != domain.RecordActive {
			return nil, fmt.Errorf("%w: record %s", apperrors.ErrAlreadyAnnulled, original.RecordID)
		}

		prepared, err := prepareNewRecord(newRecord, records)
		if err != nil {
			return nil, err
		}

		records[idx].Status = domain.RecordAnnulled
		records[idx].ReplacedByRecordID = &prepared.RecordID
		records[idx].LastUpdatedAt = prepared.CreatedAt
		records[idx].LastUpdatedBy = prepared.CreatedBy
		records = append(records, prepared)

		decreeDoc, err := encodeDecree(decree)
		if err != nil {
			return nil, err
		}
		recordDocs, err := encodeRecords(records)
		if err != nil {
			return nil, err
		}

		persisted = prepared
		return map[string][]json.RawMessage{
			recordKey: recordDocs,
			decreeKey: append(collections[decreeKey], decreeDoc),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &persisted, nil
}

func (r *RecordRepository) ApplyReplacement(ctx context.Context, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error) {
	parishID := newRecord.ParishID
	recordKey := portsrepo.CollectionKey(portsrepo.EntityRecord, parishID)
	decreeKey := portsrepo.CollectionKey(portsrepo.EntityDecree, parishID)

	var persisted domain.SacramentalRecord
	err := r.store.Update(ctx, []string{recordKey, decreeKey}, func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error) {
		records, err := decodeRecords(collections[recordKey])
		if err != nil {
			return nil, err
		}

		prepared, err := prepareNewRecord(newRecord, records)
		if err != nil {
			return nil, err
		}
		records = append(records, prepared)

		decreeDoc, err := encodeDecree(decree)
		if err != nil {
			return nil, err
		}
		recordDocs, err := encodeRecords(records)
		if err != nil {
			return nil, err
		}

		persisted = prepared
		return map[string][]json.RawMessage{
			recordKey: recordDocs,
			decreeKey: append(collections[decreeKey], decreeDoc),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &persisted, nil
}

// AppendRecords persists confirmed import records. Duplicate detection
// re-runs against the live collection under the lock; colliding records are
// skipped, not failed, since the batch was classified before the lock was
// taken.
func (r *RecordRepository) AppendRecords(ctx context.Context, parishID string, newRecords []domain.SacramentalRecord) (int, []domain.NaturalKey, error) {
	recordKey := portsrepo.CollectionKey(portsrepo.EntityRecord, parishID)

	persisted := 0
	var skipped []domain.NaturalKey
	err := r.store.Update(ctx, []string{recordKey}, func(collections map[string][]json.RawMessage) (map[string][]json.RawMessage, error) {
		records, err := decodeRecords(collections[recordKey])
		if err != nil {
			return nil, err
		}

		var acceptedKeys []domain.NaturalKey
		for i := range newRecords {
			if recordkey.IsDuplicate(&newRecords[i], records, acceptedKeys) {
				skipped = append(skipped, recordkey.KeyOf(&newRecords[i]))
				continue
			}
			acceptedKeys = append(acceptedKeys, recordkey.KeyOf(&newRecords[i]))
			records = append(records, newRecords[i])
			persisted++
		}

		recordDocs, err := encodeRecords(records)
		if err != nil {
			return nil, err
		}
		return map[string][]json.RawMessage{recordKey: recordDocs}, nil
	})
	if err != nil {
		return 0, nil, err
	}
	return persisted, skipped, nil
}

// prepareNewRecord allocates the natural key when none was supplied and
// verifies uniqueness against the locked collection either way.
func prepareNewRecord(newRecord domain.SacramentalRecord, records []domain.SacramentalRecord) (domain.SacramentalRecord, error) {
	if newRecord.Book == "" && newRecord.Folio == "" && newRecord.Entry == "" {
		key := recordkey.NextInSequence(records, newRecord.ParishID, newRecord.SacramentType)
		newRecord.Book = key.Book
		newRecord.Folio = key.Folio
		newRecord.Entry = key.Entry
	}
	if recordkey.IsDuplicate(&newRecord, records, nil) {
		key := recordkey.KeyOf(&newRecord)
		return domain.SacramentalRecord{}, fmt.Errorf("%w: book %s folio %s entry %s", apperrors.ErrDuplicateKey, key.Book, key.Folio, key.Entry)
	}
	return newRecord, nil
}

func findByKey(records []domain.SacramentalRecord, key domain.NaturalKey) (*domain.SacramentalRecord, error) {
	var annulled *domain.SacramentalRecord
	for i := range records {
		if !recordkey.Equal(key, records[i].Key()) {
			continue
		}
		if records[i].Status == domain.RecordActive {
			return &records[i], nil
		}
		if annulled == nil || records[i].LastUpdatedAt.After(annulled.LastUpdatedAt) {
			annulled = &records[i]
		}
	}
	if annulled != nil {
		return annulled, nil
	}
	return nil, fmt.Errorf("%w: no record at book %s folio %s entry %s", apperrors.ErrNotFound, key.Book, key.Folio, key.Entry)
}

func (r *RecordRepository) loadRecords(ctx context.Context, parishID string) ([]domain.SacramentalRecord, error) {
	documents, err := r.store.Get(ctx, portsrepo.CollectionKey(portsrepo.EntityRecord, parishID))
	if err != nil {
		return nil, err
	}
	return decodeRecords(documents)
}

func decodeRecords(documents []json.RawMessage) ([]domain.SacramentalRecord, error) {
	records := make([]domain.SacramentalRecord, 0, len(documents))
	for _, doc := range documents {
		var m models.SacramentalRecord
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("corrupt record document: %w", err)
		}
		records = append(records, mapping.ToDomainRecord(m))
	}
	return records, nil
}

func encodeRecords(records []domain.SacramentalRecord) ([]json.RawMessage, error) {
	documents := make([]json.RawMessage, len(records))
	for i := range records {
		doc, err := json.Marshal(mapping.ToModelRecord(records[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to encode record %s: %w", records[i].RecordID, err)
		}
		documents[i] = doc
	}
	return documents, nil
}

func encodeDecree(decree domain.Decree) (json.RawMessage, error) {
	doc, err := json.Marshal(mapping.ToModelDecree(decree))
	if err != nil {
		return nil, fmt.Errorf("failed to encode decree %s: %w", decree.DecreeID, err)
	}
	return doc, nil
}
