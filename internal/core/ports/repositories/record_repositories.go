package repositories

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// RecordReader defines read operations for sacramental record data
type RecordReader interface {
	// FindRecordByID retrieves one record from a parish partition.
	FindRecordByID(ctx context.Context, parishID, recordID string) (*domain.SacramentalRecord, error)

	// FindRecordByKey locates the record matching the natural key: the ACTIVE
	// one when it exists, else the most recently annulled one so callers can
	// tell "already annulled" apart from "never existed". Absent entirely it
	// returns apperrors.ErrNotFound.
	FindRecordByKey(ctx context.Context, key domain.NaturalKey) (*domain.SacramentalRecord, error)

	// ListRecordsByParish retrieves all records of a parish, optionally
	// filtered by sacrament type.
	ListRecordsByParish(ctx context.Context, parishID string, sacramentType *domain.SacramentType) ([]domain.SacramentalRecord, error)
}

// RecordWriter defines write operations for sacramental record data
type RecordWriter interface {
	// ApplyCorrection persists a correction decree as one atomic unit: the
	// original flips to ANNULLED, the new record is appended, the decree is
	// appended, all under the parish collection lock. It re-checks that the
	// original is still active (apperrors.ErrAlreadyAnnulled) and that the new
	// key is unused (apperrors.ErrDuplicateKey) immediately before commit.
	// When the new record's book/folio/entry are empty, the next key in the
	// parish+sacrament sequence is allocated under the same lock.
	// The returned record is the new record with its final key.
	ApplyCorrection(ctx context.Context, original domain.SacramentalRecord, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error)

	// ApplyReplacement persists a replacement decree: the new record and the
	// decree are appended atomically, with the same key allocation and
	// uniqueness re-check as ApplyCorrection. No other record changes.
	ApplyReplacement(ctx context.Context, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error)

	// AppendRecords appends confirmed import records to a parish partition.
	// Duplicate detection re-runs against the live collection under the lock;
	// colliding records are returned as skipped, not errors.
	AppendRecords(ctx context.Context, parishID string, records []domain.SacramentalRecord) (persisted int, skipped []domain.NaturalKey, err error)
}

// RecordRepositoryFacade combines all record repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
