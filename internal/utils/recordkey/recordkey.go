// Package recordkey computes and compares the composite natural key
// (parish, sacrament type, book, folio, entry) that identifies a ledger entry.
// All operations are pure string work: values are trimmed, never numeric-cast,
// so legacy formats like "007" keep their leading zeros.
package recordkey

import (
	"strings"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// KeyOf produces the canonical natural key of a record. Absent key fields
// stay empty; they make the key a non-match, never an error, so partially
// filled legacy rows can be flagged instead of crashing a batch.
func KeyOf(record *domain.SacramentalRecord) domain.NaturalKey {
	return Canonical(record.Key())
}

// Canonical normalizes a natural key for comparison.
func Canonical(key domain.NaturalKey) domain.NaturalKey {
	return domain.NaturalKey{
		ParishID:      strings.TrimSpace(key.ParishID),
		SacramentType: domain.SacramentType(strings.TrimSpace(string(key.SacramentType))),
		Book:          strings.TrimSpace(key.Book),
		Folio:         strings.TrimSpace(key.Folio),
		Entry:         strings.TrimSpace(key.Entry),
	}
}

// Equal reports whether two keys match after canonicalization. A key with any
// empty book/folio/entry component never matches anything.
func Equal(a, b domain.NaturalKey) bool {
	ca, cb := Canonical(a), Canonical(b)
	if !complete(ca) || !complete(cb) {
		return false
	}
	return ca == cb
}

// IsDuplicate reports whether the candidate's natural key collides with an
// existing ACTIVE record or with one of the keys already accepted earlier in
// the same batch. Annulled records keep their key but never block a new one.
func IsDuplicate(candidate *domain.SacramentalRecord, existing []domain.SacramentalRecord, accepted []domain.NaturalKey) bool {
	key := KeyOf(candidate)
	if !complete(key) {
		return false
	}
	for i := range existing {
		if existing[i].Status != domain.RecordActive {
			continue
		}
		if Equal(key, existing[i].Key()) {
			return true
		}
	}
	for _, other := range accepted {
		if Equal(key, other) {
			return true
		}
	}
	return false
}

func complete(key domain.NaturalKey) bool {
	return key.Book != "" && key.Folio != "" && key.Entry != ""
}
