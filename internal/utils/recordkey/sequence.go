package recordkey

import (
	"strconv"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// NextInSequence allocates the next natural key for a new supplementary
// record. Assignment is monotonic per (parish, sacramentType): the highest
// numeric entry across all records of the sequence, annulled ones included,
// plus one, in that record's book and folio. Non-numeric entries are legacy
// artifacts and do not participate. An empty sequence starts at book 1,
// folio 1, entry 1.
//
// Callers must run this under the store lock for the parish collection and
// re-check uniqueness before commit; the function itself is pure.
func NextInSequence(existing []domain.SacramentalRecord, parishID string, sacramentType domain.SacramentType) domain.NaturalKey {
	maxEntry := 0
	book, folio := "1", "1"
	for i := range existing {
		rec := &existing[i]
		if rec.ParishID != parishID || rec.SacramentType != sacramentType {
			continue
		}
		n, err := strconv.Atoi(Canonical(rec.Key()).Entry)
		if err != nil {
			continue
		}
		if n > maxEntry {
			maxEntry = n
			book = rec.Book
			folio = rec.Folio
		}
	}
	return domain.NaturalKey{
		ParishID:      parishID,
		SacramentType: sacramentType,
		Book:          book,
		Folio:         folio,
		Entry:         strconv.Itoa(maxEntry + 1),
	}
}
