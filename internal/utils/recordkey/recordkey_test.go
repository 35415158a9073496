package recordkey

import (
	"testing"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func record(parish string, sacrament domain.SacramentType, book, folio, entry string, status domain.RecordStatus) domain.SacramentalRecord {
	return domain.SacramentalRecord{
		RecordID:      "rec-" + book + folio + entry,
		ParishID:      parish,
		SacramentType: sacrament,
		Book:          book,
		Folio:         folio,
		Entry:         entry,
		Status:        status,
	}
}

func TestKeyOfTrimsWithoutNumericCasting(t *testing.T) {
	rec := record("parish-1", domain.Baptism, " 007 ", "05\t", " 12", domain.RecordActive)
	key := KeyOf(&rec)

	assert.Equal(t, "007", key.Book, "leading zeros must survive canonicalization")
	assert.Equal(t, "05", key.Folio)
	assert.Equal(t, "12", key.Entry)
}

func TestEqual(t *testing.T) {
	base := domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism, Book: "1", Folio: "5", Entry: "12"}

	tests := []struct {
		name  string
		other domain.NaturalKey
		want  bool
	}{
		{"identical", base, true},
		{"whitespace only differs", domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism, Book: " 1", Folio: "5 ", Entry: "12"}, true},
		{"different entry", domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism, Book: "1", Folio: "5", Entry: "13"}, false},
		{"different sacrament", domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Marriage, Book: "1", Folio: "5", Entry: "12"}, false},
		{"leading zero is a different key", domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism, Book: "01", Folio: "5", Entry: "12"}, false},
		{"missing folio never matches", domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism, Book: "1", Folio: "", Entry: "12"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(base, tt.other))
		})
	}
}

func TestEqualBothIncomplete(t *testing.T) {
	empty := domain.NaturalKey{ParishID: "parish-1", SacramentType: domain.Baptism}
	assert.False(t, Equal(empty, empty), "two incomplete keys must not match each other")
}

func TestIsDuplicateAgainstExistingActiveRecords(t *testing.T) {
	existing := []domain.SacramentalRecord{
		record("parish-1", domain.Baptism, "1", "5", "12", domain.RecordActive),
		record("parish-1", domain.Baptism, "1", "5", "13", domain.RecordAnnulled),
	}

	dup := record("parish-1", domain.Baptism, "1", "5", "12", domain.RecordActive)
	assert.True(t, IsDuplicate(&dup, existing, nil))

	// Annulled records keep their key but never block a new one.
	reuseOfAnnulled := record("parish-1", domain.Baptism, "1", "5", "13", domain.RecordActive)
	assert.False(t, IsDuplicate(&reuseOfAnnulled, existing, nil))
}

func TestIsDuplicateAgainstAcceptedBatchKeys(t *testing.T) {
	accepted := []domain.NaturalKey{
		{ParishID: "parish-1", SacramentType: domain.Baptism, Book: "2", Folio: "1", Entry: "1"},
	}

	dup := record("parish-1", domain.Baptism, "2", "1", "1", domain.RecordActive)
	assert.True(t, IsDuplicate(&dup, nil, accepted))
}

func TestIsDuplicatePartialKeyIsNeverADuplicate(t *testing.T) {
	existing := []domain.SacramentalRecord{
		record("parish-1", domain.Baptism, "1", "5", "12", domain.RecordActive),
	}

	partial := record("parish-1", domain.Baptism, "1", "", "12", domain.RecordActive)
	assert.False(t, IsDuplicate(&partial, existing, nil), "a partially filled legacy row is flagged invalid elsewhere, not as a duplicate")
}
