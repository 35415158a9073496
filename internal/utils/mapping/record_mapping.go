package mapping

import (
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/models"
)

// ToModelRecord converts a domain SacramentalRecord to a model SacramentalRecord
func ToModelRecord(d domain.SacramentalRecord) models.SacramentalRecord {
	return models.SacramentalRecord{
		RecordID:            d.RecordID,
		ParishID:            d.ParishID,
		SacramentType:       string(d.SacramentType),
		Book:                d.Book,
		Folio:               d.Folio,
		Entry:               d.Entry,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		BirthDate:           d.BirthDate,
		BirthPlace:          d.BirthPlace,
		CelebrationDate:     d.CelebrationDate,
		MinisterName:        d.MinisterName,
		FatherName:          d.FatherName,
		MotherName:          d.MotherName,
		SpouseName:          d.SpouseName,
		Godparents:          d.Godparents,
		Witnesses:           d.Witnesses,
		ParentalUnion:       d.ParentalUnion,
		CivilRegistrySerial: d.CivilRegistrySerial,
		CivilRegistryDate:   d.CivilRegistryDate,
		Status:              models.RecordStatus(d.Status),
		MarginalNote:        d.MarginalNote,
		ReplacesRecordID:    d.ReplacesRecordID,
		ReplacedByRecordID:  d.ReplacedByRecordID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecord converts a model SacramentalRecord to a domain SacramentalRecord
func ToDomainRecord(m models.SacramentalRecord) domain.SacramentalRecord {
	return domain.SacramentalRecord{
		RecordID:            m.RecordID,
		ParishID:            m.ParishID,
		SacramentType:       domain.SacramentType(m.SacramentType),
		Book:                m.Book,
		Folio:               m.Folio,
		Entry:               m.Entry,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		BirthDate:           m.BirthDate,
		BirthPlace:          m.BirthPlace,
		CelebrationDate:     m.CelebrationDate,
		MinisterName:        m.MinisterName,
		FatherName:          m.FatherName,
		MotherName:          m.MotherName,
		SpouseName:          m.SpouseName,
		Godparents:          m.Godparents,
		Witnesses:           m.Witnesses,
		ParentalUnion:       m.ParentalUnion,
		CivilRegistrySerial: m.CivilRegistrySerial,
		CivilRegistryDate:   m.CivilRegistryDate,
		Status:              domain.RecordStatus(m.Status),
		MarginalNote:        m.MarginalNote,
		ReplacesRecordID:    m.ReplacesRecordID,
		ReplacedByRecordID:  m.ReplacedByRecordID,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecords converts a slice of model records.
func ToDomainRecords(ms []models.SacramentalRecord) []domain.SacramentalRecord {
	out := make([]domain.SacramentalRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRecord(m)
	}
	return out
}
