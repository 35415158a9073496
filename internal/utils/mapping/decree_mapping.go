package mapping

import (
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/models"
)

// ToModelDecree converts a domain Decree to a model Decree
func ToModelDecree(d domain.Decree) models.Decree {
	var ref *models.NaturalKeyRef
	if d.OriginalRecordRef != nil {
		ref = &models.NaturalKeyRef{
			ParishID:      d.OriginalRecordRef.ParishID,
			SacramentType: string(d.OriginalRecordRef.SacramentType),
			Book:          d.OriginalRecordRef.Book,
			Folio:         d.OriginalRecordRef.Folio,
			Entry:         d.OriginalRecordRef.Entry,
		}
	}
	return models.Decree{
		DecreeID:           d.DecreeID,
		DecreeNumber:       d.DecreeNumber,
		DecreeDate:         d.DecreeDate,
		Category:           string(d.Category),
		AnnulmentConceptID: d.AnnulmentConceptID,
		OriginalRecordRef:  ref,
		NewRecordID:        d.NewRecordID,
		ParishID:           d.ParishID,
		CreatedBy:          d.CreatedBy,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainDecree converts a model Decree to a domain Decree
func ToDomainDecree(m models.Decree) domain.Decree {
	var ref *domain.NaturalKey
	if m.OriginalRecordRef != nil {
		ref = &domain.NaturalKey{
			ParishID:      m.OriginalRecordRef.ParishID,
			SacramentType: domain.SacramentType(m.OriginalRecordRef.SacramentType),
			Book:          m.OriginalRecordRef.Book,
			Folio:         m.OriginalRecordRef.Folio,
			Entry:         m.OriginalRecordRef.Entry,
		}
	}
	return domain.Decree{
		DecreeID:           m.DecreeID,
		DecreeNumber:       m.DecreeNumber,
		DecreeDate:         m.DecreeDate,
		Category:           domain.DecreeCategory(m.Category),
		AnnulmentConceptID: m.AnnulmentConceptID,
		OriginalRecordRef:  ref,
		NewRecordID:        m.NewRecordID,
		ParishID:           m.ParishID,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
	}
}

// ToDomainDecrees converts a slice of model decrees.
func ToDomainDecrees(ms []models.Decree) []domain.Decree {
	out := make([]domain.Decree, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDecree(m)
	}
	return out
}
