package mapping

import (
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	"github.com/parishbooks/parish_registry_app/internal/models"
)

// ToModelConcept converts a domain AnnulmentConcept to a model AnnulmentConcept
func ToModelConcept(d domain.AnnulmentConcept) models.AnnulmentConcept {
	return models.AnnulmentConcept{
		ConceptID:      d.ConceptID,
		ParishID:       d.ParishID,
		Code:           d.Code,
		Description:    d.Description,
		IssuingOffice:  d.IssuingOffice,
		Category:       string(d.Category),
		NoteTemplateID: d.NoteTemplateID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConcept converts a model AnnulmentConcept to a domain AnnulmentConcept
func ToDomainConcept(m models.AnnulmentConcept) domain.AnnulmentConcept {
	return domain.AnnulmentConcept{
		ConceptID:      m.ConceptID,
		ParishID:       m.ParishID,
		Code:           m.Code,
		Description:    m.Description,
		IssuingOffice:  m.IssuingOffice,
		Category:       domain.DecreeCategory(m.Category),
		NoteTemplateID: m.NoteTemplateID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTemplateSet converts a domain MarginalNoteTemplateSet to its model shape
func ToModelTemplateSet(d domain.MarginalNoteTemplateSet) models.MarginalNoteTemplateSet {
	return models.MarginalNoteTemplateSet{
		ParishID:               d.ParishID,
		AnnulledRecordTemplate: d.AnnulledRecordTemplate,
		NewRecordTemplate:      d.NewRecordTemplate,
		ReplacementTemplate:    d.ReplacementTemplate,
		StandardTemplate:       d.StandardTemplate,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTemplateSet converts a model MarginalNoteTemplateSet to its domain shape
func ToDomainTemplateSet(m models.MarginalNoteTemplateSet) domain.MarginalNoteTemplateSet {
	return domain.MarginalNoteTemplateSet{
		ParishID:               m.ParishID,
		AnnulledRecordTemplate: m.AnnulledRecordTemplate,
		NewRecordTemplate:      m.NewRecordTemplate,
		ReplacementTemplate:    m.ReplacementTemplate,
		StandardTemplate:       m.StandardTemplate,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
