package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/core/services"
)

type NoteServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockRecordRepository
	mockDecreeRepo   *MockDecreeRepository
	mockConceptRepo  *MockConceptRepository
	mockTemplateRepo *MockTemplateRepository
	service          portssvc.NoteSvcFacade
}

func (suite *NoteServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockDecreeRepo = new(MockDecreeRepository)
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.mockTemplateRepo = new(MockTemplateRepository)
	suite.service = services.NewNoteService(suite.mockRecordRepo, suite.mockDecreeRepo, suite.mockConceptRepo, suite.mockTemplateRepo)
}

// pinnedNow keeps [EXPEDITION_DATE] deterministic across assertions.
var pinnedNow = time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)

const pinnedNowInWords = "the fifth day of May of the year two thousand twenty-five"

func (suite *NoteServiceTestSuite) noteCtx() portssvc.NoteContext {
	return portssvc.NoteContext{
		PriestName:       "Fr. Miguel Santos",
		ParishCity:       "Santa Rosa",
		ParishDepartment: "Copan",
		Now:              pinnedNow,
	}
}

func (suite *NoteServiceTestSuite) templates(set domain.MarginalNoteTemplateSet) {
	set.ParishID = testParishID
	suite.mockTemplateRepo.On("FindTemplateSet", mock.Anything, testParishID).Return(&set, nil).Once()
}

func (suite *NoteServiceTestSuite) plainRecord() *domain.SacramentalRecord {
	return &domain.SacramentalRecord{
		RecordID:      "rec-1",
		ParishID:      testParishID,
		SacramentType: domain.Baptism,
		Book:          "1",
		Folio:         "5",
		Entry:         "12",
		Status:        domain.RecordActive,
	}
}

func (suite *NoteServiceTestSuite) TestResolve_StandardTemplateWithExpeditionDate() {
	ctx := context.Background()
	record := suite.plainRecord()

	suite.templates(domain.MarginalNoteTemplateSet{
		StandardTemplate: "Certified on [EXPEDITION_DATE] by [PRIEST_NAME].",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrNotFound).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("Certified on "+pinnedNowInWords+" by Fr. Miguel Santos.", note)
}

func (suite *NoteServiceTestSuite) TestResolve_IsDeterministicForPinnedNow() {
	ctx := context.Background()
	record := suite.plainRecord()

	for i := 0; i < 2; i++ {
		suite.templates(domain.MarginalNoteTemplateSet{
			StandardTemplate: "Issued [EXPEDITION_DATE].",
		})
		suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrNotFound).Once()
	}

	first := suite.service.Resolve(ctx, record, suite.noteCtx())
	second := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal(first, second)
	suite.Equal("Issued "+pinnedNowInWords+".", first)
}

func (suite *NoteServiceTestSuite) TestResolve_AnnulledSideUsesAnnulledTemplate() {
	ctx := context.Background()
	newRecordID := "rec-2"
	record := suite.plainRecord()
	record.Status = domain.RecordAnnulled
	record.ReplacedByRecordID = &newRecordID

	suite.templates(domain.MarginalNoteTemplateSet{
		AnnulledRecordTemplate: "Annulled by decree [DECREE_NUMBER] of [DECREE_DATE]; see book [NEW_BOOK], folio [NEW_FOLIO], entry [NEW_ENTRY].",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, newRecordID).Return(&domain.Decree{
		DecreeID:     "d-1",
		DecreeNumber: "045-2025",
		DecreeDate:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Category:     domain.DecreeCorrection,
		ParishID:     testParishID,
		NewRecordID:  newRecordID,
	}, nil).Once()
	suite.mockRecordRepo.On("FindRecordByID", mock.Anything, testParishID, newRecordID).Return(&domain.SacramentalRecord{
		RecordID: newRecordID,
		ParishID: testParishID,
		Book:     "1",
		Folio:    "5",
		Entry:    "13",
	}, nil).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("Annulled by decree 045-2025 of 2025-06-10; see book 1, folio 5, entry 13.", note)
}

func (suite *NoteServiceTestSuite) TestResolve_NewSideUsesIssuingOfficeFromConcept() {
	ctx := context.Background()
	conceptID := "concept-1"
	record := suite.plainRecord()

	suite.templates(domain.MarginalNoteTemplateSet{
		NewRecordTemplate: "Replaces book [ORIGINAL_BOOK], folio [ORIGINAL_FOLIO], entry [ORIGINAL_ENTRY]. [ISSUING_OFFICE].",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(&domain.Decree{
		DecreeID:           "d-1",
		DecreeNumber:       "045-2025",
		DecreeDate:         time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Category:           domain.DecreeCorrection,
		AnnulmentConceptID: &conceptID,
		ParishID:           testParishID,
		OriginalRecordRef: &domain.NaturalKey{
			ParishID: testParishID, SacramentType: domain.Baptism, Book: "1", Folio: "5", Entry: "12",
		},
		NewRecordID: "rec-1",
	}, nil).Once()
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, conceptID).Return(&domain.AnnulmentConcept{
		ConceptID:     conceptID,
		IssuingOffice: "Diocesan Tribunal",
	}, nil).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("Replaces book 1, folio 5, entry 12. Diocesan Tribunal.", note)
}

func (suite *NoteServiceTestSuite) TestResolve_EmptyDecreeTemplateFallsDownChain() {
	ctx := context.Background()
	record := suite.plainRecord()
	record.MarginalNote = "baptized conditionally"

	// A decree applies, but its template is deliberately blank; the manual
	// note takes over.
	suite.templates(domain.MarginalNoteTemplateSet{
		NewRecordTemplate: "",
		StandardTemplate:  "standard text",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(&domain.Decree{
		DecreeID:    "d-1",
		Category:    domain.DecreeCorrection,
		ParishID:    testParishID,
		NewRecordID: "rec-1",
	}, nil).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("baptized conditionally. ", note)
}

func (suite *NoteServiceTestSuite) TestResolve_ManualNoteSentinelIgnored() {
	ctx := context.Background()
	record := suite.plainRecord()
	record.MarginalNote = "None"

	suite.templates(domain.MarginalNoteTemplateSet{
		StandardTemplate: "standard text",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrNotFound).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("standard text", note)
}

func (suite *NoteServiceTestSuite) TestResolve_ComposedFallbackWhenNothingConfigured() {
	ctx := context.Background()
	record := suite.plainRecord()
	record.CivilRegistrySerial = "RCS-100"
	record.CivilRegistryDate = "1990-04-01"

	suite.mockTemplateRepo.On("FindTemplateSet", mock.Anything, testParishID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrNotFound).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("Civil registry serial RCS-100 dated 1990-04-01. Issued in Santa Rosa, Copan, on "+pinnedNowInWords+". ", note)
}

func (suite *NoteServiceTestSuite) TestResolve_UnknownTokensLeftUntouched() {
	ctx := context.Background()
	record := suite.plainRecord()

	suite.templates(domain.MarginalNoteTemplateSet{
		StandardTemplate: "See [SOME_FUTURE_TOKEN] for details.",
	})
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrNotFound).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("See [SOME_FUTURE_TOKEN] for details.", note)
}

func (suite *NoteServiceTestSuite) TestResolve_NeverFailsOnLookupError() {
	ctx := context.Background()
	record := suite.plainRecord()
	record.MarginalNote = "manual entry"

	suite.mockTemplateRepo.On("FindTemplateSet", mock.Anything, testParishID).Return(nil, apperrors.ErrInternal).Once()
	suite.mockDecreeRepo.On("FindDecreeByNewRecordID", mock.Anything, testParishID, "rec-1").Return(nil, apperrors.ErrInternal).Once()

	note := suite.service.Resolve(ctx, record, suite.noteCtx())

	suite.Equal("manual entry. ", note)
}

func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
