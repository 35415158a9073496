package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/core/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

type ConceptServiceTestSuite struct {
	suite.Suite
	mockConceptRepo *MockConceptRepository
	mockDecreeRepo  *MockDecreeRepository
	service         portssvc.ConceptSvcFacade
}

func (suite *ConceptServiceTestSuite) SetupTest() {
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.mockDecreeRepo = new(MockDecreeRepository)
	suite.service = services.NewConceptService(suite.mockConceptRepo, suite.mockDecreeRepo)
}

func conceptWithCode(code string) domain.AnnulmentConcept {
	return domain.AnnulmentConcept{
		ConceptID: "concept-" + code,
		ParishID:  testParishID,
		Code:      code,
		Category:  domain.DecreeCorrection,
	}
}

func (suite *ConceptServiceTestSuite) TestCreateConcept_Success() {
	ctx := context.Background()
	req := dto.CreateConceptRequest{
		Code:        "ERR-NAME",
		Description: "Clerical error in the recorded name",
		Category:    "CORRECTION",
	}

	suite.mockConceptRepo.On("SaveConcept", mock.Anything, testParishID, mock.MatchedBy(func(c domain.AnnulmentConcept) bool {
		return c.Code == "ERR-NAME" && c.ConceptID != "" && c.CreatedBy == "user-1"
	})).Return(nil).Once()

	concept, err := suite.service.CreateConcept(ctx, testParishID, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("ERR-NAME", concept.Code)
	suite.Equal(domain.DecreeCorrection, concept.Category)
	suite.NotEmpty(concept.ConceptID)
	suite.mockConceptRepo.AssertExpectations(suite.T())
}

func (suite *ConceptServiceTestSuite) TestListConcepts_NaturalOrderByCode() {
	ctx := context.Background()
	stored := []domain.AnnulmentConcept{
		conceptWithCode("C10"),
		conceptWithCode("C2"),
		conceptWithCode("C1"),
	}
	suite.mockConceptRepo.On("ListConcepts", mock.Anything, testParishID, (*domain.DecreeCategory)(nil)).Return(stored, nil).Once()

	concepts, err := suite.service.ListConcepts(ctx, testParishID, nil)

	suite.Require().NoError(err)
	suite.Require().Len(concepts, 3)
	suite.Equal("C1", concepts[0].Code)
	suite.Equal("C2", concepts[1].Code)
	suite.Equal("C10", concepts[2].Code)
}

func (suite *ConceptServiceTestSuite) TestListConcepts_EmptyCatalog() {
	ctx := context.Background()
	suite.mockConceptRepo.On("ListConcepts", mock.Anything, testParishID, (*domain.DecreeCategory)(nil)).Return([]domain.AnnulmentConcept{}, nil).Once()

	concepts, err := suite.service.ListConcepts(ctx, testParishID, nil)

	suite.Require().NoError(err)
	suite.NotNil(concepts)
	suite.Empty(concepts)
}

func (suite *ConceptServiceTestSuite) TestUpdateConcept_PartialFields() {
	ctx := context.Background()
	existing := conceptWithCode("C1")
	existing.Description = "old description"
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, existing.ConceptID).Return(&existing, nil).Once()

	newDescription := "Amended wording"
	suite.mockConceptRepo.On("UpdateConcept", mock.Anything, testParishID, mock.MatchedBy(func(c domain.AnnulmentConcept) bool {
		return c.Description == newDescription && c.Code == "C1" && c.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateConcept(ctx, testParishID, existing.ConceptID, dto.UpdateConceptRequest{Description: &newDescription}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(newDescription, updated.Description)
	suite.mockConceptRepo.AssertExpectations(suite.T())
}

func (suite *ConceptServiceTestSuite) TestUpdateConcept_NoFieldsIsNoOp() {
	ctx := context.Background()
	existing := conceptWithCode("C1")
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, existing.ConceptID).Return(&existing, nil).Once()

	updated, err := suite.service.UpdateConcept(ctx, testParishID, existing.ConceptID, dto.UpdateConceptRequest{}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("C1", updated.Code)
	suite.mockConceptRepo.AssertNotCalled(suite.T(), "UpdateConcept", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConceptServiceTestSuite) TestDeleteConcept_BlockedByDecreeReferences() {
	ctx := context.Background()
	existing := conceptWithCode("C1")
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, existing.ConceptID).Return(&existing, nil).Once()
	suite.mockDecreeRepo.On("CountDecreesByConcept", mock.Anything, testParishID, existing.ConceptID).Return(2, nil).Once()

	err := suite.service.DeleteConcept(ctx, testParishID, existing.ConceptID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferencedEntity)
	suite.mockConceptRepo.AssertNotCalled(suite.T(), "DeleteConcept", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConceptServiceTestSuite) TestDeleteConcept_Success() {
	ctx := context.Background()
	existing := conceptWithCode("C1")
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, existing.ConceptID).Return(&existing, nil).Once()
	suite.mockDecreeRepo.On("CountDecreesByConcept", mock.Anything, testParishID, existing.ConceptID).Return(0, nil).Once()
	suite.mockConceptRepo.On("DeleteConcept", mock.Anything, testParishID, existing.ConceptID).Return(nil).Once()

	err := suite.service.DeleteConcept(ctx, testParishID, existing.ConceptID)

	suite.Require().NoError(err)
	suite.mockConceptRepo.AssertExpectations(suite.T())
}

func (suite *ConceptServiceTestSuite) TestDeleteConcept_NotFound() {
	ctx := context.Background()
	suite.mockConceptRepo.On("FindConceptByID", mock.Anything, testParishID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteConcept(ctx, testParishID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDecreeRepo.AssertNotCalled(suite.T(), "CountDecreesByConcept", mock.Anything, mock.Anything, mock.Anything)
}

func TestConceptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConceptServiceTestSuite))
}
