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
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

type TemplateServiceTestSuite struct {
	suite.Suite
	mockTemplateRepo *MockTemplateRepository
	service          portssvc.TemplateSvcFacade
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.mockTemplateRepo = new(MockTemplateRepository)
	suite.service = services.NewTemplateService(suite.mockTemplateRepo)
}

func (suite *TemplateServiceTestSuite) TestGetTemplateSet_UnconfiguredTenantGetsEmptySet() {
	ctx := context.Background()
	suite.mockTemplateRepo.On("FindTemplateSet", mock.Anything, testParishID).Return(nil, apperrors.ErrNotFound).Once()

	templates, err := suite.service.GetTemplateSet(ctx, testParishID)

	suite.Require().NoError(err)
	suite.Equal(testParishID, templates.ParishID)
	suite.Empty(templates.StandardTemplate)
}

func (suite *TemplateServiceTestSuite) TestPutTemplateSet_PreservesOriginalCreator() {
	ctx := context.Background()
	createdAt := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	previous := &domain.MarginalNoteTemplateSet{
		ParishID: testParishID,
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
			CreatedBy: "user-1",
		},
	}
	suite.mockTemplateRepo.On("FindTemplateSet", mock.Anything, testParishID).Return(previous, nil).Once()
	suite.mockTemplateRepo.On("SaveTemplateSet", mock.Anything, mock.MatchedBy(func(t domain.MarginalNoteTemplateSet) bool {
		return t.CreatedBy == "user-1" && t.CreatedAt.Equal(createdAt) && t.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	templates, err := suite.service.PutTemplateSet(ctx, testParishID, dto.PutTemplateSetRequest{
		StandardTemplate: "Corrected by decree [DECREE_NUMBER].",
	}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Corrected by decree [DECREE_NUMBER].", templates.StandardTemplate)
	suite.Equal("user-1", templates.CreatedBy)
	suite.mockTemplateRepo.AssertExpectations(suite.T())
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}
