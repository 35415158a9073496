package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/core/services"
)

type ImportServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	service        portssvc.ImportSvcFacade
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.service = services.NewImportService(suite.mockRecordRepo, nil)
}

func legacyRow(book, folio, entry string) map[string]any {
	return map[string]any{
		"lib":  book,
		"fol":  folio,
		"num":  entry,
		"nom":  "MARIA",
		"ape":  "CASTILLO",
		"fnac": "1950-02-01",
		"lnac": "Gracias",
		"fcel": "1950-03-15",
		"min":  "Fr. Ortega",
		"pad":  "JOSE CASTILLO",
		"mad":  "ROSA MEJIA",
		"tun":  "1",
	}
}

func (suite *ImportServiceTestSuite) expectEmptyStore() {
	suite.mockRecordRepo.On("ListRecordsByParish", mock.Anything, testParishID, mock.Anything).Return([]domain.SacramentalRecord{}, nil).Once()
}

func (suite *ImportServiceTestSuite) TestReconcile_AllDistinctRowsAreValid() {
	ctx := context.Background()
	rows := make([]map[string]any, 5)
	for i := range rows {
		rows[i] = legacyRow("1", "1", fmt.Sprintf("%d", i+1))
	}

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, rows)

	suite.Require().NoError(err)
	suite.Len(batch.ValidNew, 5)
	suite.Empty(batch.Duplicates)
	suite.Empty(batch.Invalid)
	suite.Equal(5, batch.Total())
}

func (suite *ImportServiceTestSuite) TestReconcile_InBatchDuplicateFavorsFirstOccurrence() {
	ctx := context.Background()
	rows := []map[string]any{
		legacyRow("1", "1", "7"),
		legacyRow("1", "1", "7"),
	}
	rows[1]["nom"] = "OTHER"

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, rows)

	suite.Require().NoError(err)
	suite.Require().Len(batch.ValidNew, 1)
	suite.Require().Len(batch.Duplicates, 1)
	suite.Equal("MARIA", batch.ValidNew[0].FirstName)
	suite.Equal(2, batch.Duplicates[0].RowNumber)
	suite.Equal(2, batch.Total())
}

func (suite *ImportServiceTestSuite) TestReconcile_ExistingActiveRecordBlocksRow() {
	ctx := context.Background()
	rows := []map[string]any{legacyRow("1", "1", "7")}

	existing := []domain.SacramentalRecord{{
		RecordID:      "existing",
		ParishID:      testParishID,
		SacramentType: domain.Baptism,
		Book:          "1",
		Folio:         "1",
		Entry:         "7",
		Status:        domain.RecordActive,
	}}
	suite.mockRecordRepo.On("ListRecordsByParish", mock.Anything, testParishID, mock.Anything).Return(existing, nil).Once()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, rows)

	suite.Require().NoError(err)
	suite.Empty(batch.ValidNew)
	suite.Require().Len(batch.Duplicates, 1)
	suite.Equal(1, batch.Duplicates[0].RowNumber)
}

func (suite *ImportServiceTestSuite) TestReconcile_AnnulledRecordDoesNotBlockRow() {
	ctx := context.Background()
	rows := []map[string]any{legacyRow("1", "1", "7")}

	existing := []domain.SacramentalRecord{{
		RecordID:      "existing",
		ParishID:      testParishID,
		SacramentType: domain.Baptism,
		Book:          "1",
		Folio:         "1",
		Entry:         "7",
		Status:        domain.RecordAnnulled,
	}}
	suite.mockRecordRepo.On("ListRecordsByParish", mock.Anything, testParishID, mock.Anything).Return(existing, nil).Once()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, rows)

	suite.Require().NoError(err)
	suite.Len(batch.ValidNew, 1)
	suite.Empty(batch.Duplicates)
}

func (suite *ImportServiceTestSuite) TestReconcile_ExtendedUnionCodeRestoredAfterValidation() {
	ctx := context.Background()
	row := legacyRow("1", "1", "8")
	row["tun"] = "4"

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Require().Len(batch.ValidNew, 1)
	// The extended code passes validation under a mask but the stored value
	// is the true one.
	suite.Equal(4, batch.ValidNew[0].ParentalUnion)
}

func (suite *ImportServiceTestSuite) TestReconcile_UnionCodeOutsideKnownSetIsInvalid() {
	ctx := context.Background()
	row := legacyRow("1", "1", "8")
	row["tun"] = "9"

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Empty(batch.ValidNew)
	suite.Require().Len(batch.Invalid, 1)
	suite.Equal(1, batch.Invalid[0].RowNumber)
}

func (suite *ImportServiceTestSuite) TestReconcile_NonScalarFieldIsInvalid() {
	ctx := context.Background()
	row := legacyRow("1", "1", "9")
	row["pads"] = []any{"JUAN", "PEDRO"}

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Require().Len(batch.Invalid, 1)
	suite.Contains(batch.Invalid[0].Reason, "pads")
}

func (suite *ImportServiceTestSuite) TestReconcile_MissingKeyFieldIsInvalid() {
	ctx := context.Background()
	row := legacyRow("", "1", "9")

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Require().Len(batch.Invalid, 1)
	suite.Equal(1, batch.Invalid[0].RowNumber)
}

func (suite *ImportServiceTestSuite) TestReconcile_BirthPlaceAliasesConsultedInOrder() {
	ctx := context.Background()
	row := legacyRow("1", "1", "10")
	delete(row, "lnac")
	row["ciunac"] = "La Esperanza"

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Require().Len(batch.ValidNew, 1)
	suite.Equal("La Esperanza", batch.ValidNew[0].BirthPlace)
}

func (suite *ImportServiceTestSuite) TestReconcile_NumericKeyPartsKeepTextForm() {
	ctx := context.Background()
	row := legacyRow("007", "1", "10")

	suite.expectEmptyStore()

	batch, err := suite.service.Reconcile(ctx, testParishID, domain.Baptism, []map[string]any{row})

	suite.Require().NoError(err)
	suite.Require().Len(batch.ValidNew, 1)
	suite.Equal("007", batch.ValidNew[0].Book)
}

func (suite *ImportServiceTestSuite) TestConfirmImport_PersistsValidRows() {
	ctx := context.Background()
	rows := []map[string]any{
		legacyRow("1", "1", "1"),
		legacyRow("1", "1", "2"),
	}

	suite.expectEmptyStore()
	suite.mockRecordRepo.On("AppendRecords", mock.Anything, testParishID, mock.MatchedBy(func(records []domain.SacramentalRecord) bool {
		return len(records) == 2 && records[0].CreatedBy == "importer-1"
	})).Return(2, nil, nil).Once()

	resp, err := suite.service.ConfirmImport(ctx, testParishID, domain.Baptism, rows, "importer-1")

	suite.Require().NoError(err)
	suite.Equal(2, resp.Persisted)
	suite.Empty(resp.Duplicates)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestConfirmImport_SkippedKeysReportedAsDuplicates() {
	ctx := context.Background()
	rows := []map[string]any{legacyRow("1", "1", "1")}

	skippedKey := domain.NaturalKey{
		ParishID:      testParishID,
		SacramentType: domain.Baptism,
		Book:          "1",
		Folio:         "1",
		Entry:         "1",
	}

	suite.expectEmptyStore()
	// A record with the same key was committed between reconcile and confirm.
	suite.mockRecordRepo.On("AppendRecords", mock.Anything, testParishID, mock.Anything).Return(0, []domain.NaturalKey{skippedKey}, nil).Once()

	resp, err := suite.service.ConfirmImport(ctx, testParishID, domain.Baptism, rows, "importer-1")

	suite.Require().NoError(err)
	suite.Equal(0, resp.Persisted)
	suite.Require().Len(resp.Duplicates, 1)
	suite.Equal(1, resp.Duplicates[0].RowNumber)
	suite.Equal(skippedKey, resp.Duplicates[0].Key)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
