package services

import (
	"context"
	"fmt"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// recordService serves record reads. Marginal notes are not stored resolved;
// every read renders them from the tenant's current templates so a template
// edit retroactively reshapes what all affected records display.
type recordService struct {
	recordRepo portsrepo.RecordReader
	noteSvc    portssvc.NoteSvcFacade
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo portsrepo.RecordReader, noteSvc portssvc.NoteSvcFacade) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: recordRepo, noteSvc: noteSvc}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

func (s *recordService) GetRecord(ctx context.Context, parishID, recordID string, noteCtx portssvc.NoteContext) (*dto.RecordResponse, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, parishID, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to find record %s: %w", recordID, err)
	}
	resp := dto.ToRecordResponse(record, s.noteSvc.Resolve(ctx, record, noteCtx))
	return &resp, nil
}

func (s *recordService) ListRecords(ctx context.Context, parishID string, sacramentType *domain.SacramentType, noteCtx portssvc.NoteContext) (*dto.ListRecordsResponse, error) {
	records, err := s.recordRepo.ListRecordsByParish(ctx, parishID, sacramentType)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	responses := make([]dto.RecordResponse, len(records))
	for i := range records {
		responses[i] = dto.ToRecordResponse(&records[i], s.noteSvc.Resolve(ctx, &records[i], noteCtx))
	}
	return &dto.ListRecordsResponse{Records: responses}, nil
}
