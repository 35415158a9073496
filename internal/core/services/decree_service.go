package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
	"github.com/parishbooks/parish_registry_app/internal/metrics"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
	"github.com/parishbooks/parish_registry_app/internal/utils/recordkey"
)

const dateLayout = "2006-01-02"

// decreeService orchestrates the correction and replacement workflows.
// A record's status moves one way only: ACTIVE -> ANNULLED via a correction
// decree, and record creation via either decree type. There is no un-annul.
type decreeService struct {
	recordRepo  portsrepo.RecordRepositoryFacade
	decreeRepo  portsrepo.DecreeRepositoryFacade
	conceptRepo portsrepo.ConceptReader
	coordinator *DualWriteCoordinator
	metrics     *metrics.Metrics
}

// NewDecreeService creates a new DecreeService.
func NewDecreeService(recordRepo portsrepo.RecordRepositoryFacade, decreeRepo portsrepo.DecreeRepositoryFacade, conceptRepo portsrepo.ConceptReader, coordinator *DualWriteCoordinator, m *metrics.Metrics) portssvc.DecreeSvcFacade {
	return &decreeService{
		recordRepo:  recordRepo,
		decreeRepo:  decreeRepo,
		conceptRepo: conceptRepo,
		coordinator: coordinator,
		metrics:     m,
	}
}

var _ portssvc.DecreeSvcFacade = (*decreeService)(nil)

// IssueCorrection annuls the record matching the original key and creates
// its linked replacement. Both records and the decree are persisted as one
// atomic unit; a partially applied correction is never observable.
func (s *decreeService) IssueCorrection(ctx context.Context, parishID string, req dto.CorrectionDecreeRequest, creatorUserID string) (*dto.DecreeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	verrs := &apperrors.ValidationErrors{}
	decreeDate := s.validateDecreeHead(ctx, parishID, req.DecreeNumber, req.DecreeDate, req.AnnulmentConceptID, domain.DecreeCorrection, verrs)
	sacramentType := validateSacramentType(req.OriginalKey.SacramentType, verrs)
	celebrationDate := validateRecordFields(req.NewRecord, sacramentType, verrs)
	if verrs.HasErrors() {
		return nil, verrs
	}

	originalKey := recordkey.Canonical(domain.NaturalKey{
		ParishID:      parishID,
		SacramentType: sacramentType,
		Book:          req.OriginalKey.Book,
		Folio:         req.OriginalKey.Folio,
		Entry:         req.OriginalKey.Entry,
	})

	original, err := s.recordRepo.FindRecordByKey(ctx, originalKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Correction target not found", slog.String("parish_id", parishID), slog.String("book", originalKey.Book), slog.String("folio", originalKey.Folio), slog.String("entry", originalKey.Entry))
		}
		return nil, err
	}
	if original.Status == domain.RecordAnnulled {
		logger.Warn("Correction target already annulled", slog.String("record_id", original.RecordID))
		return nil, fmt.Errorf("%w: record %s", apperrors.ErrAlreadyAnnulled, original.RecordID)
	}

	now := time.Now().UTC()
	newRecord := buildRecord(parishID, sacramentType, req.NewRecord, celebrationDate, creatorUserID, now)
	newRecord.ReplacesRecordID = &original.RecordID

	decree := domain.Decree{
		DecreeID:           uuid.NewString(),
		DecreeNumber:       req.DecreeNumber,
		DecreeDate:         decreeDate,
		Category:           domain.DecreeCorrection,
		AnnulmentConceptID: optionalID(req.AnnulmentConceptID),
		OriginalRecordRef:  &originalKey,
		NewRecordID:        newRecord.RecordID,
		ParishID:           parishID,
		CreatedBy:          creatorUserID,
		CreatedAt:          now,
	}

	// The repository re-checks the original is still active and the new key
	// unused under the collection lock, so two racing corrections resolve
	// deterministically: one succeeds, the other fails AlreadyAnnulled.
	persisted, err := s.recordRepo.ApplyCorrection(ctx, *original, newRecord, decree)
	if err != nil {
		logger.Error("Failed to apply correction decree", slog.String("error", err.Error()), slog.String("parish_id", parishID))
		return nil, err
	}

	original.Status = domain.RecordAnnulled
	original.ReplacedByRecordID = &persisted.RecordID
	original.LastUpdatedAt = now
	original.LastUpdatedBy = creatorUserID

	if s.metrics != nil {
		s.metrics.IncrementDecreesIssued(string(domain.DecreeCorrection))
	}
	logger.Info("Correction decree issued", slog.String("decree_id", decree.DecreeID), slog.String("annulled_record_id", original.RecordID), slog.String("new_record_id", persisted.RecordID))

	resp := &dto.DecreeResponse{
		Decree:    dto.ToDecreeView(&decree),
		NewRecord: dto.ToRecordResponse(persisted, ""),
	}
	originalResp := dto.ToRecordResponse(original, "")
	resp.OriginalRecord = &originalResp

	s.publish(ctx, decree, *persisted, resp)
	return resp, nil
}

// IssueReplacement creates a supplementary record where no original exists
// to annul (lost or destroyed book). No other record changes status.
func (s *decreeService) IssueReplacement(ctx context.Context, parishID string, req dto.ReplacementDecreeRequest, creatorUserID string) (*dto.DecreeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	verrs := &apperrors.ValidationErrors{}
	decreeDate := s.validateDecreeHead(ctx, parishID, req.DecreeNumber, req.DecreeDate, req.AnnulmentConceptID, domain.DecreeReplacement, verrs)
	sacramentType := validateSacramentType(req.SacramentType, verrs)
	celebrationDate := validateRecordFields(req.NewRecord, sacramentType, verrs)
	if verrs.HasErrors() {
		return nil, verrs
	}

	now := time.Now().UTC()
	newRecord := buildRecord(parishID, sacramentType, req.NewRecord, celebrationDate, creatorUserID, now)

	decree := domain.Decree{
		DecreeID:           uuid.NewString(),
		DecreeNumber:       req.DecreeNumber,
		DecreeDate:         decreeDate,
		Category:           domain.DecreeReplacement,
		AnnulmentConceptID: optionalID(req.AnnulmentConceptID),
		NewRecordID:        newRecord.RecordID,
		ParishID:           parishID,
		CreatedBy:          creatorUserID,
		CreatedAt:          now,
	}

	persisted, err := s.recordRepo.ApplyReplacement(ctx, newRecord, decree)
	if err != nil {
		logger.Error("Failed to apply replacement decree", slog.String("error", err.Error()), slog.String("parish_id", parishID))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementDecreesIssued(string(domain.DecreeReplacement))
	}
	logger.Info("Replacement decree issued", slog.String("decree_id", decree.DecreeID), slog.String("new_record_id", persisted.RecordID))

	resp := &dto.DecreeResponse{
		Decree:    dto.ToDecreeView(&decree),
		NewRecord: dto.ToRecordResponse(persisted, ""),
	}

	s.publish(ctx, decree, *persisted, resp)
	return resp, nil
}

func (s *decreeService) GetDecree(ctx context.Context, tenantID, decreeID string) (*dto.DecreeView, error) {
	decree, err := s.decreeRepo.FindDecreeByID(ctx, tenantID, decreeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find decree %s: %w", decreeID, err)
	}
	view := dto.ToDecreeView(decree)
	return &view, nil
}

func (s *decreeService) ListDecrees(ctx context.Context, tenantID string) (*dto.ListDecreesResponse, error) {
	decrees, err := s.decreeRepo.ListDecreesByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decrees: %w", err)
	}
	views := make([]dto.DecreeView, len(decrees))
	for i := range decrees {
		views[i] = dto.ToDecreeView(&decrees[i])
	}
	return &dto.ListDecreesResponse{Decrees: views}, nil
}

// publish runs the dual-write leg. A notification failure surfaces as a
// warning on the response; the decree itself has already succeeded.
func (s *decreeService) publish(ctx context.Context, decree domain.Decree, record domain.SacramentalRecord, resp *dto.DecreeResponse) {
	if s.coordinator == nil {
		return
	}
	warning, err := s.coordinator.Publish(ctx, decree, record)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Chancery replication failed after parish commit; publish can be retried", slog.String("decree_id", decree.DecreeID), slog.String("error", err.Error()))
		resp.Warning = fmt.Sprintf("decree persisted but chancery replication failed: %v", err)
		return
	}
	if warning != nil {
		resp.Warning = warning.Error()
	}
}

// validateDecreeHead checks the decree-level inputs and resolves the concept
// reference. All problems are aggregated; nothing is written on failure.
func (s *decreeService) validateDecreeHead(ctx context.Context, tenantID, decreeNumber, decreeDate, conceptID string, category domain.DecreeCategory, verrs *apperrors.ValidationErrors) time.Time {
	if decreeNumber == "" {
		verrs.Add("decreeNumber", "is required")
	}
	date := parseDateField("decreeDate", decreeDate, true, verrs)

	if conceptID != "" {
		concept, err := s.conceptRepo.FindConceptByID(ctx, tenantID, conceptID)
		if err != nil {
			verrs.Add("annulmentConceptID", "unknown annulment concept")
		} else if concept.Category != category {
			verrs.Add("annulmentConceptID", fmt.Sprintf("concept %s is catalogued for %s decrees", concept.Code, concept.Category))
		}
	} else if category == domain.DecreeCorrection {
		verrs.Add("annulmentConceptID", "is required for correction decrees")
	}
	return date
}

func validateSacramentType(raw string, verrs *apperrors.ValidationErrors) domain.SacramentType {
	switch domain.SacramentType(raw) {
	case domain.Baptism, domain.Confirmation, domain.Marriage:
		return domain.SacramentType(raw)
	default:
		verrs.Add("sacramentType", fmt.Sprintf("unknown sacrament type %q", raw))
		return ""
	}
}

// validateRecordFields checks the user-entered field set for the new record
// and returns the parsed celebration date.
func validateRecordFields(fields dto.RecordFields, sacramentType domain.SacramentType, verrs *apperrors.ValidationErrors) time.Time {
	if fields.FirstName == "" {
		verrs.Add("newRecord.firstName", "is required")
	}
	if fields.LastName == "" {
		verrs.Add("newRecord.lastName", "is required")
	}
	date := parseDateField("newRecord.celebrationDate", fields.CelebrationDate, true, verrs)

	if fields.ParentalUnion < 0 || fields.ParentalUnion > 5 {
		verrs.Add("newRecord.parentalUnion", fmt.Sprintf("code %d outside the known set 0-5", fields.ParentalUnion))
	}
	if sacramentType == domain.Marriage && fields.SpouseName == "" {
		verrs.Add("newRecord.spouseName", "is required for marriage records")
	}

	// A partially supplied explicit key would be ambiguous: either the parish
	// lets the allocator assign all three parts, or the chancery supplies all
	// three.
	supplied := 0
	for _, part := range []string{fields.Book, fields.Folio, fields.Entry} {
		if part != "" {
			supplied++
		}
	}
	if supplied != 0 && supplied != 3 {
		verrs.Add("newRecord.book", "book, folio and entry must be supplied together or all left empty")
	}

	return date
}

func parseDateField(field, value string, required bool, verrs *apperrors.ValidationErrors) time.Time {
	if value == "" {
		if required {
			verrs.Add(field, "is required")
		}
		return time.Time{}
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		verrs.Add(field, fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", value))
		return time.Time{}
	}
	return date
}

func buildRecord(parishID string, sacramentType domain.SacramentType, fields dto.RecordFields, celebrationDate time.Time, creatorUserID string, now time.Time) domain.SacramentalRecord {
	return domain.SacramentalRecord{
		RecordID:            uuid.NewString(),
		ParishID:            parishID,
		SacramentType:       sacramentType,
		Book:                fields.Book,
		Folio:               fields.Folio,
		Entry:               fields.Entry,
		FirstName:           fields.FirstName,
		LastName:            fields.LastName,
		BirthDate:           fields.BirthDate,
		BirthPlace:          fields.BirthPlace,
		CelebrationDate:     celebrationDate,
		MinisterName:        fields.MinisterName,
		FatherName:          fields.FatherName,
		MotherName:          fields.MotherName,
		SpouseName:          fields.SpouseName,
		Godparents:          fields.Godparents,
		Witnesses:           fields.Witnesses,
		ParentalUnion:       fields.ParentalUnion,
		CivilRegistrySerial: fields.CivilRegistrySerial,
		CivilRegistryDate:   fields.CivilRegistryDate,
		Status:              domain.RecordActive,
		MarginalNote:        fields.MarginalNote,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
