package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
)

// conceptService manages the tenant-scoped catalog of annulment concepts.
type conceptService struct {
	conceptRepo portsrepo.ConceptRepositoryFacade
	decreeRepo  portsrepo.DecreeReader
}

// NewConceptService creates a new ConceptService.
func NewConceptService(conceptRepo portsrepo.ConceptRepositoryFacade, decreeRepo portsrepo.DecreeReader) portssvc.ConceptSvcFacade {
	return &conceptService{conceptRepo: conceptRepo, decreeRepo: decreeRepo}
}

var _ portssvc.ConceptSvcFacade = (*conceptService)(nil)

func (s *conceptService) CreateConcept(ctx context.Context, tenantID string, req dto.CreateConceptRequest, creatorUserID string) (*domain.AnnulmentConcept, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	concept := domain.AnnulmentConcept{
		ConceptID:      uuid.NewString(),
		ParishID:       tenantID,
		Code:           req.Code,
		Description:    req.Description,
		IssuingOffice:  req.IssuingOffice,
		Category:       domain.DecreeCategory(req.Category),
		NoteTemplateID: req.NoteTemplateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.conceptRepo.SaveConcept(ctx, tenantID, concept); err != nil {
		logger.Error("Failed to save annulment concept", slog.String("error", err.Error()), slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to create concept: %w", err)
	}

	logger.Info("Annulment concept created", slog.String("concept_id", concept.ConceptID), slog.String("code", concept.Code))
	return &concept, nil
}

func (s *conceptService) GetConceptByID(ctx context.Context, tenantID, conceptID string) (*domain.AnnulmentConcept, error) {
	concept, err := s.conceptRepo.FindConceptByID(ctx, tenantID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get concept %s: %w", conceptID, err)
	}
	return concept, nil
}

// ListConcepts returns the catalog ordered by code with numeric-aware
// collation, so "C2" sorts before "C10".
func (s *conceptService) ListConcepts(ctx context.Context, tenantID string, category *domain.DecreeCategory) ([]domain.AnnulmentConcept, error) {
	concepts, err := s.conceptRepo.ListConcepts(ctx, tenantID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}

	// collate.Collator is not safe for concurrent use; build one per call.
	coll := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(concepts, func(i, j int) bool {
		return coll.CompareString(concepts[i].Code, concepts[j].Code) < 0
	})

	if concepts == nil {
		return []domain.AnnulmentConcept{}, nil
	}
	return concepts, nil
}

func (s *conceptService) UpdateConcept(ctx context.Context, tenantID, conceptID string, req dto.UpdateConceptRequest, updaterUserID string) (*domain.AnnulmentConcept, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	concept, err := s.conceptRepo.FindConceptByID(ctx, tenantID, conceptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Concept not found for update", slog.String("concept_id", conceptID), slog.String("tenant_id", tenantID))
		}
		return nil, err
	}

	updated := false
	if req.Code != nil {
		concept.Code = *req.Code
		updated = true
	}
	if req.Description != nil {
		concept.Description = *req.Description
		updated = true
	}
	if req.IssuingOffice != nil {
		concept.IssuingOffice = *req.IssuingOffice
		updated = true
	}
	if req.Category != nil {
		concept.Category = domain.DecreeCategory(*req.Category)
		updated = true
	}
	if req.NoteTemplateID != nil {
		concept.NoteTemplateID = *req.NoteTemplateID
		updated = true
	}

	if !updated {
		return concept, nil
	}

	concept.LastUpdatedAt = time.Now().UTC()
	concept.LastUpdatedBy = updaterUserID

	if err := s.conceptRepo.UpdateConcept(ctx, tenantID, *concept); err != nil {
		logger.Error("Failed to update concept", slog.String("error", err.Error()), slog.String("concept_id", conceptID))
		return nil, fmt.Errorf("failed to update concept: %w", err)
	}

	return concept, nil
}

// DeleteConcept removes a concept from the catalog. The store has no foreign
// keys, so the decree reference check is made explicitly here.
func (s *conceptService) DeleteConcept(ctx context.Context, tenantID, conceptID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.conceptRepo.FindConceptByID(ctx, tenantID, conceptID); err != nil {
		return err
	}

	refs, err := s.decreeRepo.CountDecreesByConcept(ctx, tenantID, conceptID)
	if err != nil {
		logger.Error("Failed to count decree references for concept delete", slog.String("error", err.Error()), slog.String("concept_id", conceptID))
		return fmt.Errorf("failed to check decree references: %w", err)
	}
	if refs > 0 {
		logger.Warn("Concept delete blocked by decree references", slog.String("concept_id", conceptID), slog.Int("references", refs))
		return fmt.Errorf("%w: %d decree(s) reference concept %s", apperrors.ErrReferencedEntity, refs, conceptID)
	}

	if err := s.conceptRepo.DeleteConcept(ctx, tenantID, conceptID); err != nil {
		logger.Error("Failed to delete concept", slog.String("error", err.Error()), slog.String("concept_id", conceptID))
		return fmt.Errorf("failed to delete concept: %w", err)
	}

	logger.Info("Annulment concept deleted", slog.String("concept_id", conceptID), slog.String("tenant_id", tenantID))
	return nil
}
