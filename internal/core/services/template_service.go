package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

type templateService struct {
	templateRepo portsrepo.TemplateRepository
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(templateRepo portsrepo.TemplateRepository) portssvc.TemplateSvcFacade {
	return &templateService{templateRepo: templateRepo}
}

var _ portssvc.TemplateSvcFacade = (*templateService)(nil)

// GetTemplateSet returns the tenant's current templates. A tenant that never
// saved a set gets an empty one rather than a not-found error, since the note
// engine treats empty templates as deliberately disabled.
func (s *templateService) GetTemplateSet(ctx context.Context, parishID string) (*domain.MarginalNoteTemplateSet, error) {
	templates, err := s.templateRepo.FindTemplateSet(ctx, parishID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.MarginalNoteTemplateSet{ParishID: parishID}, nil
		}
		return nil, fmt.Errorf("failed to load template set: %w", err)
	}
	return templates, nil
}

// PutTemplateSet replaces the tenant's templates wholesale. Templates are
// read fresh on every note resolution, so the change shows on all affected
// records immediately.
func (s *templateService) PutTemplateSet(ctx context.Context, parishID string, req dto.PutTemplateSetRequest, updaterUserID string) (*domain.MarginalNoteTemplateSet, error) {
	now := time.Now().UTC()
	templates := domain.MarginalNoteTemplateSet{
		ParishID:               parishID,
		AnnulledRecordTemplate: req.AnnulledRecordTemplate,
		NewRecordTemplate:      req.NewRecordTemplate,
		ReplacementTemplate:    req.ReplacementTemplate,
		StandardTemplate:       req.StandardTemplate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if previous, err := s.templateRepo.FindTemplateSet(ctx, parishID); err == nil {
		templates.CreatedAt = previous.CreatedAt
		templates.CreatedBy = previous.CreatedBy
	}

	if err := s.templateRepo.SaveTemplateSet(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save template set: %w", err)
	}
	return &templates, nil
}
