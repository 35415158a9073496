package services

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// DecreeSvcFacade orchestrates the two decree workflows and decree reads.
type DecreeSvcFacade interface {
	// IssueCorrection annuls the record matching the original key and creates
	// its linked replacement, atomically. The response may carry a warning
	// when the notification leg failed after the writes succeeded.
	IssueCorrection(ctx context.Context, parishID string, req dto.CorrectionDecreeRequest, creatorUserID string) (*dto.DecreeResponse, error)

	// IssueReplacement creates a supplementary record with no original to
	// annul.
	IssueReplacement(ctx context.Context, parishID string, req dto.ReplacementDecreeRequest, creatorUserID string) (*dto.DecreeResponse, error)

	GetDecree(ctx context.Context, tenantID, decreeID string) (*dto.DecreeView, error)
	ListDecrees(ctx context.Context, tenantID string) (*dto.ListDecreesResponse, error)
}
