package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/metrics"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
)

var errNotifierUnconfigured = errors.New("notification sink not configured")

// DualWriteCoordinator replicates a completed decree beyond its owning
// parish: a copy goes to the parent chancery partition and one notification
// is enqueued for the parish. The parish write itself has already been
// committed atomically by the record repository before Publish runs; the
// ordering guarantee is that the chancery copy is only attempted after it.
type DualWriteCoordinator struct {
	decreeRepo        portsrepo.DecreeWriter
	notifier          portssvc.Notifier
	metrics           *metrics.Metrics
	chanceryID        string
	notifyMaxAttempts int
}

// NewDualWriteCoordinator creates a new DualWriteCoordinator.
func NewDualWriteCoordinator(decreeRepo portsrepo.DecreeWriter, notifier portssvc.Notifier, m *metrics.Metrics, chanceryID string, notifyMaxAttempts int) *DualWriteCoordinator {
	if notifyMaxAttempts < 1 {
		notifyMaxAttempts = 1
	}
	return &DualWriteCoordinator{
		decreeRepo:        decreeRepo,
		notifier:          notifier,
		metrics:           m,
		chanceryID:        chanceryID,
		notifyMaxAttempts: notifyMaxAttempts,
	}
}

// Publish writes the chancery copy and enqueues the parish notification.
// The chancery write is idempotent keyed by decree ID, so a retried Publish
// after partial failure never duplicates data. A notification failure is
// returned as a PartialDeliveryWarning, never as an error: the persisted
// writes stand.
func (c *DualWriteCoordinator) Publish(ctx context.Context, decree domain.Decree, record domain.SacramentalRecord) (*apperrors.PartialDeliveryWarning, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := c.decreeRepo.SaveChanceryCopy(ctx, c.chanceryID, decree, domain.OriginTypeFor(decree.Category)); err != nil {
		logger.Error("Failed to replicate decree to chancery partition", slog.String("decree_id", decree.DecreeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to replicate decree %s to chancery: %w", decree.DecreeID, err)
	}

	if c.notifier == nil {
		logger.Warn("Notification sink not configured; decree published without notification", slog.String("decree_id", decree.DecreeID))
		return &apperrors.PartialDeliveryWarning{DecreeID: decree.DecreeID, Cause: errNotifierUnconfigured}, nil
	}

	notification := domain.Notification{
		DecreeID:   decree.DecreeID,
		DecreeType: decree.Category,
		ParishID:   decree.ParishID,
		CreatedBy:  decree.CreatedBy,
		Message: fmt.Sprintf("Decree %s (%s) issued: record %s %s, book %s, folio %s, entry %s",
			decree.DecreeNumber, decree.Category, record.FirstName, record.LastName, record.Book, record.Folio, record.Entry),
		Status: domain.NotificationPending,
	}

	var sendErr error
	for attempt := 1; attempt <= c.notifyMaxAttempts; attempt++ {
		if sendErr = c.notifier.Send(ctx, notification); sendErr == nil {
			break
		}
		logger.Warn("Notification delivery attempt failed", slog.String("decree_id", decree.DecreeID), slog.Int("attempt", attempt), slog.String("error", sendErr.Error()))
	}
	if sendErr != nil {
		if c.metrics != nil {
			c.metrics.IncrementNotificationFailures()
		}
		return &apperrors.PartialDeliveryWarning{DecreeID: decree.DecreeID, Cause: sendErr}, nil
	}

	logger.Info("Decree published", slog.String("decree_id", decree.DecreeID), slog.String("chancery_id", c.chanceryID))
	return nil, nil
}
