package services

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// Notifier is the external Notification Sink collaborator: fire-and-forget
// message delivery addressed to a parish.
type Notifier interface {
	Send(ctx context.Context, notification domain.Notification) error
}
