package services

import (
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/metrics"
	"github.com/parishbooks/parish_registry_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Note resolution comes first since record reads depend on it.
	container.Note = NewNoteService(repos.RecordRepo, repos.DecreeRepo, repos.ConceptRepo, repos.TemplateRepo)
	container.Record = NewRecordService(repos.RecordRepo, container.Note)

	coordinator := NewDualWriteCoordinator(repos.DecreeRepo, notifier, m, cfg.ChanceryID, cfg.NotifyMaxAttempts)
	container.Decree = NewDecreeService(repos.RecordRepo, repos.DecreeRepo, repos.ConceptRepo, coordinator, m)

	container.Concept = NewConceptService(repos.ConceptRepo, repos.DecreeRepo)
	container.Template = NewTemplateService(repos.TemplateRepo)
	container.Import = NewImportService(repos.RecordRepo, m)

	return container
}
