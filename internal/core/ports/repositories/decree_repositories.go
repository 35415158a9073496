package repositories

import (
	"context"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// DecreeReader defines read operations for decree data
type DecreeReader interface {
	// FindDecreeByID retrieves one decree from a tenant partition.
	FindDecreeByID(ctx context.Context, tenantID, decreeID string) (*domain.Decree, error)

	// FindDecreeByNewRecordID locates the decree that created the given
	// record, or apperrors.ErrNotFound. Both sides of a correction resolve
	// through this lookup: the new record directly, the annulled record via
	// its ReplacedByRecordID link.
	FindDecreeByNewRecordID(ctx context.Context, parishID, recordID string) (*domain.Decree, error)

	// ListDecreesByTenant retrieves all decrees of a parish or chancery
	// partition.
	ListDecreesByTenant(ctx context.Context, tenantID string) ([]domain.Decree, error)

	// CountDecreesByConcept counts decrees in a tenant partition referencing
	// the given annulment concept. Used for the referential delete guard.
	CountDecreesByConcept(ctx context.Context, tenantID, conceptID string) (int, error)
}

// DecreeWriter defines write operations for decree data. Decrees themselves
// are written by RecordWriter as part of the atomic decree application; the
// only standalone write is the chancery replica.
type DecreeWriter interface {
	// SaveChanceryCopy writes a copy of the decree into the parent chancery
	// partition, tagged with originType. The write is idempotent keyed by
	// decree ID: a retried publish never duplicates the copy.
	SaveChanceryCopy(ctx context.Context, chanceryID string, decree domain.Decree, originType domain.OriginType) error
}

// DecreeRepositoryFacade combines all decree repository interfaces.
type DecreeRepositoryFacade interface {
	DecreeReader
	DecreeWriter
}
