package services

import (
	"context"
	"time"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// NoteContext carries display-time inputs the core cannot know itself:
// clergy rosters and parish location live with the calling system.
type NoteContext struct {
	PriestName       string
	ParishCity       string
	ParishDepartment string

	// Now is the expedition instant. Zero means time.Now at resolve time;
	// tests pin it for determinism.
	Now time.Time
}

// NoteSvcFacade is the marginal-note engine. Resolve never fails: when a
// referenced decree or record cannot be loaded it degrades to the manual
// note or the standard template, because note generation must never block
// record display.
type NoteSvcFacade interface {
	Resolve(ctx context.Context, record *domain.SacramentalRecord, noteCtx NoteContext) string
}
