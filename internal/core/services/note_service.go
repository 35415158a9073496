package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portsrepo "github.com/parishbooks/parish_registry_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
	"github.com/parishbooks/parish_registry_app/internal/utils/datewords"
)

// defaultIssuingOffice is used when the decree's annulment concept carries no
// issuing office of its own.
const defaultIssuingOffice = "Office of the Chancery"

// manualNoteSentinel marks a marginal-note field that was filled with an
// explicit "no note" value by legacy data entry.
const manualNoteSentinel = "none"

// noteService resolves marginal-note text for a record at display time.
// Notes are recomputed from the tenant's current templates on every call
// rather than frozen at decree time, so template edits retroactively change
// how historical decrees display.
type noteService struct {
	recordRepo   portsrepo.RecordReader
	decreeRepo   portsrepo.DecreeReader
	conceptRepo  portsrepo.ConceptReader
	templateRepo portsrepo.TemplateRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(recordRepo portsrepo.RecordReader, decreeRepo portsrepo.DecreeReader, conceptRepo portsrepo.ConceptReader, templateRepo portsrepo.TemplateRepository) portssvc.NoteSvcFacade {
	return &noteService{
		recordRepo:   recordRepo,
		decreeRepo:   decreeRepo,
		conceptRepo:  conceptRepo,
		templateRepo: templateRepo,
	}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// Resolve produces the annotation text for a record. The priority chain is:
//
//  1. record annulled by a decree        -> annulledRecordTemplate
//  2. record created by a correction    -> newRecordTemplate
//  3. record created by a replacement   -> replacementTemplate
//  4. manually entered marginal note    -> verbatim, punctuation-normalized
//  5. tenant's standard template
//  6. hardcoded civil-registry composition when no template text exists
//
// First match wins. A final substitution pass runs unconditionally over the
// result, so [EXPEDITION_DATE] and any decree tokens are replaced no matter
// which branch produced the text. Lookup failures degrade down the chain
// instead of erroring; note generation never blocks record display.
func (s *noteService) Resolve(ctx context.Context, record *domain.SacramentalRecord, noteCtx portssvc.NoteContext) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := noteCtx.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	templates := s.loadTemplates(ctx, record.ParishID)

	tokens := map[string]string{
		domain.TokenExpeditionDate: datewords.InWords(now),
		domain.TokenPriestName:     noteCtx.PriestName,
	}

	text := s.decreeText(ctx, record, templates, tokens)
	if text == "" {
		text = s.manualOrStandardText(record, templates)
	}
	if text == "" {
		text = s.composedFallback(record, noteCtx, now)
		logger.Debug("Marginal note fell back to hardcoded composition", slog.String("record_id", record.RecordID))
	}

	return substituteTokens(text, tokens)
}

// decreeText handles chain steps 1-3. It returns "" when the record has no
// usable decree link, which sends resolution down the chain.
func (s *noteService) decreeText(ctx context.Context, record *domain.SacramentalRecord, templates *domain.MarginalNoteTemplateSet, tokens map[string]string) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Step 1: the record is the annulled side of a correction. The decree is
	// found through the record that replaced this one.
	if record.ReplacedByRecordID != nil {
		decree, err := s.decreeRepo.FindDecreeByNewRecordID(ctx, record.ParishID, *record.ReplacedByRecordID)
		if err == nil {
			s.addDecreeTokens(tokens, decree)
			if newRec, err := s.recordRepo.FindRecordByID(ctx, record.ParishID, *record.ReplacedByRecordID); err == nil {
				tokens[domain.TokenNewBook] = newRec.Book
				tokens[domain.TokenNewFolio] = newRec.Folio
				tokens[domain.TokenNewEntry] = newRec.Entry
			}
			return templates.AnnulledRecordTemplate
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Decree lookup failed for annulled record, degrading to manual note", slog.String("record_id", record.RecordID), slog.String("error", err.Error()))
		}
	}

	// Steps 2 and 3: the record is the new side of a decree.
	decree, err := s.decreeRepo.FindDecreeByNewRecordID(ctx, record.ParishID, record.RecordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Decree lookup failed for record, degrading to manual note", slog.String("record_id", record.RecordID), slog.String("error", err.Error()))
		}
		return ""
	}

	s.addDecreeTokens(tokens, decree)

	if decree.Category == domain.DecreeReplacement {
		return templates.ReplacementTemplate
	}

	if decree.OriginalRecordRef != nil {
		tokens[domain.TokenOriginalBook] = decree.OriginalRecordRef.Book
		tokens[domain.TokenOriginalFolio] = decree.OriginalRecordRef.Folio
		tokens[domain.TokenOriginalEntry] = decree.OriginalRecordRef.Entry
	}
	tokens[domain.TokenIssuingOffice] = s.issuingOffice(ctx, decree)
	return templates.NewRecordTemplate
}

// manualOrStandardText handles chain steps 4 and 5.
func (s *noteService) manualOrStandardText(record *domain.SacramentalRecord, templates *domain.MarginalNoteTemplateSet) string {
	manual := strings.TrimSpace(record.MarginalNote)
	if manual != "" && !strings.EqualFold(manual, manualNoteSentinel) {
		return normalizePunctuation(manual)
	}
	return templates.StandardTemplate
}

// composedFallback is chain step 6: with no template text configured at all,
// compose a note from whatever civil-registry data the record carries plus a
// fixed closing sentence naming the parish seat and the expedition date.
func (s *noteService) composedFallback(record *domain.SacramentalRecord, noteCtx portssvc.NoteContext, now time.Time) string {
	var b strings.Builder
	if record.CivilRegistrySerial != "" {
		b.WriteString(fmt.Sprintf("Civil registry serial %s", record.CivilRegistrySerial))
		if record.CivilRegistryDate != "" {
			b.WriteString(fmt.Sprintf(" dated %s", record.CivilRegistryDate))
		}
		b.WriteString(". ")
	}
	b.WriteString(fmt.Sprintf("Issued in %s, %s, on %s. ",
		noteCtx.ParishCity, noteCtx.ParishDepartment, datewords.InWords(now)))
	return b.String()
}

func (s *noteService) addDecreeTokens(tokens map[string]string, decree *domain.Decree) {
	tokens[domain.TokenDecreeNumber] = decree.DecreeNumber
	tokens[domain.TokenDecreeDate] = decree.DecreeDate.Format("2006-01-02")
}

func (s *noteService) issuingOffice(ctx context.Context, decree *domain.Decree) string {
	if decree.AnnulmentConceptID == nil {
		return defaultIssuingOffice
	}
	concept, err := s.conceptRepo.FindConceptByID(ctx, decree.ParishID, *decree.AnnulmentConceptID)
	if err != nil || concept.IssuingOffice == "" {
		return defaultIssuingOffice
	}
	return concept.IssuingOffice
}

// loadTemplates returns the tenant's current template set, or an empty set
// when none is configured so resolution can continue down the chain.
func (s *noteService) loadTemplates(ctx context.Context, parishID string) *domain.MarginalNoteTemplateSet {
	templates, err := s.templateRepo.FindTemplateSet(ctx, parishID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("Template set lookup failed, resolving with empty configuration", slog.String("parish_id", parishID), slog.String("error", err.Error()))
		}
		return &domain.MarginalNoteTemplateSet{ParishID: parishID}
	}
	return templates
}

// substituteTokens replaces every known placeholder with its computed value.
// Tokens outside the fixed vocabulary are left untouched.
func substituteTokens(text string, tokens map[string]string) string {
	pairs := make([]string, 0, len(tokens)*2)
	for token, value := range tokens {
		pairs = append(pairs, token, value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// normalizePunctuation trims a manual note and ends it with ". ", the form
// marginal annotations are printed in.
func normalizePunctuation(note string) string {
	note = strings.TrimSpace(note)
	note = strings.TrimRight(note, ".,; ")
	return note + ". "
}
