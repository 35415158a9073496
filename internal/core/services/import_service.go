package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
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

// Legacy exporter field codes. This is the only place in the codebase that
// knows the legacy vocabulary; everything downstream works on the internal
// record shape.
const (
	legacyBook            = "lib"
	legacyFolio           = "fol"
	legacyEntry           = "num"
	legacyFirstName       = "nom"
	legacyLastName        = "ape"
	legacyBirthDate       = "fnac"
	legacyCelebrationDate = "fcel"
	legacyMinister        = "min"
	legacyFather          = "pad"
	legacyMother          = "mad"
	legacySpouse          = "cony"
	legacyUnionCode       = "tun"
	legacyGodparents      = "pads"
	legacyWitnesses       = "tes"
	legacyCivilSerial     = "rcs"
	legacyCivilDate       = "rcf"
	legacyNote            = "nota"
)

// birthPlaceAliases is the ordered list of legacy field names a row's
// birthplace may arrive under. Different exporter generations used different
// names; the first populated alias wins and downstream code only ever sees
// the canonical field.
var birthPlaceAliases = []string{"lnac", "lugnac", "ciunac"}

// unionCodeMask is the placeholder codes 4 and 5 are remapped to while the
// validator runs. The legacy validator only knows codes 0-3; later exporters
// emit 4 and 5, and the mask-and-restore pass lets those rows through without
// loosening the validator itself. The true value is restored after
// validation, so a stored record never carries the mask.
const unionCodeMask = 3

// rowValidationView is the masked, flattened view of one mapped row that the
// field validator runs against.
type rowValidationView struct {
	Book            string `validate:"required"`
	Folio           string `validate:"required"`
	Entry           string `validate:"required"`
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	CelebrationDate string `validate:"omitempty,datetime=2006-01-02"`
	ParentalUnion   int    `validate:"min=0,max=3"`
}

type importService struct {
	recordRepo portsrepo.RecordRepositoryFacade
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

// NewImportService creates a new ImportService.
func NewImportService(recordRepo portsrepo.RecordRepositoryFacade, m *metrics.Metrics) portssvc.ImportSvcFacade {
	return &importService{
		recordRepo: recordRepo,
		validate:   validator.New(),
		metrics:    m,
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// Reconcile classifies raw legacy rows against the current store without
// writing anything. Row numbers in the output are 1-based positions in the
// uploaded array.
func (s *importService) Reconcile(ctx context.Context, parishID string, sacramentType domain.SacramentType, rows []map[string]any) (*domain.ImportBatch, error) {
	batch, _, err := s.reconcile(ctx, parishID, sacramentType, rows, "")
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AddImportRows("valid", len(batch.ValidNew))
		s.metrics.AddImportRows("duplicate", len(batch.Duplicates))
		s.metrics.AddImportRows("invalid", len(batch.Invalid))
	}
	middleware.GetLoggerFromCtx(ctx).Info("Import batch reconciled",
		slog.String("parish_id", parishID),
		slog.Int("valid_new", len(batch.ValidNew)),
		slog.Int("duplicates", len(batch.Duplicates)),
		slog.Int("invalid", len(batch.Invalid)))
	return batch, nil
}

// ConfirmImport re-runs the full pipeline against the live store state and
// persists the surviving validNew records. Rows that became duplicates since
// the preview are reported, not failed.
func (s *importService) ConfirmImport(ctx context.Context, parishID string, sacramentType domain.SacramentType, rows []map[string]any, creatorUserID string) (*dto.ConfirmImportResponse, error) {
	batch, validRowNumbers, err := s.reconcile(ctx, parishID, sacramentType, rows, creatorUserID)
	if err != nil {
		return nil, err
	}

	persisted := 0
	var skipped []domain.NaturalKey
	if len(batch.ValidNew) > 0 {
		persisted, skipped, err = s.recordRepo.AppendRecords(ctx, parishID, batch.ValidNew)
		if err != nil {
			return nil, fmt.Errorf("failed to persist import batch: %w", err)
		}
	}

	// The repository re-checked duplicates under the collection lock; anything
	// it skipped collided with a record written after our read. Fold those
	// back into the duplicate listing with their original row numbers.
	duplicates := batch.Duplicates
	for _, key := range skipped {
		rowNumber := 0
		for i := range batch.ValidNew {
			if recordkey.Equal(key, batch.ValidNew[i].Key()) {
				rowNumber = validRowNumbers[i]
				break
			}
		}
		duplicates = append(duplicates, domain.DuplicateRow{RowNumber: rowNumber, Key: key})
	}

	middleware.GetLoggerFromCtx(ctx).Info("Import batch confirmed",
		slog.String("parish_id", parishID),
		slog.Int("persisted", persisted),
		slog.Int("skipped", len(skipped)))

	return &dto.ConfirmImportResponse{
		Persisted:  persisted,
		Duplicates: duplicates,
		Invalid:    batch.Invalid,
	}, nil
}

// reconcile runs the per-row pipeline: structural check, legacy field
// mapping, masked validation, duplicate detection against both the store and
// rows already accepted earlier in the same batch (first occurrence wins).
// The returned int slice carries the 1-based row number of each ValidNew
// entry, in order.
func (s *importService) reconcile(ctx context.Context, parishID string, sacramentType domain.SacramentType, rows []map[string]any, creatorUserID string) (*domain.ImportBatch, []int, error) {
	switch sacramentType {
	case domain.Baptism, domain.Confirmation, domain.Marriage:
	default:
		return nil, nil, fmt.Errorf("%w: unknown sacrament type %q", apperrors.ErrValidation, sacramentType)
	}

	existing, err := s.recordRepo.ListRecordsByParish(ctx, parishID, &sacramentType)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load existing records: %w", err)
	}

	batch := &domain.ImportBatch{ParishID: parishID, SacramentType: sacramentType}
	var validRowNumbers []int
	var acceptedKeys []domain.NaturalKey
	now := time.Now().UTC()

	for i, raw := range rows {
		rowNumber := i + 1

		flat, reason := flattenRow(raw)
		if reason != "" {
			batch.Invalid = append(batch.Invalid, domain.RejectedRow{RowNumber: rowNumber, Reason: reason})
			continue
		}

		record, reason := s.mapAndValidate(flat, parishID, sacramentType)
		if reason != "" {
			batch.Invalid = append(batch.Invalid, domain.RejectedRow{RowNumber: rowNumber, Reason: reason})
			continue
		}

		if recordkey.IsDuplicate(record, existing, acceptedKeys) {
			batch.Duplicates = append(batch.Duplicates, domain.DuplicateRow{RowNumber: rowNumber, Key: recordkey.KeyOf(record)})
			continue
		}

		record.RecordID = uuid.NewString()
		record.Status = domain.RecordActive
		record.CreatedAt = now
		record.CreatedBy = creatorUserID
		record.LastUpdatedAt = now
		record.LastUpdatedBy = creatorUserID

		acceptedKeys = append(acceptedKeys, recordkey.KeyOf(record))
		batch.ValidNew = append(batch.ValidNew, *record)
		validRowNumbers = append(validRowNumbers, rowNumber)
	}

	return batch, validRowNumbers, nil
}

// mapAndValidate converts one flat legacy row to the internal record shape
// and runs field validation over the masked view.
func (s *importService) mapAndValidate(flat map[string]string, parishID string, sacramentType domain.SacramentType) (*domain.SacramentalRecord, string) {
	unionCode, err := parseUnionCode(flat[legacyUnionCode])
	if err != nil {
		return nil, err.Error()
	}

	record := &domain.SacramentalRecord{
		ParishID:            parishID,
		SacramentType:       sacramentType,
		Book:                flat[legacyBook],
		Folio:               flat[legacyFolio],
		Entry:               flat[legacyEntry],
		FirstName:           flat[legacyFirstName],
		LastName:            flat[legacyLastName],
		BirthDate:           flat[legacyBirthDate],
		BirthPlace:          firstAlias(flat, birthPlaceAliases),
		MinisterName:        flat[legacyMinister],
		FatherName:          flat[legacyFather],
		MotherName:          flat[legacyMother],
		ParentalUnion:       unionCode,
		CivilRegistrySerial: flat[legacyCivilSerial],
		CivilRegistryDate:   flat[legacyCivilDate],
		MarginalNote:        flat[legacyNote],
	}
	if sacramentType == domain.Marriage {
		record.SpouseName = flat[legacySpouse]
		record.Witnesses = splitNames(flat[legacyWitnesses])
	} else {
		record.Godparents = splitNames(flat[legacyGodparents])
	}
	if raw := flat[legacyCelebrationDate]; raw != "" {
		if date, err := time.Parse(dateLayout, raw); err == nil {
			record.CelebrationDate = date
		} else {
			return nil, fmt.Sprintf("field %s: malformed date %q", legacyCelebrationDate, raw)
		}
	}

	view, restore := maskUnionCode(rowValidationView{
		Book:            record.Book,
		Folio:           record.Folio,
		Entry:           record.Entry,
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		CelebrationDate: flat[legacyCelebrationDate],
		ParentalUnion:   record.ParentalUnion,
	})
	if err := s.validate.Struct(view); err != nil {
		return nil, validationReason(err)
	}
	record.ParentalUnion = restore(view.ParentalUnion)

	return record, ""
}

// maskUnionCode returns the validation view with extended union codes (4, 5)
// remapped to a code the validator accepts, and the restore function that
// puts the true value back once validation has passed. Codes already in the
// validator's domain restore to themselves.
func maskUnionCode(view rowValidationView) (rowValidationView, func(int) int) {
	original := view.ParentalUnion
	if original == 4 || original == 5 {
		view.ParentalUnion = unionCodeMask
		return view, func(int) int { return original }
	}
	return view, func(validated int) int { return validated }
}

func parseUnionCode(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not a numeric union code", legacyUnionCode, raw)
	}
	return code, nil
}

// flattenRow checks the structural contract: every value must be a scalar.
// Numbers are rendered back to strings so key parts like book numbers keep a
// stable text form.
func flattenRow(raw map[string]any) (map[string]string, string) {
	flat := make(map[string]string, len(raw))
	for field, value := range raw {
		switch v := value.(type) {
		case nil:
			flat[field] = ""
		case string:
			flat[field] = strings.TrimSpace(v)
		case float64:
			flat[field] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			flat[field] = strconv.FormatBool(v)
		case int:
			flat[field] = strconv.Itoa(v)
		default:
			return nil, fmt.Sprintf("field %s: expected a scalar value, got %T", field, value)
		}
	}
	return flat, ""
}

func firstAlias(flat map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if value := flat[alias]; value != "" {
			return value
		}
	}
	return ""
}

func splitNames(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func validationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	reasons := make([]string, len(verrs))
	for i, fe := range verrs {
		reasons[i] = fmt.Sprintf("field %s failed %s validation", fe.Field(), fe.Tag())
	}
	return strings.Join(reasons, "; ")
}
