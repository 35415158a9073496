package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateKey indicates a natural-key collision among active records.
var ErrDuplicateKey = errors.New("record with this book/folio/entry already exists")

// ErrAlreadyAnnulled indicates the target record was annulled by an earlier decree.
// It is the idempotency guard for concurrent correction attempts.
var ErrAlreadyAnnulled = errors.New("record is already annulled")

// ErrReferencedEntity indicates a delete was blocked because a decree still
// references the entity.
var ErrReferencedEntity = errors.New("entity is referenced by an existing decree")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates per-field failures for one operation. The
// operation fails as a whole; no partial state is ever written.
type ValidationErrors struct {
	Fields []FieldError
}

func (v *ValidationErrors) Error() string {
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Unwrap lets callers match with errors.Is(err, ErrValidation).
func (v *ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Add records one field failure.
func (v *ValidationErrors) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0
}

// Sorted returns the failures ordered by field name for stable output.
func (v *ValidationErrors) Sorted() []FieldError {
	out := make([]FieldError, len(v.Fields))
	copy(out, v.Fields)
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// PartialDeliveryWarning reports that persisted writes succeeded but the
// notification leg failed. It is returned alongside a success result, never
// raised as a failure of the decree itself.
type PartialDeliveryWarning struct {
	DecreeID string
	Cause    error
}

func (w *PartialDeliveryWarning) Error() string {
	return fmt.Sprintf("decree %s persisted but notification delivery failed: %v", w.DecreeID, w.Cause)
}

func (w *PartialDeliveryWarning) Unwrap() error {
	return w.Cause
}
