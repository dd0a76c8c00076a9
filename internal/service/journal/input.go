package journal

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxValuesPerEdit  = 200
)

// EditValueInput holds one metric change for one post.
type EditValueInput struct {
	PostID   uuid.UUID
	MetricID uuid.UUID
	// Change is the kind-specific change JSON; null clears the value.
	Change json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i EditValueInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.MetricID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "metric_id", Message: "required"})
	}
	if len(bytes.TrimSpace(i.Change)) == 0 {
		errs = append(errs, domain.FieldError{Field: "change", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditJournalInput holds the journal fields to change. Nil fields are left
// as they are.
type EditJournalInput struct {
	JournalID   uuid.UUID
	Name        *string
	Description *string
	Body        *delta.Delta
	IsPublic    *bool
	ReaderIDs   *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i EditJournalInput) Validate() error {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Body == nil && i.IsPublic == nil && i.ReaderIDs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if i.Body != nil && !i.Body.IsDocument() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "document may only contain inserts"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubscribeInput turns update emails on or off for the caller.
type SubscribeInput struct {
	JournalID uuid.UUID
	Subscribe bool
}

// Validate checks all fields and collects all errors.
func (i SubscribeInput) Validate() error {
	if i.JournalID == uuid.Nil {
		return domain.NewValidationError("journal_id", "required")
	}
	return nil
}

// NewPostInput asks for the post of a journal on a date.
type NewPostInput struct {
	JournalID uuid.UUID
	Date      domain.Date
}

// Validate checks all fields and collects all errors.
func (i NewPostInput) Validate() error {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditPostInput replaces a post body and/or applies several metric changes.
type EditPostInput struct {
	PostID uuid.UUID
	Body   *delta.Delta
	Values map[uuid.UUID]json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i EditPostInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.Body == nil && len(i.Values) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Body != nil && !i.Body.IsDocument() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "document may only contain inserts"})
	}
	if len(i.Values) > maxValuesPerEdit {
		errs = append(errs, domain.FieldError{Field: "values", Message: "max 200 changes per edit"})
	}
	for id, change := range i.Values {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "values", Message: "metric id required"})
		}
		if len(bytes.TrimSpace(change)) == 0 {
			errs = append(errs, domain.FieldError{Field: "values[" + id.String() + "]", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
