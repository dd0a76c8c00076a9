package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// Post is one dated entry of a journal. Summary caches the first line of the
// headline rich-text metric or of the body.
type Post struct {
	ID        uuid.UUID
	JournalID uuid.UUID
	Date      Date
	Body      *delta.Delta
	Summary   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
