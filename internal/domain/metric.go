package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Metric is a typed measurement defined on a journal. Schema holds the
// kind-specific schema as stored; it is validated against Kind on read.
type Metric struct {
	ID          uuid.UUID
	JournalID   uuid.UUID
	GroupID     uuid.UUID
	Name        string
	Description *string
	Kind        string
	Schema      json.RawMessage
	SortOrder   int
	Active      bool
}

// MetricValue is the stored value of a metric on a post. A missing row means
// no value was recorded.
type MetricValue struct {
	PostID   uuid.UUID
	MetricID uuid.UUID
	Value    json.RawMessage
}

// DatedValue is a stored value together with the date of its post.
type DatedValue struct {
	PostID uuid.UUID
	Date   Date
	Value  json.RawMessage
}
