package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// Journal is a user's diary: a set of metric groups recorded per dated post.
type Journal struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string
	Body        *delta.Delta
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JournalAccess is the access-control projection of a journal. It is all the
// capability resolver needs to decide read and write access.
type JournalAccess struct {
	JournalID uuid.UUID
	OwnerID   uuid.UUID
	ReaderIDs []uuid.UUID
	IsPublic  bool
}

// HasReader reports whether userID is listed as a reader.
func (a JournalAccess) HasReader(userID uuid.UUID) bool {
	for _, id := range a.ReaderIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// MetricGroup is an ordered, named set of metrics within a journal.
type MetricGroup struct {
	ID          uuid.UUID
	JournalID   uuid.UUID
	Name        string
	Description *string
	SortOrder   int
	Active      bool
}

// Subscription records that a user wants email updates for a journal.
type Subscription struct {
	JournalID uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// Subscriber is a user to be notified about a journal.
type Subscriber struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// JournalUpdate lists journal fields to change. Nil fields are left as is.
type JournalUpdate struct {
	Name        *string
	Description *string
	Body        *delta.Delta
	IsPublic    *bool
}
