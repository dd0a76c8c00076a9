package domain

import "github.com/google/uuid"

// Identity is the caller of a request. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Anonymous returns the anonymous identity.
func Anonymous() Identity { return Identity{} }

// IsAnonymous reports whether no user is signed in.
func (i Identity) IsAnonymous() bool { return i.UserID == uuid.Nil }
