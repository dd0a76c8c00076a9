package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the request identity of u.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email}
}
