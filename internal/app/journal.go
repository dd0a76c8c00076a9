package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// CreateJournal creates an empty journal owned by the user with ownerEmail.
// Metric groups are added afterwards with Seed.
func (a *App) CreateJournal(ctx context.Context, ownerEmail, name string, public bool) (*domain.Journal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	pool, err := a.DB(ctx)
	if err != nil {
		return nil, err
	}
	r := newRepos(pool)

	owner, err := r.users.GetByEmail(ctx, strings.TrimSpace(ownerEmail))
	if err != nil {
		return nil, fmt.Errorf("find owner %q: %w", ownerEmail, err)
	}

	j, err := r.journals.CreateJournal(ctx, &domain.Journal{
		OwnerID:  owner.ID,
		Name:     name,
		IsPublic: public,
	})
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	a.log.InfoContext(ctx, "journal created",
		slog.String("journal_id", j.ID.String()),
		slog.String("owner_id", owner.ID.String()),
	)
	return j, nil
}
