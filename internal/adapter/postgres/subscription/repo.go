// Package subscription implements the journal subscription repository
// using PostgreSQL.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Subscriptions outlive access changes; only subscribers who can still read
// the journal are listed. Read access mirrors authz: public, owner or reader.
const listSubscribersSQL = `
SELECT u.id, u.email, u.name
FROM journal_subscriptions s
JOIN journals j ON j.id = s.journal_id
JOIN users u ON u.id = s.user_id
WHERE s.journal_id = $1
  AND u.email <> ''
  AND (
    j.is_public
    OR j.owner_id = s.user_id
    OR EXISTS (
      SELECT 1 FROM journal_readers r
      WHERE r.journal_id = s.journal_id AND r.user_id = s.user_id
    )
  )
ORDER BY u.email`

// Subscribe records userID as a subscriber. Subscribing twice is a no-op.
func (r *Repo) Subscribe(ctx context.Context, journalID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO journal_subscriptions (journal_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		journalID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "subscription", journalID)
	}
	return nil
}

// Unsubscribe removes the subscription, if any.
func (r *Repo) Unsubscribe(ctx context.Context, journalID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM journal_subscriptions WHERE journal_id = $1 AND user_id = $2`,
		journalID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "subscription", journalID)
	}
	return nil
}

// IsSubscribed reports whether userID receives updates for the journal.
func (r *Repo) IsSubscribed(ctx context.Context, journalID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM journal_subscriptions WHERE journal_id = $1 AND user_id = $2)`,
		journalID, userID,
	).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "subscription", journalID)
	}
	return ok, nil
}

// ListSubscribers returns the subscribers of a journal that have an email
// address and may still read it.
func (r *Repo) ListSubscribers(ctx context.Context, journalID uuid.UUID) ([]domain.Subscriber, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSubscribersSQL, journalID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		var s domain.Subscriber
		err := row.Scan(&s.UserID, &s.Email, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}
