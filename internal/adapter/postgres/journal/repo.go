// Package journal implements the Journal repository using PostgreSQL,
// including reader lists and the access projection used by authz.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const journalColumns = `id, owner_id, name, description, body, is_public, created_at, updated_at`

const getJournalSQL = `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`

const listForUserSQL = `
SELECT ` + journalColumns + `
FROM journals
WHERE owner_id = $1
   OR id IN (SELECT journal_id FROM journal_readers WHERE user_id = $1)
ORDER BY name, id`

const createJournalSQL = `
INSERT INTO journals (id, owner_id, name, description, body, is_public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + journalColumns

// ---------------------------------------------------------------------------
// Journals
// ---------------------------------------------------------------------------

// GetJournal returns a journal by primary key.
func (r *Repo) GetJournal(ctx context.Context, journalID uuid.UUID) (*domain.Journal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJournal(q.QueryRow(ctx, getJournalSQL, journalID))
	if err != nil {
		return nil, postgres.MapError(err, "journal", journalID)
	}
	return j, nil
}

// ListForUser returns the journals userID owns or is a reader of, ordered
// by name.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	journals := make([]domain.Journal, 0)
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("list journals: %w", err)
		}
		journals = append(journals, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// CreateJournal inserts a journal. A nil ID is generated.
func (r *Repo) CreateJournal(ctx context.Context, j *domain.Journal) (*domain.Journal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := j.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	body, err := postgres.DeltaToJSONB(j.Body)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	out, err := scanJournal(q.QueryRow(ctx, createJournalSQL,
		id, j.OwnerID, j.Name, j.Description, body, j.IsPublic, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "journal", id)
	}
	return out, nil
}

// UpdateJournal sets the non-nil fields of params and returns the result.
func (r *Repo) UpdateJournal(ctx context.Context, journalID uuid.UUID, params domain.JournalUpdate) (*domain.Journal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Update("journals").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": journalID}).
		Suffix("RETURNING " + journalColumns)

	if params.Name != nil {
		stmt = stmt.Set("name", *params.Name)
	}
	// An empty description clears the column.
	if params.Description != nil {
		stmt = stmt.Set("description", squirrel.Expr("NULLIF(?, '')", *params.Description))
	}
	if params.Body != nil {
		body, err := postgres.DeltaToJSONB(params.Body)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Set("body", body)
	}
	if params.IsPublic != nil {
		stmt = stmt.Set("is_public", *params.IsPublic)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update journal: %w", err)
	}

	j, err := scanJournal(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal", journalID)
	}
	return j, nil
}

// ---------------------------------------------------------------------------
// Readers
// ---------------------------------------------------------------------------

// ListReaders returns the ids of users allowed to read the journal.
func (r *Repo) ListReaders(ctx context.Context, journalID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT user_id FROM journal_readers WHERE journal_id = $1 ORDER BY user_id`, journalID)
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	return ids, nil
}

// SetReaders replaces the journal's reader list. Callers run it inside a
// transaction when the replacement must be atomic.
func (r *Repo) SetReaders(ctx context.Context, journalID uuid.UUID, readerIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM journal_readers WHERE journal_id = $1`, journalID); err != nil {
		return postgres.MapError(err, "journal", journalID)
	}
	if len(readerIDs) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert("journal_readers").
		Columns("journal_id", "user_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, id := range readerIDs {
		insert = insert.Values(journalID, id)
	}
	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, "journal", journalID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Access projection
// ---------------------------------------------------------------------------

// AccessByJournal returns the access projection of a journal.
func (r *Repo) AccessByJournal(ctx context.Context, journalID uuid.UUID) (domain.JournalAccess, error) {
	return r.access(ctx, "journal", journalID, accessQuery().Where(squirrel.Eq{"j.id": journalID}))
}

// AccessByPost returns the access projection of the journal owning a post.
func (r *Repo) AccessByPost(ctx context.Context, postID uuid.UUID) (domain.JournalAccess, error) {
	stmt := accessQuery().
		Join("posts p ON p.journal_id = j.id").
		Where(squirrel.Eq{"p.id": postID})
	return r.access(ctx, "post", postID, stmt)
}

// AccessByMetric returns the access projection of the journal owning a
// metric.
func (r *Repo) AccessByMetric(ctx context.Context, metricID uuid.UUID) (domain.JournalAccess, error) {
	stmt := accessQuery().
		Join("metrics m ON m.journal_id = j.id").
		Where(squirrel.Eq{"m.id": metricID})
	return r.access(ctx, "metric", metricID, stmt)
}

func accessQuery() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"j.id", "j.owner_id", "j.is_public",
			"COALESCE(array_agg(r.user_id) FILTER (WHERE r.user_id IS NOT NULL), '{}')",
		).
		From("journals j").
		LeftJoin("journal_readers r ON r.journal_id = j.id").
		GroupBy("j.id")
}

func (r *Repo) access(ctx context.Context, entity string, id uuid.UUID, stmt squirrel.SelectBuilder) (domain.JournalAccess, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return domain.JournalAccess{}, fmt.Errorf("build access query: %w", err)
	}

	var a domain.JournalAccess
	if err := q.QueryRow(ctx, sql, args...).Scan(&a.JournalID, &a.OwnerID, &a.IsPublic, &a.ReaderIDs); err != nil {
		return domain.JournalAccess{}, postgres.MapError(err, entity, id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var (
		j    domain.Journal
		body []byte
	)
	if err := row.Scan(&j.ID, &j.OwnerID, &j.Name, &j.Description, &body, &j.IsPublic, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := postgres.DeltaFromJSONB(body)
	if err != nil {
		return nil, err
	}
	j.Body = d
	return &j, nil
}
