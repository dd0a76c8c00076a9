// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var postColumns = []string{"id", "journal_id", "date", "body", "summary", "created_at", "updated_at"}

func selectPosts() squirrel.SelectBuilder {
	return postgres.Builder().Select(postColumns...).From("posts")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetPost returns a post by primary key.
func (r *Repo) GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	return r.getOne(ctx, postID, selectPosts().Where(squirrel.Eq{"id": postID}))
}

// GetPostByDate returns the post of a journal dated date.
func (r *Repo) GetPostByDate(ctx context.Context, journalID uuid.UUID, date domain.Date) (*domain.Post, error) {
	stmt := selectPosts().Where(squirrel.Eq{"journal_id": journalID, "date": date.Time()})
	return r.getOne(ctx, journalID, stmt)
}

// ListPosts returns a journal's posts, newest first.
func (r *Repo) ListPosts(ctx context.Context, journalID uuid.UUID) ([]domain.Post, error) {
	stmt := selectPosts().
		Where(squirrel.Eq{"journal_id": journalID}).
		OrderBy("date DESC", "id DESC")
	return r.list(ctx, stmt)
}

// ListByDate returns every post dated date across all journals.
func (r *Repo) ListByDate(ctx context.Context, date domain.Date) ([]domain.Post, error) {
	stmt := selectPosts().
		Where(squirrel.Eq{"date": date.Time()}).
		OrderBy("journal_id", "id")
	return r.list(ctx, stmt)
}

// Neighbours returns the posts immediately before and after p within its
// journal in (date, id) order. Either may be nil.
func (r *Repo) Neighbours(ctx context.Context, p *domain.Post) (prev, next *domain.Post, err error) {
	before := selectPosts().
		Where(squirrel.Eq{"journal_id": p.JournalID}).
		Where(squirrel.Expr("(date, id) < (?, ?)", p.Date.Time(), p.ID)).
		OrderBy("date DESC", "id DESC").
		Limit(1)
	after := selectPosts().
		Where(squirrel.Eq{"journal_id": p.JournalID}).
		Where(squirrel.Expr("(date, id) > (?, ?)", p.Date.Time(), p.ID)).
		OrderBy("date ASC", "id ASC").
		Limit(1)

	if prev, err = r.optional(ctx, p.ID, before); err != nil {
		return nil, nil, err
	}
	if next, err = r.optional(ctx, p.ID, after); err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreatePost inserts a post. A nil ID is generated. Creating a second post
// for the same journal and date fails with domain.ErrAlreadyExists.
func (r *Repo) CreatePost(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	body, err := postgres.DeltaToJSONB(p.Body)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	stmt := postgres.Builder().
		Insert("posts").
		Columns(postColumns...).
		Values(id, p.JournalID, p.Date.Time(), body, p.Summary, now, now).
		Suffix("RETURNING " + columnList())
	return r.getOne(ctx, id, stmt)
}

// UpdateBody replaces a post's body and summary.
func (r *Repo) UpdateBody(ctx context.Context, postID uuid.UUID, body *delta.Delta, summary *string) (*domain.Post, error) {
	raw, err := postgres.DeltaToJSONB(body)
	if err != nil {
		return nil, err
	}
	stmt := postgres.Builder().
		Update("posts").
		Set("body", raw).
		Set("summary", summary).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": postID}).
		Suffix("RETURNING " + columnList())
	return r.getOne(ctx, postID, stmt)
}

// UpdateSummary replaces a post's summary.
func (r *Repo) UpdateSummary(ctx context.Context, postID uuid.UUID, summary *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE posts SET summary = $2, updated_at = now() WHERE id = $1`,
		postID, summary,
	)
	if err != nil {
		return postgres.MapError(err, "post", postID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "post", postID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func columnList() string {
	return strings.Join(postColumns, ", ")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, stmt squirrel.Sqlizer) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build post query: %w", err)
	}
	p, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

func (r *Repo) optional(ctx context.Context, id uuid.UUID, stmt squirrel.Sqlizer) (*domain.Post, error) {
	p, err := r.getOne(ctx, id, stmt)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *Repo) list(ctx context.Context, stmt squirrel.Sqlizer) ([]domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p    domain.Post
		date time.Time
		body []byte
	)
	if err := row.Scan(&p.ID, &p.JournalID, &date, &body, &p.Summary, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := postgres.DeltaFromJSONB(body)
	if err != nil {
		return nil, err
	}
	p.Date = domain.DateOf(date)
	p.Body = d
	return &p, nil
}
