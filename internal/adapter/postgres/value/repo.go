// Package value implements the metric value repository using PostgreSQL.
// A missing row means the metric has no value on the post.
package value

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides metric value persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new value repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertValueSQL = `
INSERT INTO metric_values (post_id, metric_id, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (post_id, metric_id) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()`

const latestValuesSQL = `
SELECT DISTINCT ON (v.metric_id) v.metric_id, v.value
FROM metric_values v
JOIN posts p ON p.id = v.post_id
WHERE p.journal_id = $1
ORDER BY v.metric_id, p.date DESC, p.id DESC`

const historySQL = `
SELECT v.post_id, p.date, v.value
FROM metric_values v
JOIN posts p ON p.id = v.post_id
WHERE v.metric_id = $1
ORDER BY p.date, p.id`

// GetValue returns the stored value of a metric on a post, or
// domain.ErrNotFound when none is stored.
func (r *Repo) GetValue(ctx context.Context, postID, metricID uuid.UUID) (json.RawMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var raw []byte
	err := q.QueryRow(ctx,
		`SELECT value FROM metric_values WHERE post_id = $1 AND metric_id = $2`,
		postID, metricID,
	).Scan(&raw)
	if err != nil {
		return nil, postgres.MapError(err, "metric_value", metricID)
	}
	return raw, nil
}

// UpsertValue stores value for the (post, metric) pair.
func (r *Repo) UpsertValue(ctx context.Context, postID, metricID uuid.UUID, value json.RawMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertValueSQL, postID, metricID, []byte(value)); err != nil {
		return postgres.MapError(err, "metric_value", metricID)
	}
	return nil
}

// DeleteValue removes the stored value, if any.
func (r *Repo) DeleteValue(ctx context.Context, postID, metricID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `DELETE FROM metric_values WHERE post_id = $1 AND metric_id = $2`, postID, metricID)
	if err != nil {
		return postgres.MapError(err, "metric_value", metricID)
	}
	return nil
}

// ListPostValues returns every value stored on a post.
func (r *Repo) ListPostValues(ctx context.Context, postID uuid.UUID) ([]domain.MetricValue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT post_id, metric_id, value FROM metric_values WHERE post_id = $1`, postID)
	if err != nil {
		return nil, fmt.Errorf("list post values: %w", err)
	}
	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricValue, error) {
		var (
			v   domain.MetricValue
			raw []byte
		)
		err := row.Scan(&v.PostID, &v.MetricID, &raw)
		v.Value = raw
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("list post values: %w", err)
	}
	return values, nil
}

// LatestValues returns, per metric of the journal, the value on the most
// recent post that has one.
func (r *Repo) LatestValues(ctx context.Context, journalID uuid.UUID) (map[uuid.UUID]json.RawMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, latestValuesSQL, journalID)
	if err != nil {
		return nil, fmt.Errorf("latest values: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]json.RawMessage)
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("latest values: %w", err)
		}
		out[id] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("latest values: %w", err)
	}
	return out, nil
}

// History returns every stored value of a metric with its post date,
// oldest first.
func (r *Repo) History(ctx context.Context, metricID uuid.UUID) ([]domain.DatedValue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, historySQL, metricID)
	if err != nil {
		return nil, fmt.Errorf("metric history: %w", err)
	}
	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DatedValue, error) {
		var (
			v    domain.DatedValue
			date time.Time
			raw  []byte
		)
		if err := row.Scan(&v.PostID, &date, &raw); err != nil {
			return v, err
		}
		v.Date = domain.DateOf(date)
		v.Value = raw
		return v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("metric history: %w", err)
	}
	return values, nil
}
