// Package metric implements the metric group and metric definition
// repository using PostgreSQL.
package metric

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides metric persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new metric repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const groupColumns = `id, journal_id, name, description, sort_order, active`

const metricColumns = `m.id, m.journal_id, m.group_id, m.name, m.description, m.kind, m.schema, m.sort_order, m.active`

const getMetricSQL = `SELECT ` + metricColumns + ` FROM metrics m WHERE m.id = $1`

const listActiveGroupsSQL = `
SELECT ` + groupColumns + `
FROM metric_groups
WHERE journal_id = $1 AND active
ORDER BY sort_order, name`

const listActiveMetricsSQL = `
SELECT ` + metricColumns + `
FROM metrics m
JOIN metric_groups g ON g.id = m.group_id
WHERE m.journal_id = $1 AND m.active AND g.active
ORDER BY g.sort_order, g.name, m.sort_order, m.name`

const upsertGroupSQL = `
INSERT INTO metric_groups (id, journal_id, name, description, sort_order, active)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (journal_id, name) DO UPDATE
SET description = EXCLUDED.description,
    sort_order  = EXCLUDED.sort_order,
    active      = EXCLUDED.active
RETURNING ` + groupColumns

const upsertMetricSQL = `
INSERT INTO metrics AS m (id, journal_id, group_id, name, description, kind, schema, sort_order, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (group_id, name) DO UPDATE
SET description = EXCLUDED.description,
    kind        = EXCLUDED.kind,
    schema      = EXCLUDED.schema,
    sort_order  = EXCLUDED.sort_order,
    active      = EXCLUDED.active
RETURNING ` + metricColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetMetric returns a metric definition by primary key.
func (r *Repo) GetMetric(ctx context.Context, metricID uuid.UUID) (*domain.Metric, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMetric(q.QueryRow(ctx, getMetricSQL, metricID))
	if err != nil {
		return nil, postgres.MapError(err, "metric", metricID)
	}
	return m, nil
}

// ListActiveGroups returns a journal's active groups in display order.
func (r *Repo) ListActiveGroups(ctx context.Context, journalID uuid.UUID) ([]domain.MetricGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listActiveGroupsSQL, journalID)
	if err != nil {
		return nil, fmt.Errorf("list metric groups: %w", err)
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricGroup, error) {
		g, err := scanGroup(row)
		if err != nil {
			return domain.MetricGroup{}, err
		}
		return *g, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list metric groups: %w", err)
	}
	return groups, nil
}

// ListActiveMetrics returns a journal's active metrics belonging to active
// groups, in display order.
func (r *Repo) ListActiveMetrics(ctx context.Context, journalID uuid.UUID) ([]domain.Metric, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listActiveMetricsSQL, journalID)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	metrics, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Metric, error) {
		m, err := scanMetric(row)
		if err != nil {
			return domain.Metric{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return metrics, nil
}

// ---------------------------------------------------------------------------
// Seed operations
// ---------------------------------------------------------------------------

// UpsertGroup inserts a group or updates the one with the same name in the
// journal. The returned group carries the persisted ID.
func (r *Repo) UpsertGroup(ctx context.Context, g *domain.MetricGroup) (*domain.MetricGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := g.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	out, err := scanGroup(q.QueryRow(ctx, upsertGroupSQL,
		id, g.JournalID, g.Name, g.Description, g.SortOrder, g.Active,
	))
	if err != nil {
		return nil, postgres.MapError(err, "metric_group", id)
	}
	return out, nil
}

// UpsertMetric inserts a metric or updates the one with the same name in
// the group.
func (r *Repo) UpsertMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	schema := []byte(m.Schema)
	if len(schema) == 0 {
		schema = []byte("{}")
	}
	out, err := scanMetric(q.QueryRow(ctx, upsertMetricSQL,
		id, m.JournalID, m.GroupID, m.Name, m.Description, m.Kind, schema, m.SortOrder, m.Active,
	))
	if err != nil {
		return nil, postgres.MapError(err, "metric", id)
	}
	return out, nil
}

// DeactivateGroupsExcept marks every group of the journal inactive except
// those listed in keep.
func (r *Repo) DeactivateGroupsExcept(ctx context.Context, journalID uuid.UUID, keep []uuid.UUID) error {
	return r.deactivate(ctx, "metric_groups", journalID, keep)
}

// DeactivateMetricsExcept marks every metric of the journal inactive except
// those listed in keep.
func (r *Repo) DeactivateMetricsExcept(ctx context.Context, journalID uuid.UUID, keep []uuid.UUID) error {
	return r.deactivate(ctx, "metrics", journalID, keep)
}

func (r *Repo) deactivate(ctx context.Context, table string, journalID uuid.UUID, keep []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Update(table).
		Set("active", false).
		Where(squirrel.Eq{"journal_id": journalID, "active": true})
	if len(keep) > 0 {
		stmt = stmt.Where(squirrel.NotEq{"id": keep})
	}
	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return postgres.MapError(err, table, journalID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanGroup(row pgx.Row) (*domain.MetricGroup, error) {
	var g domain.MetricGroup
	if err := row.Scan(&g.ID, &g.JournalID, &g.Name, &g.Description, &g.SortOrder, &g.Active); err != nil {
		return nil, err
	}
	return &g, nil
}

func scanMetric(row pgx.Row) (*domain.Metric, error) {
	var (
		m      domain.Metric
		schema []byte
	)
	if err := row.Scan(&m.ID, &m.JournalID, &m.GroupID, &m.Name, &m.Description, &m.Kind, &schema, &m.SortOrder, &m.Active); err != nil {
		return nil, err
	}
	m.Schema = schema
	return &m, nil
}
