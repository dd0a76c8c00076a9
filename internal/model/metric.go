package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/authz"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
)

// MetricReader reads one metric of a journal the caller may read.
type MetricReader struct {
	auth  authz.Context
	store *Store
}

// NewMetricReader requires read access to the journal and metric scopes.
func NewMetricReader(ac authz.Context, store *Store) (*MetricReader, error) {
	if err := ac.Require(false, authz.ScopeJournal, authz.ScopeMetric); err != nil {
		return nil, err
	}
	return &MetricReader{auth: ac, store: store}, nil
}

func (r *MetricReader) ID() uuid.UUID { return r.auth.ID(authz.ScopeMetric) }

// Metric returns the metric definition and its parsed schema.
func (r *MetricReader) Metric(ctx context.Context) (*domain.Metric, metric.Schema, error) {
	m, err := r.store.metrics.GetMetric(ctx, r.ID())
	if err != nil {
		return nil, nil, fmt.Errorf("get metric: %w", err)
	}
	schema, err := metric.ValidateSchema(metric.Kind(m.Kind), m.Schema)
	if err != nil {
		return nil, nil, &domain.IntegrityError{MetricID: m.ID, Reason: "stored schema invalid", Err: err}
	}
	return m, schema, nil
}

// History returns every recorded value of the metric, oldest post first.
func (r *MetricReader) History(ctx context.Context) (*History, error) {
	m, err := r.store.metrics.GetMetric(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("get metric: %w", err)
	}
	rows, err := r.store.values.History(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("metric history: %w", err)
	}

	h := &History{
		Metric:  *m,
		Dates:   make([]domain.Date, len(rows)),
		PostIDs: make([]uuid.UUID, len(rows)),
	}
	raw := make([]json.RawMessage, len(rows))
	for i, row := range rows {
		h.Dates[i] = row.Date
		h.PostIDs[i] = row.PostID
		raw[i] = row.Value
	}
	h.Series, err = validateStoredSeries(*m, raw)
	if err != nil {
		return nil, err
	}
	return h, nil
}
