// Package reconcile merges incoming metric changes into stored values.
//
// A reconciliation reads the stored value, re-validates it against the
// metric's kind, applies the change with the kind's merge function and
// writes the result back, deleting the row when the result is null. All of
// it happens in one transaction. Concurrent reconciliations of the same
// (post, metric) pair are not serialized beyond the database's Read
// Committed isolation: the last writer wins.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
)

type metricRepo interface {
	GetMetric(ctx context.Context, metricID uuid.UUID) (*domain.Metric, error)
}

type valueRepo interface {
	// GetValue returns domain.ErrNotFound when no value is stored.
	GetValue(ctx context.Context, postID, metricID uuid.UUID) (json.RawMessage, error)
	UpsertValue(ctx context.Context, postID, metricID uuid.UUID, value json.RawMessage) error
	DeleteValue(ctx context.Context, postID, metricID uuid.UUID) error
}

type postRepo interface {
	UpdateSummary(ctx context.Context, postID uuid.UUID, summary *string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result describes the outcome of one reconciliation.
type Result struct {
	MetricID uuid.UUID
	// Value is the new stored value; nil when Deleted.
	Value   metric.Value
	Deleted bool
	// SummaryUpdated is set when the post summary was rewritten from a
	// headline rich-text metric.
	SummaryUpdated bool
	Summary        *string
}

// Engine reconciles metric changes against stored values.
type Engine struct {
	metrics metricRepo
	values  valueRepo
	posts   postRepo
	tx      txManager
	log     *slog.Logger
}

// NewEngine creates a reconciliation Engine.
func NewEngine(
	log *slog.Logger,
	metrics metricRepo,
	values valueRepo,
	posts postRepo,
	tx txManager,
) *Engine {
	return &Engine{
		metrics: metrics,
		values:  values,
		posts:   posts,
		tx:      tx,
		log:     log.With("service", "reconcile"),
	}
}

// plan is a validated change ready to be applied.
type plan struct {
	def    *domain.Metric
	kind   metric.Kind
	schema metric.Schema
	change metric.Change // nil clears the value
}

// Reconcile applies change to the value of metricID on postID. A null change
// deletes the stored value.
func (e *Engine) Reconcile(ctx context.Context, postID, metricID uuid.UUID, change json.RawMessage) (Result, error) {
	p, err := e.prepare(ctx, metricID, change)
	if err != nil {
		return Result{}, err
	}

	var res Result
	err = e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = e.apply(txCtx, postID, p)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	e.log.InfoContext(ctx, "metric value reconciled",
		slog.String("post_id", postID.String()),
		slog.String("metric_id", metricID.String()),
		slog.String("kind", p.kind.String()),
		slog.Bool("deleted", res.Deleted),
	)
	return res, nil
}

// ReconcileMany applies several changes to one post in a single transaction.
// Every change is validated before any is written. Results are ordered by
// metric id.
func (e *Engine) ReconcileMany(ctx context.Context, postID uuid.UUID, changes map[uuid.UUID]json.RawMessage) ([]Result, error) {
	ids := slices.SortedFunc(maps.Keys(changes), func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	plans := make([]plan, 0, len(ids))
	var fieldErrs []domain.FieldError
	for _, id := range ids {
		p, err := e.prepare(ctx, id, changes[id])
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				fieldErrs = append(fieldErrs, ve.WithPrefix(fmt.Sprintf("values[%s]", id)).Errors...)
				continue
			}
			return nil, err
		}
		plans = append(plans, p)
	}
	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}

	results := make([]Result, 0, len(plans))
	err := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		results = results[:0]
		for _, p := range plans {
			res, err := e.apply(txCtx, postID, p)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "metric values reconciled",
		slog.String("post_id", postID.String()),
		slog.Int("count", len(results)),
	)
	return results, nil
}

func (e *Engine) prepare(ctx context.Context, metricID uuid.UUID, change json.RawMessage) (plan, error) {
	def, err := e.metrics.GetMetric(ctx, metricID)
	if err != nil {
		return plan{}, fmt.Errorf("get metric: %w", err)
	}

	kind := metric.Kind(def.Kind)
	schema, err := metric.ValidateSchema(kind, def.Schema)
	if err != nil {
		e.log.ErrorContext(ctx, "stored metric schema is invalid",
			slog.String("metric_id", metricID.String()),
			slog.String("error", err.Error()),
		)
		return plan{}, &domain.IntegrityError{MetricID: metricID, Reason: "stored schema invalid", Err: err}
	}

	p := plan{def: def, kind: kind, schema: schema}
	if isNull(change) {
		return p, nil
	}
	c, err := metric.ValidateChange(kind, change)
	if err != nil {
		return plan{}, err
	}
	p.change = c
	return p, nil
}

func (e *Engine) apply(ctx context.Context, postID uuid.UUID, p plan) (Result, error) {
	res := Result{MetricID: p.def.ID}

	if p.change == nil {
		if err := e.values.DeleteValue(ctx, postID, p.def.ID); err != nil {
			return Result{}, fmt.Errorf("delete value: %w", err)
		}
		res.Deleted = true
		return e.updateSummary(ctx, postID, p, res)
	}

	old, err := e.loadValue(ctx, postID, p)
	if err != nil {
		return Result{}, err
	}

	next, err := metric.Apply(p.kind, old, p.change)
	if err != nil {
		var ie *domain.IntegrityError
		if errors.As(err, &ie) {
			ie.MetricID = p.def.ID
			e.log.ErrorContext(ctx, "stored value does not match metric kind",
				slog.String("post_id", postID.String()),
				slog.String("metric_id", p.def.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return Result{}, err
	}

	if next == nil {
		// kinds never produce null from a non-null change today
		if err := e.values.DeleteValue(ctx, postID, p.def.ID); err != nil {
			return Result{}, fmt.Errorf("delete value: %w", err)
		}
		res.Deleted = true
		return e.updateSummary(ctx, postID, p, res)
	}

	encoded, err := metric.Encode(next)
	if err != nil {
		return Result{}, err
	}
	if err := e.values.UpsertValue(ctx, postID, p.def.ID, encoded); err != nil {
		return Result{}, fmt.Errorf("upsert value: %w", err)
	}
	res.Value = next
	return e.updateSummary(ctx, postID, p, res)
}

func (e *Engine) loadValue(ctx context.Context, postID uuid.UUID, p plan) (metric.Value, error) {
	raw, err := e.values.GetValue(ctx, postID, p.def.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get value: %w", err)
	}
	old, err := metric.ValidateValue(p.kind, raw)
	if err != nil {
		e.log.ErrorContext(ctx, "stored metric value is invalid",
			slog.String("post_id", postID.String()),
			slog.String("metric_id", p.def.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, &domain.IntegrityError{MetricID: p.def.ID, Reason: "stored value invalid", Err: err}
	}
	return old, nil
}

// updateSummary rewrites the post summary from a headline rich-text metric.
func (e *Engine) updateSummary(ctx context.Context, postID uuid.UUID, p plan, res Result) (Result, error) {
	if !metric.Headline(p.schema) {
		return res, nil
	}
	var summary *string
	if res.Value != nil {
		line := metric.Summary(res.Value)
		summary = &line
	}
	if err := e.posts.UpdateSummary(ctx, postID, summary); err != nil {
		return Result{}, fmt.Errorf("update post summary: %w", err)
	}
	res.SummaryUpdated = true
	res.Summary = summary
	return res, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
