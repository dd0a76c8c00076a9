package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/authz"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

var postScopes = []authz.Scope{authz.ScopeJournal, authz.ScopePost}

// PostReader reads one post of a journal the caller may read.
type PostReader struct {
	auth  authz.Context
	store *Store
}

// NewPostReader requires read access to the journal and post scopes.
func NewPostReader(ac authz.Context, store *Store) (*PostReader, error) {
	if err := ac.Require(false, postScopes...); err != nil {
		return nil, err
	}
	return &PostReader{auth: ac, store: store}, nil
}

func (r *PostReader) ID() uuid.UUID        { return r.auth.ID(authz.ScopePost) }
func (r *PostReader) JournalID() uuid.UUID { return r.auth.ID(authz.ScopeJournal) }

// CanWrite reports whether the caller may edit the post.
func (r *PostReader) CanWrite() bool {
	c, _ := r.auth.Capability(authz.ScopePost)
	return c.Write
}

func (r *PostReader) Post(ctx context.Context) (*domain.Post, error) {
	p, err := r.store.posts.GetPost(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// Neighbours returns the previous and next posts of the same journal in
// (date, id) order. Either may be nil.
func (r *PostReader) Neighbours(ctx context.Context) (prev, next *domain.Post, err error) {
	p, err := r.Post(ctx)
	if err != nil {
		return nil, nil, err
	}
	prev, next, err = r.store.posts.Neighbours(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("post neighbours: %w", err)
	}
	return prev, next, nil
}

// Values returns the journal's active groups and metrics with the value
// each metric has on this post.
func (r *PostReader) Values(ctx context.Context) ([]GroupView, error) {
	groups, err := r.store.metrics.ListActiveGroups(ctx, r.JournalID())
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	metrics, err := r.store.metrics.ListActiveMetrics(ctx, r.JournalID())
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	rows, err := r.store.values.ListPostValues(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("list post values: %w", err)
	}
	values := make(map[uuid.UUID]json.RawMessage, len(rows))
	for _, v := range rows {
		values[v.MetricID] = v.Value
	}
	return buildGroups(groups, metrics, values)
}

// PostWriter edits a post of a journal the caller owns.
type PostWriter struct {
	*PostReader
}

// NewPostWriter requires write access to the journal and post scopes.
func NewPostWriter(ac authz.Context, store *Store) (*PostWriter, error) {
	if err := ac.Require(true, postScopes...); err != nil {
		return nil, err
	}
	return &PostWriter{PostReader: &PostReader{auth: ac, store: store}}, nil
}

// EditBody replaces the post body. The summary becomes the body's first
// line unless the journal has a headline metric, which owns the summary.
func (w *PostWriter) EditBody(ctx context.Context, body delta.Delta) (*domain.Post, error) {
	if !body.IsDocument() {
		return nil, domain.NewValidationError("body", "document may only contain inserts")
	}

	var out *domain.Post
	err := w.store.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := w.Post(txCtx)
		if err != nil {
			return err
		}
		headline, err := w.hasHeadline(txCtx)
		if err != nil {
			return err
		}
		summary := current.Summary
		if !headline {
			line := delta.FirstLine(body)
			summary = &line
		}
		out, err = w.store.posts.UpdateBody(txCtx, w.ID(), &body, summary)
		if err != nil {
			return fmt.Errorf("update post body: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EditValues applies several metric changes to the post atomically. Every
// metric must belong to the post's journal.
func (w *PostWriter) EditValues(ctx context.Context, changes map[uuid.UUID]json.RawMessage) ([]reconcile.Result, error) {
	for id := range changes {
		m, err := w.store.metrics.GetMetric(ctx, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Unknown and foreign metrics must look the same to the caller.
			return nil, domain.NewAuthorizationError(string(authz.ScopeMetric), id, w.auth.Identity())
		case err != nil:
			return nil, fmt.Errorf("get metric: %w", err)
		case m.JournalID != w.JournalID():
			return nil, domain.NewAuthorizationError(string(authz.ScopeMetric), id, w.auth.Identity())
		}
	}
	return w.store.reconciler.ReconcileMany(ctx, w.ID(), changes)
}

func (w *PostWriter) hasHeadline(ctx context.Context) (bool, error) {
	metrics, err := w.store.metrics.ListActiveMetrics(ctx, w.JournalID())
	if err != nil {
		return false, fmt.Errorf("list metrics: %w", err)
	}
	for _, m := range metrics {
		if metric.Kind(m.Kind) != metric.KindRichText {
			continue
		}
		schema, err := metric.ValidateSchema(metric.KindRichText, m.Schema)
		if err != nil {
			return false, &domain.IntegrityError{MetricID: m.ID, Reason: "stored schema invalid", Err: err}
		}
		if metric.Headline(schema) {
			return true, nil
		}
	}
	return false, nil
}
