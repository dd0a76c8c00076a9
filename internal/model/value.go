package model

import (
	"context"
	"encoding/json"

	"github.com/heartmarshall/daybook-backend/internal/authz"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
)

// ValueEditor edits the value of one metric on one post. Both must belong to
// a journal the caller owns.
type ValueEditor struct {
	auth  authz.Context
	store *Store
}

// NewValueEditor requires write access to the journal, post and metric
// scopes.
func NewValueEditor(ac authz.Context, store *Store) (*ValueEditor, error) {
	if err := ac.Require(true, authz.ScopeJournal, authz.ScopePost, authz.ScopeMetric); err != nil {
		return nil, err
	}
	return &ValueEditor{auth: ac, store: store}, nil
}

// EditValue reconciles change with the stored value. A null change clears
// the value.
func (e *ValueEditor) EditValue(ctx context.Context, change json.RawMessage) (reconcile.Result, error) {
	return e.store.reconciler.Reconcile(ctx, e.auth.ID(authz.ScopePost), e.auth.ID(authz.ScopeMetric), change)
}
