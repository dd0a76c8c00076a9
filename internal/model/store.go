// Package model exposes journals, posts and metrics through types that can
// only be constructed from an authz.Context carrying the capabilities they
// need. Holding a reader proves read access; holding a writer or a
// ValueEditor proves write access.
package model

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

type journalRepo interface {
	GetJournal(ctx context.Context, journalID uuid.UUID) (*domain.Journal, error)
	UpdateJournal(ctx context.Context, journalID uuid.UUID, params domain.JournalUpdate) (*domain.Journal, error)
	ListReaders(ctx context.Context, journalID uuid.UUID) ([]uuid.UUID, error)
	SetReaders(ctx context.Context, journalID uuid.UUID, readerIDs []uuid.UUID) error
}

type metricRepo interface {
	GetMetric(ctx context.Context, metricID uuid.UUID) (*domain.Metric, error)
	ListActiveGroups(ctx context.Context, journalID uuid.UUID) ([]domain.MetricGroup, error)
	ListActiveMetrics(ctx context.Context, journalID uuid.UUID) ([]domain.Metric, error)
}

type postRepo interface {
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	GetPostByDate(ctx context.Context, journalID uuid.UUID, date domain.Date) (*domain.Post, error)
	ListPosts(ctx context.Context, journalID uuid.UUID) ([]domain.Post, error)
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	UpdateBody(ctx context.Context, postID uuid.UUID, body *delta.Delta, summary *string) (*domain.Post, error)
	Neighbours(ctx context.Context, post *domain.Post) (prev, next *domain.Post, err error)
}

type valueRepo interface {
	ListPostValues(ctx context.Context, postID uuid.UUID) ([]domain.MetricValue, error)
	LatestValues(ctx context.Context, journalID uuid.UUID) (map[uuid.UUID]json.RawMessage, error)
	History(ctx context.Context, metricID uuid.UUID) ([]domain.DatedValue, error)
}

type subscriptionRepo interface {
	Subscribe(ctx context.Context, journalID, userID uuid.UUID) error
	Unsubscribe(ctx context.Context, journalID, userID uuid.UUID) error
	IsSubscribed(ctx context.Context, journalID, userID uuid.UUID) (bool, error)
}

type reconciler interface {
	Reconcile(ctx context.Context, postID, metricID uuid.UUID, change json.RawMessage) (reconcile.Result, error)
	ReconcileMany(ctx context.Context, postID uuid.UUID, changes map[uuid.UUID]json.RawMessage) ([]reconcile.Result, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the repositories the models read from and write to. It is
// shared by all requests; models are per request.
type Store struct {
	journals      journalRepo
	metrics       metricRepo
	posts         postRepo
	values        valueRepo
	subscriptions subscriptionRepo
	reconciler    reconciler
	tx            txManager
}

// NewStore creates a Store.
func NewStore(
	journals journalRepo,
	metrics metricRepo,
	posts postRepo,
	values valueRepo,
	subscriptions subscriptionRepo,
	reconciler reconciler,
	tx txManager,
) *Store {
	return &Store{
		journals:      journals,
		metrics:       metrics,
		posts:         posts,
		values:        values,
		subscriptions: subscriptions,
		reconciler:    reconciler,
		tx:            tx,
	}
}
