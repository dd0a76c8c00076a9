// Package journal is the application entry point for reading and editing
// journals, posts and metric values. Every call resolves the caller's
// capabilities and goes through the scoped models, so an operation the
// caller may not perform fails before any repository is touched.
package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/authz"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/model"
	"github.com/heartmarshall/daybook-backend/pkg/ctxutil"
)

type accessRepo interface {
	AccessByJournal(ctx context.Context, journalID uuid.UUID) (domain.JournalAccess, error)
	AccessByPost(ctx context.Context, postID uuid.UUID) (domain.JournalAccess, error)
	AccessByMetric(ctx context.Context, metricID uuid.UUID) (domain.JournalAccess, error)
}

type journalLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides journal, post and metric value operations.
type Service struct {
	access   accessRepo
	journals journalLister
	store    *model.Store
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Journal service.
func NewService(
	log *slog.Logger,
	access accessRepo,
	journals journalLister,
	store *model.Store,
	tx txManager,
) *Service {
	return &Service{
		access:   access,
		journals: journals,
		store:    store,
		tx:       tx,
		log:      log.With("service", "journal"),
	}
}

// identity reads the caller from ctx. A missing user id is the anonymous
// identity.
func identity(ctx context.Context) domain.Identity {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Anonymous()
	}
	return domain.Identity{UserID: userID, Email: ctxutil.EmailFromCtx(ctx)}
}

func (s *Service) resolver(ctx context.Context) *authz.Resolver {
	return authz.NewResolver(s.access, identity(ctx))
}
