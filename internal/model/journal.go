package model

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/authz"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// JournalReader reads one journal the caller may read.
type JournalReader struct {
	auth  authz.Context
	store *Store
}

// NewJournalReader requires read access to the journal scope.
func NewJournalReader(ac authz.Context, store *Store) (*JournalReader, error) {
	if err := ac.Require(false, authz.ScopeJournal); err != nil {
		return nil, err
	}
	return &JournalReader{auth: ac, store: store}, nil
}

// ID returns the journal id.
func (r *JournalReader) ID() uuid.UUID { return r.auth.ID(authz.ScopeJournal) }

// CanWrite reports whether the caller also owns the journal.
func (r *JournalReader) CanWrite() bool {
	c, _ := r.auth.Capability(authz.ScopeJournal)
	return c.Write
}

func (r *JournalReader) Journal(ctx context.Context) (*domain.Journal, error) {
	j, err := r.store.journals.GetJournal(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("get journal: %w", err)
	}
	return j, nil
}

// Groups returns the active groups with their active metrics, each carrying
// the most recent value recorded for it.
func (r *JournalReader) Groups(ctx context.Context) ([]GroupView, error) {
	groups, err := r.store.metrics.ListActiveGroups(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	metrics, err := r.store.metrics.ListActiveMetrics(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	latest, err := r.store.values.LatestValues(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("latest values: %w", err)
	}
	return buildGroups(groups, metrics, latest)
}

// Posts returns the journal's posts, newest first.
func (r *JournalReader) Posts(ctx context.Context) ([]domain.Post, error) {
	posts, err := r.store.posts.ListPosts(ctx, r.ID())
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Subscribed reports whether the caller receives update emails. Anonymous
// callers are never subscribed.
func (r *JournalReader) Subscribed(ctx context.Context) (bool, error) {
	id := r.auth.Identity()
	if id.IsAnonymous() {
		return false, nil
	}
	ok, err := r.store.subscriptions.IsSubscribed(ctx, r.ID(), id.UserID)
	if err != nil {
		return false, fmt.Errorf("get subscription: %w", err)
	}
	return ok, nil
}

// Subscribe turns update emails on or off for the caller. Read access is
// enough, but the caller must be signed in.
func (r *JournalReader) Subscribe(ctx context.Context, on bool) error {
	id := r.auth.Identity()
	if id.IsAnonymous() {
		return domain.NewAuthorizationError(string(authz.ScopeJournal), r.ID(), id)
	}
	var err error
	if on {
		err = r.store.subscriptions.Subscribe(ctx, r.ID(), id.UserID)
	} else {
		err = r.store.subscriptions.Unsubscribe(ctx, r.ID(), id.UserID)
	}
	if err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}
	return nil
}

// JournalWriter edits a journal the caller owns.
type JournalWriter struct {
	*JournalReader
}

// NewJournalWriter requires write access to the journal scope.
func NewJournalWriter(ac authz.Context, store *Store) (*JournalWriter, error) {
	if err := ac.Require(true, authz.ScopeJournal); err != nil {
		return nil, err
	}
	return &JournalWriter{JournalReader: &JournalReader{auth: ac, store: store}}, nil
}

// Edit updates the journal's name, description, body or visibility.
func (w *JournalWriter) Edit(ctx context.Context, params domain.JournalUpdate) (*domain.Journal, error) {
	j, err := w.store.journals.UpdateJournal(ctx, w.ID(), params)
	if err != nil {
		return nil, fmt.Errorf("update journal: %w", err)
	}
	return j, nil
}

// SetPublic changes whether anyone may read the journal.
func (w *JournalWriter) SetPublic(ctx context.Context, public bool) (*domain.Journal, error) {
	return w.Edit(ctx, domain.JournalUpdate{IsPublic: &public})
}

// Readers returns the users allowed to read the journal.
func (w *JournalWriter) Readers(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := w.store.journals.ListReaders(ctx, w.ID())
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	return ids, nil
}

// SetReaders replaces the reader list. The owner is never listed.
func (w *JournalWriter) SetReaders(ctx context.Context, readerIDs []uuid.UUID) error {
	owner := w.auth.Identity().UserID
	ids := make([]uuid.UUID, 0, len(readerIDs))
	for _, id := range readerIDs {
		if id == owner || id == uuid.Nil || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	if err := w.store.journals.SetReaders(ctx, w.ID(), ids); err != nil {
		return fmt.Errorf("set readers: %w", err)
	}
	return nil
}

// NewPost returns the journal's post for date, creating it when none
// exists. created reports whether a post was inserted.
func (w *JournalWriter) NewPost(ctx context.Context, date domain.Date) (post *domain.Post, created bool, err error) {
	err = w.store.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := w.store.posts.GetPostByDate(txCtx, w.ID(), date)
		if err == nil {
			post = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get post by date: %w", err)
		}
		post, err = w.store.posts.CreatePost(txCtx, &domain.Post{JournalID: w.ID(), Date: date})
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return post, created, nil
}
