package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/model"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
)

// PostView is a post with its neighbours and metric values.
type PostView struct {
	Post     domain.Post
	CanWrite bool
	Prev     *domain.Post
	Next     *domain.Post
	Groups   []model.GroupView
}

// NewPostResult is returned by NewPost.
type NewPostResult struct {
	Post    domain.Post
	Created bool
}

// EditPostResult is returned by EditPost.
type EditPostResult struct {
	Post   domain.Post
	Values []reconcile.Result
}

// ListPosts returns a journal's posts, newest first.
func (s *Service) ListPosts(ctx context.Context, journalID uuid.UUID) ([]domain.Post, error) {
	ac, err := s.resolver(ctx).Journal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	reader, err := model.NewJournalReader(ac, s.store)
	if err != nil {
		return nil, err
	}
	return reader.Posts(ctx)
}

// NewPost returns the journal's post for a date, creating it if needed.
func (s *Service) NewPost(ctx context.Context, input NewPostInput) (*NewPostResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ac, err := s.resolver(ctx).Journal(ctx, input.JournalID)
	if err != nil {
		return nil, err
	}
	writer, err := model.NewJournalWriter(ac, s.store)
	if err != nil {
		return nil, err
	}

	post, created, err := writer.NewPost(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	if created {
		s.log.InfoContext(ctx, "post created",
			slog.String("journal_id", input.JournalID.String()),
			slog.String("post_id", post.ID.String()),
			slog.String("date", input.Date.String()),
		)
	}

	return &NewPostResult{Post: *post, Created: created}, nil
}

// GetPost returns a post with its neighbours and the value of every active
// metric.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*PostView, error) {
	ac, err := s.resolver(ctx).Post(ctx, postID)
	if err != nil {
		return nil, err
	}
	reader, err := model.NewPostReader(ac, s.store)
	if err != nil {
		return nil, err
	}

	post, err := reader.Post(ctx)
	if err != nil {
		return nil, err
	}
	prev, next, err := reader.Neighbours(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := reader.Values(ctx)
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:     *post,
		CanWrite: reader.CanWrite(),
		Prev:     prev,
		Next:     next,
		Groups:   groups,
	}, nil
}

// EditPost replaces the body and applies metric changes in one transaction.
func (s *Service) EditPost(ctx context.Context, input EditPostInput) (*EditPostResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ac, err := s.resolver(ctx).Post(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	writer, err := model.NewPostWriter(ac, s.store)
	if err != nil {
		return nil, err
	}

	out := &EditPostResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Body != nil {
			if _, err := writer.EditBody(txCtx, *input.Body); err != nil {
				return err
			}
		}
		if len(input.Values) > 0 {
			results, err := writer.EditValues(txCtx, input.Values)
			if err != nil {
				return err
			}
			out.Values = results
		}
		post, err := writer.Post(txCtx)
		if err != nil {
			return err
		}
		out.Post = *post
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post edited",
		slog.String("post_id", input.PostID.String()),
		slog.Bool("body", input.Body != nil),
		slog.Int("values", len(input.Values)),
	)

	return out, nil
}
