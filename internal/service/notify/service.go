// Package notify emails journal subscribers about the posts of a day.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Subject is the subject line of every update email.
const Subject = "New journal update"

type postRepo interface {
	ListByDate(ctx context.Context, date domain.Date) ([]domain.Post, error)
}

type journalRepo interface {
	GetJournal(ctx context.Context, journalID uuid.UUID) (*domain.Journal, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type subscriptionRepo interface {
	ListSubscribers(ctx context.Context, journalID uuid.UUID) ([]domain.Subscriber, error)
}

// sentLedger records delivered notifications so re-runs skip them.
type sentLedger interface {
	Claim(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Release(ctx context.Context, postID, userID uuid.UUID) error
}

type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Report counts the outcome of a run.
type Report struct {
	Posts   int
	Sent    int
	Skipped int
	Failed  int
}

// Service sends new-post notifications.
type Service struct {
	posts    postRepo
	journals journalRepo
	users    userRepo
	subs     subscriptionRepo
	ledger   sentLedger
	mail     mailer
	baseURL  string
	log      *slog.Logger
}

// NewService creates a notification Service. baseURL is the public address
// links in emails point to.
func NewService(
	log *slog.Logger,
	posts postRepo,
	journals journalRepo,
	users userRepo,
	subs subscriptionRepo,
	ledger sentLedger,
	mail mailer,
	baseURL string,
) *Service {
	return &Service{
		posts:    posts,
		journals: journals,
		users:    users,
		subs:     subs,
		ledger:   ledger,
		mail:     mail,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log.With("service", "notify"),
	}
}

// Run notifies every subscriber of every journal that has a post dated
// day. The journal owner is not notified. Failed deliveries are released
// from the ledger so the next run retries them; Run then returns an error
// after all posts were attempted.
func (s *Service) Run(ctx context.Context, day domain.Date) (Report, error) {
	var report Report

	posts, err := s.posts.ListByDate(ctx, day)
	if err != nil {
		return report, fmt.Errorf("list posts: %w", err)
	}
	report.Posts = len(posts)

	var errs []error
	for i := range posts {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.notifyPost(ctx, &posts[i], &report); err != nil {
			errs = append(errs, fmt.Errorf("post %s: %w", posts[i].ID, err))
		}
	}

	s.log.InfoContext(ctx, "notifications sent",
		slog.String("date", day.String()),
		slog.Int("posts", report.Posts),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, errors.Join(errs...)
}

func (s *Service) notifyPost(ctx context.Context, post *domain.Post, report *Report) error {
	journal, err := s.journals.GetJournal(ctx, post.JournalID)
	if err != nil {
		return fmt.Errorf("get journal: %w", err)
	}
	author := "Someone"
	owner, err := s.users.GetByID(ctx, journal.OwnerID)
	switch {
	case err == nil && owner.Name != "":
		author = owner.Name
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("get owner: %w", err)
	}

	subscribers, err := s.subs.ListSubscribers(ctx, journal.ID)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	body := s.body(author, journal, post)
	var errs []error
	for _, sub := range subscribers {
		if sub.UserID == journal.OwnerID || sub.Email == "" {
			continue
		}

		claimed, err := s.ledger.Claim(ctx, post.ID, sub.UserID)
		if err != nil {
			return err
		}
		if !claimed {
			report.Skipped++
			continue
		}

		if err := s.mail.Send(ctx, sub.Email, Subject, body); err != nil {
			report.Failed++
			s.log.WarnContext(ctx, "notification failed",
				slog.String("post_id", post.ID.String()),
				slog.String("user_id", sub.UserID.String()),
				slog.String("error", err.Error()),
			)
			if relErr := s.ledger.Release(ctx, post.ID, sub.UserID); relErr != nil {
				errs = append(errs, relErr)
			}
			errs = append(errs, fmt.Errorf("send to %s: %w", sub.UserID, err))
			continue
		}
		report.Sent++
	}
	return errors.Join(errs...)
}

func (s *Service) body(author string, journal *domain.Journal, post *domain.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wrote a new entry in %q for %s.\n", author, journal.Name, post.Date)
	if post.Summary != nil && *post.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", *post.Summary)
	}
	fmt.Fprintf(&b, "\nRead it online: %s\n", s.PostURL(post.ID))
	return b.String()
}

// PostURL is the public link to a post.
func (s *Service) PostURL(postID uuid.UUID) string {
	return s.baseURL + "/posts/" + postID.String()
}
