// Package seed replaces a journal's metric layout and values in bulk. A seed
// lists every group and metric the journal should have; anything not listed
// is deactivated, never deleted, so recorded values survive.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
)

type journalRepo interface {
	GetJournal(ctx context.Context, journalID uuid.UUID) (*domain.Journal, error)
}

type metricRepo interface {
	UpsertGroup(ctx context.Context, g *domain.MetricGroup) (*domain.MetricGroup, error)
	UpsertMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error)
	DeactivateGroupsExcept(ctx context.Context, journalID uuid.UUID, keep []uuid.UUID) error
	DeactivateMetricsExcept(ctx context.Context, journalID uuid.UUID, keep []uuid.UUID) error
}

type postRepo interface {
	GetPostByDate(ctx context.Context, journalID uuid.UUID, date domain.Date) (*domain.Post, error)
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	UpdateSummary(ctx context.Context, postID uuid.UUID, summary *string) error
}

type valueRepo interface {
	UpsertValue(ctx context.Context, postID, metricID uuid.UUID, value json.RawMessage) error
	DeleteValue(ctx context.Context, postID, metricID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Report counts what a seed run wrote.
type Report struct {
	Groups       int
	Metrics      int
	Posts        int
	PostsCreated int
	Values       int
	Cleared      int
}

// Seeder applies seeds.
type Seeder struct {
	journals journalRepo
	metrics  metricRepo
	posts    postRepo
	values   valueRepo
	tx       txManager
	log      *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(
	log *slog.Logger,
	journals journalRepo,
	metrics metricRepo,
	posts postRepo,
	values valueRepo,
	tx txManager,
) *Seeder {
	return &Seeder{
		journals: journals,
		metrics:  metrics,
		posts:    posts,
		values:   values,
		tx:       tx,
		log:      log.With("service", "seed"),
	}
}

// Seed validates the whole input and then writes it in one transaction.
// Running the same seed twice leaves the journal in the same state.
func (s *Seeder) Seed(ctx context.Context, input SeedInput) (*Report, error) {
	groups, err := input.Validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.journals.GetJournal(ctx, input.JournalID); err != nil {
		return nil, fmt.Errorf("get journal: %w", err)
	}

	var report Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		report = Report{}
		w := &writer{Seeder: s, journalID: input.JournalID, start: input.StartDate, report: &report, byDay: map[int]*domain.Post{}}
		return w.run(txCtx, input.Groups, groups)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal seeded",
		slog.String("journal_id", input.JournalID.String()),
		slog.Int("groups", report.Groups),
		slog.Int("metrics", report.Metrics),
		slog.Int("posts_created", report.PostsCreated),
		slog.Int("values", report.Values),
		slog.Int("cleared", report.Cleared),
	)

	return &report, nil
}

// writer holds the state of one seed transaction.
type writer struct {
	*Seeder
	journalID uuid.UUID
	start     domain.Date
	report    *Report
	// byDay caches posts by day index.
	byDay map[int]*domain.Post
}

func (w *writer) run(ctx context.Context, seeds []GroupSeed, groups [][]validated) error {
	keepGroups := make([]uuid.UUID, 0, len(seeds))
	var keepMetrics []uuid.UUID

	for gi, gs := range seeds {
		group, err := w.metrics.UpsertGroup(ctx, &domain.MetricGroup{
			JournalID:   w.journalID,
			Name:        strings.TrimSpace(gs.Name),
			Description: gs.Description,
			SortOrder:   gi,
			Active:      true,
		})
		if err != nil {
			return fmt.Errorf("upsert group %q: %w", gs.Name, err)
		}
		keepGroups = append(keepGroups, group.ID)
		w.report.Groups++

		for mi, v := range groups[gi] {
			m, err := w.metrics.UpsertMetric(ctx, &domain.Metric{
				JournalID:   w.journalID,
				GroupID:     group.ID,
				Name:        strings.TrimSpace(v.seed.Name),
				Description: v.seed.Description,
				Kind:        string(v.data.Kind),
				Schema:      v.seed.Schema,
				SortOrder:   mi,
				Active:      true,
			})
			if err != nil {
				return fmt.Errorf("upsert metric %q: %w", v.seed.Name, err)
			}
			keepMetrics = append(keepMetrics, m.ID)
			w.report.Metrics++

			if err := w.writeValues(ctx, m.ID, v.data); err != nil {
				return err
			}
		}
	}

	if err := w.metrics.DeactivateMetricsExcept(ctx, w.journalID, keepMetrics); err != nil {
		return fmt.Errorf("deactivate metrics: %w", err)
	}
	if err := w.metrics.DeactivateGroupsExcept(ctx, w.journalID, keepGroups); err != nil {
		return fmt.Errorf("deactivate groups: %w", err)
	}
	w.report.Posts = len(w.byDay)
	return nil
}

func (w *writer) writeValues(ctx context.Context, metricID uuid.UUID, data metric.SchemaAndValues) error {
	headline := metric.Headline(data.Schema)

	for day, value := range data.Values {
		post, err := w.post(ctx, day)
		if err != nil {
			return err
		}

		if value == nil {
			if err := w.values.DeleteValue(ctx, post.ID, metricID); err != nil {
				return fmt.Errorf("delete value: %w", err)
			}
			w.report.Cleared++
		} else {
			encoded, err := metric.Encode(value)
			if err != nil {
				return err
			}
			if err := w.values.UpsertValue(ctx, post.ID, metricID, encoded); err != nil {
				return fmt.Errorf("upsert value: %w", err)
			}
			w.report.Values++
		}

		if headline {
			var summary *string
			if value != nil {
				line := metric.Summary(value)
				summary = &line
			}
			if err := w.posts.UpdateSummary(ctx, post.ID, summary); err != nil {
				return fmt.Errorf("update post summary: %w", err)
			}
		}
	}
	return nil
}

// post returns the post for day index i, creating it when missing.
func (w *writer) post(ctx context.Context, i int) (*domain.Post, error) {
	if p, ok := w.byDay[i]; ok {
		return p, nil
	}
	date := w.start.AddDays(i)
	p, err := w.posts.GetPostByDate(ctx, w.journalID, date)
	if errors.Is(err, domain.ErrNotFound) {
		p, err = w.posts.CreatePost(ctx, &domain.Post{JournalID: w.journalID, Date: date})
		if err == nil {
			w.report.PostsCreated++
		}
	}
	if err != nil {
		return nil, fmt.Errorf("post for %s: %w", date, err)
	}
	w.byDay[i] = p
	return p, nil
}
