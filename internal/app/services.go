package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/adapter/mailer"
	redisadapter "github.com/heartmarshall/daybook-backend/internal/adapter/redis"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/model"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
	"github.com/heartmarshall/daybook-backend/internal/service/notify"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
	"github.com/heartmarshall/daybook-backend/internal/service/seed"
)

type mailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

func (a *App) journalService(r repos) *journal.Service {
	engine := reconcile.NewEngine(a.log, r.metrics, r.values, r.posts, r.tx)
	store := model.NewStore(r.journals, r.metrics, r.posts, r.values, r.subscriptions, engine, r.tx)
	return journal.NewService(a.log, r.journals, r.journals, store, r.tx)
}

func (a *App) notifyService(ctx context.Context, r repos) (*notify.Service, error) {
	client, err := a.Redis(ctx)
	if err != nil {
		return nil, err
	}
	ledger := redisadapter.NewLedger(client, a.cfg.Redis.NotifyTTL)

	var mail mailSender
	if a.cfg.SMTP.Enabled() {
		mail = mailer.NewSMTP(a.log, a.cfg.SMTP)
	} else {
		a.log.Warn("smtp disabled, notifications are only logged")
		mail = mailer.NewLog(a.log)
	}

	return notify.NewService(a.log, r.posts, r.journals, r.users, r.subscriptions, ledger, mail, a.cfg.App.BaseURL), nil
}

// Seed loads a YAML seed file and applies it. A non-nil journalID overrides
// the journal named in the file.
func (a *App) Seed(ctx context.Context, path string, journalID uuid.UUID) (*seed.Report, error) {
	input, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if journalID != uuid.Nil {
		input.JournalID = journalID
	}

	pool, err := a.DB(ctx)
	if err != nil {
		return nil, err
	}
	r := newRepos(pool)

	seeder := seed.NewSeeder(a.log, r.journals, r.metrics, r.posts, r.values, r.tx)
	report, err := seeder.Seed(ctx, input)
	if err != nil {
		return nil, err
	}

	a.log.InfoContext(ctx, "seed applied",
		slog.String("journal_id", input.JournalID.String()),
		slog.Int("posts", report.Posts),
		slog.Int("values", report.Values),
	)
	return report, nil
}

// Notify emails subscribers about the posts dated day.
func (a *App) Notify(ctx context.Context, day domain.Date) (notify.Report, error) {
	pool, err := a.DB(ctx)
	if err != nil {
		return notify.Report{}, err
	}
	svc, err := a.notifyService(ctx, newRepos(pool))
	if err != nil {
		return notify.Report{}, err
	}
	return svc.Run(ctx, day)
}
