// Package app wires configuration, storage and services into the commands
// the daybook binary runs.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	journalrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/journal"
	metricrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/metric"
	postrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/post"
	subscriptionrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/subscription"
	userrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/user"
	valuerepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/value"
	redisadapter "github.com/heartmarshall/daybook-backend/internal/adapter/redis"
	"github.com/heartmarshall/daybook-backend/internal/config"
)

// App holds the process-wide dependencies. Connections are opened on first
// use so that commands only dial what they need.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	pool  *pgxpool.Pool
	redis *goredis.Client
}

// New creates an App from cfg and installs its logger as the default.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg, log: NewLogger(cfg.Log, os.Stderr)}
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.log }

// DB returns the PostgreSQL pool, connecting on first use.
func (a *App) DB(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	pool, err := postgres.NewPool(ctx, a.cfg.Database)
	if err != nil {
		return nil, err
	}
	a.pool = pool
	return pool, nil
}

// Redis returns the Redis client, connecting on first use.
func (a *App) Redis(ctx context.Context) (*goredis.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	client, err := redisadapter.NewClient(ctx, a.cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	a.redis = client
	return client, nil
}

// Close releases every open connection.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return errors.Join(errs...)
}

// repos bundles the PostgreSQL repositories.
type repos struct {
	tx            *postgres.TxManager
	journals      *journalrepo.Repo
	metrics       *metricrepo.Repo
	posts         *postrepo.Repo
	values        *valuerepo.Repo
	subscriptions *subscriptionrepo.Repo
	users         *userrepo.Repo
}

func newRepos(pool *pgxpool.Pool) repos {
	return repos{
		tx:            postgres.NewTxManager(pool),
		journals:      journalrepo.New(pool),
		metrics:       metricrepo.New(pool),
		posts:         postrepo.New(pool),
		values:        valuerepo.New(pool),
		subscriptions: subscriptionrepo.New(pool),
		users:         userrepo.New(pool),
	}
}
