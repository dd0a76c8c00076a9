package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	redisadapter "github.com/heartmarshall/daybook-backend/internal/adapter/redis"
	"github.com/heartmarshall/daybook-backend/internal/auth"
	authsvc "github.com/heartmarshall/daybook-backend/internal/service/auth"
	usersvc "github.com/heartmarshall/daybook-backend/internal/service/user"
	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
	"github.com/heartmarshall/daybook-backend/internal/transport/rest"
)

// Handler builds the HTTP handler with every route and middleware.
func (a *App) Handler(ctx context.Context) (http.Handler, error) {
	pool, err := a.DB(ctx)
	if err != nil {
		return nil, err
	}
	client, err := a.Redis(ctx)
	if err != nil {
		return nil, err
	}
	r := newRepos(pool)

	jwt := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.JWTIssuer, a.cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(a.log, r.users, jwt, a.cfg.Auth)
	notifyService, err := a.notifyService(ctx, r)
	if err != nil {
		return nil, err
	}

	limiter := redisadapter.NewLimiter(client)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
			"database": pool,
			"redis": rest.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}),
		}),
		Auth:     rest.NewAuthHandler(authService, a.log),
		Profile:  rest.NewProfileHandler(usersvc.NewService(a.log, r.users), a.log),
		Journals: rest.NewJournalHandler(a.journalService(r), a.log),
		Cron:     rest.NewCronHandler(notifyService, a.cfg.Cron.Secret, a.log),
	}
	if a.cfg.Cron.Secret == "" {
		a.log.Warn("cron.secret is empty, /api/cron/notify is disabled")
	}

	return rest.NewRouter(handlers, rest.Middlewares{
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Logger(a.log),
			middleware.Recovery(a.log),
			middleware.CORS(a.cfg.CORS),
		},
		Identity: middleware.Auth(authService),
		Login:    middleware.RateLimit(limiter, a.log, "login", a.cfg.Limits.LoginPerMinute),
		Register: middleware.RateLimit(limiter, a.log, "register", a.cfg.Limits.RegisterPerMinute),
	}), nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", BuildVersion()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.log.Info("shutdown complete")
	return nil
}
