package rest

import (
	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Journals *JournalHandler
	Cron     *CronHandler
}

// Middlewares groups the middleware NewRouter installs.
type Middlewares struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Identity resolves bearer tokens for /api routes.
	Identity middleware.Middleware
	// Login and Register throttle the matching /auth endpoints. Nil disables.
	Login    middleware.Middleware
	Register middleware.Middleware
}

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(h Handlers, mw Middlewares) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Chain(mw.Global...))

	r.Get("/health", h.Health.Health)
	r.Get("/ready", h.Health.Ready)
	r.Get("/live", h.Health.Live)

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.Chain(mw.Login)).Post("/login", h.Auth.Login)
		r.With(middleware.Chain(mw.Register)).Post("/register", h.Auth.Register)
	})

	r.Route("/api", func(r chi.Router) {
		// Authenticated by the cron secret, not a user token.
		r.Post("/cron/notify", h.Cron.Notify)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(mw.Identity))

			r.Get("/me", h.Profile.Me)
			r.Patch("/me", h.Profile.UpdateMe)

			r.Get("/journals", h.Journals.ListJournals)
			r.Route("/journals/{journalID}", func(r chi.Router) {
				r.Get("/", h.Journals.GetJournal)
				r.Patch("/", h.Journals.EditJournal)
				r.Put("/subscription", h.Journals.Subscribe)
				r.Get("/posts", h.Journals.ListPosts)
				r.Post("/posts", h.Journals.NewPost)
			})
			r.Route("/posts/{postID}", func(r chi.Router) {
				r.Get("/", h.Journals.GetPost)
				r.Patch("/", h.Journals.EditPost)
				r.Post("/metrics/{metricID}", h.Journals.EditValue)
			})
			r.Get("/metrics/{metricID}/history", h.Journals.MetricHistory)
		})
	})

	return r
}
