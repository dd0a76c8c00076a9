package rest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/service/notify"
	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
)

type notifier interface {
	Run(ctx context.Context, day domain.Date) (notify.Report, error)
}

// CronHandler lets an external scheduler trigger background jobs.
type CronHandler struct {
	notify notifier
	secret string
	log    *slog.Logger
	now    func() time.Time
}

// NewCronHandler creates a CronHandler. An empty secret disables the
// endpoints.
func NewCronHandler(notify notifier, secret string, logger *slog.Logger) *CronHandler {
	return &CronHandler{
		notify: notify,
		secret: secret,
		log:    logger.With("handler", "cron"),
		now:    time.Now,
	}
}

type notifyResponse struct {
	Day     domain.Date `json:"day"`
	Posts   int         `json:"posts"`
	Sent    int         `json:"sent"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
}

// Notify handles POST /api/cron/notify. It emails subscribers about the
// posts of ?date=YYYY-MM-DD, yesterday (UTC) by default.
func (h *CronHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	day := domain.DateOf(h.now().UTC()).AddDays(-1)
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		day = d
	}

	report, err := h.notify.Run(r.Context(), day)
	resp := notifyResponse{
		Day:     day,
		Posts:   report.Posts,
		Sent:    report.Sent,
		Skipped: report.Skipped,
		Failed:  report.Failed,
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "notify run failed",
			slog.String("day", day.String()),
			slog.Int("failed", report.Failed),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CronHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token := middleware.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
