package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/model"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// journalService defines the journal operations exposed over HTTP.
type journalService interface {
	ListJournals(ctx context.Context) ([]domain.Journal, error)
	GetJournal(ctx context.Context, journalID uuid.UUID) (*journal.JournalView, error)
	EditJournal(ctx context.Context, input journal.EditJournalInput) (*domain.Journal, error)
	Subscribe(ctx context.Context, input journal.SubscribeInput) error
	ListPosts(ctx context.Context, journalID uuid.UUID) ([]domain.Post, error)
	NewPost(ctx context.Context, input journal.NewPostInput) (*journal.NewPostResult, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*journal.PostView, error)
	EditPost(ctx context.Context, input journal.EditPostInput) (*journal.EditPostResult, error)
	EditValue(ctx context.Context, input journal.EditValueInput) (*journal.EditValueResult, error)
	MetricHistory(ctx context.Context, metricID uuid.UUID) (*model.History, error)
}

// JournalHandler serves journal, post and metric endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type editJournalRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Body        *delta.Delta `json:"body"`
	IsPublic    *bool        `json:"isPublic"`
	ReaderIDs   *[]uuid.UUID `json:"readerIds"`
}

type subscriptionRequest struct {
	Subscribed bool `json:"subscribed"`
}

type newPostRequest struct {
	Date domain.Date `json:"date"`
}

type editPostRequest struct {
	Body   *delta.Delta                  `json:"body"`
	Values map[uuid.UUID]json.RawMessage `json:"values"`
}

type editValueRequest struct {
	Change json.RawMessage `json:"change"`
}

// ListJournals handles GET /api/journals.
func (h *JournalHandler) ListJournals(w http.ResponseWriter, r *http.Request) {
	journals, err := h.svc.ListJournals(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]journalResponse, 0, len(journals))
	for _, j := range journals {
		out = append(out, toJournalResponse(j))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetJournal handles GET /api/journals/{journalID}.
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "journalID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetJournal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJournalDetail(view))
}

// EditJournal handles PATCH /api/journals/{journalID}.
func (h *JournalHandler) EditJournal(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "journalID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req editJournalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	j, err := h.svc.EditJournal(r.Context(), journal.EditJournalInput{
		JournalID:   id,
		Name:        req.Name,
		Description: req.Description,
		Body:        req.Body,
		IsPublic:    req.IsPublic,
		ReaderIDs:   req.ReaderIDs,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJournalResponse(*j))
}

// Subscribe handles PUT /api/journals/{journalID}/subscription.
func (h *JournalHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "journalID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req subscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Subscribe(r.Context(), journal.SubscribeInput{JournalID: id, Subscribe: req.Subscribed}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionRequest{Subscribed: req.Subscribed})
}

// ListPosts handles GET /api/journals/{journalID}/posts.
func (h *JournalHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "journalID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	posts, err := h.svc.ListPosts(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// NewPost handles POST /api/journals/{journalID}/posts. It answers 201 when
// a post was created and 200 when one already existed for the date.
func (h *JournalHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "journalID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req newPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.NewPost(r.Context(), journal.NewPostInput{JournalID: id, Date: req.Date})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, newPostResponse{Post: toPostResponse(res.Post), Created: res.Created})
}

// GetPost handles GET /api/posts/{postID}.
func (h *JournalHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "postID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostDetail(view))
}

// EditPost handles PATCH /api/posts/{postID}.
func (h *JournalHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "postID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req editPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.EditPost(r.Context(), journal.EditPostInput{PostID: id, Body: req.Body, Values: req.Values})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEditPostResponse(res))
}

// EditValue handles POST /api/posts/{postID}/metrics/{metricID}.
func (h *JournalHandler) EditValue(w http.ResponseWriter, r *http.Request) {
	postID, err := uuidParam(r, "postID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	metricID, err := uuidParam(r, "metricID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req editValueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.EditValue(r.Context(), journal.EditValueInput{PostID: postID, MetricID: metricID, Change: req.Change})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, editValueResponse{Success: res.Success, Value: res.Value, Summary: res.Summary})
}

// MetricHistory handles GET /api/metrics/{metricID}/history.
func (h *JournalHandler) MetricHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "metricID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	history, err := h.svc.MetricHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}
