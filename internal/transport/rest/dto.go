package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
	"github.com/heartmarshall/daybook-backend/internal/model"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
	"github.com/heartmarshall/daybook-backend/internal/service/reconcile"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

type journalResponse struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Body        *delta.Delta `json:"body,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type journalDetailResponse struct {
	journalResponse
	CanWrite   bool            `json:"canWrite"`
	Subscribed bool            `json:"subscribed"`
	Groups     []groupResponse `json:"groups"`
	ReaderIDs  []uuid.UUID     `json:"readerIds,omitempty"`
}

type groupResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	SortOrder   int              `json:"sortOrder"`
	Metrics     []metricResponse `json:"metrics"`
}

type metricResponse struct {
	ID          uuid.UUID     `json:"id"`
	GroupID     uuid.UUID     `json:"groupId"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Kind        metric.Kind   `json:"kind"`
	Schema      metric.Schema `json:"schema"`
	Value       metric.Value  `json:"value"`
}

type postRef struct {
	ID   uuid.UUID   `json:"id"`
	Date domain.Date `json:"date"`
}

type postResponse struct {
	ID        uuid.UUID    `json:"id"`
	JournalID uuid.UUID    `json:"journalId"`
	Date      domain.Date  `json:"date"`
	Body      *delta.Delta `json:"body,omitempty"`
	Summary   *string      `json:"summary,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type postDetailResponse struct {
	postResponse
	CanWrite bool            `json:"canWrite"`
	Prev     *postRef        `json:"prev,omitempty"`
	Next     *postRef        `json:"next,omitempty"`
	Groups   []groupResponse `json:"groups"`
}

type newPostResponse struct {
	Post    postResponse `json:"post"`
	Created bool         `json:"created"`
}

type valueResultResponse struct {
	MetricID uuid.UUID    `json:"metricId"`
	Value    metric.Value `json:"value"`
	Deleted  bool         `json:"deleted"`
	Summary  *string      `json:"summary,omitempty"`
}

type editPostResponse struct {
	Post   postResponse          `json:"post"`
	Values []valueResultResponse `json:"values"`
}

type editValueResponse struct {
	Success bool         `json:"success"`
	Value   metric.Value `json:"value"`
	Summary *string      `json:"summary,omitempty"`
}

type historyResponse struct {
	MetricID uuid.UUID      `json:"metricId"`
	Name     string         `json:"name"`
	Kind     metric.Kind    `json:"kind"`
	Schema   metric.Schema  `json:"schema"`
	Dates    []domain.Date  `json:"dates"`
	PostIDs  []uuid.UUID    `json:"postIds"`
	Values   []metric.Value `json:"values"`
}

func toJournalResponse(j domain.Journal) journalResponse {
	return journalResponse{
		ID:          j.ID,
		OwnerID:     j.OwnerID,
		Name:        j.Name,
		Description: j.Description,
		Body:        j.Body,
		IsPublic:    j.IsPublic,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func toJournalDetail(v *journal.JournalView) journalDetailResponse {
	return journalDetailResponse{
		journalResponse: toJournalResponse(v.Journal),
		CanWrite:        v.CanWrite,
		Subscribed:      v.Subscribed,
		Groups:          toGroupResponses(v.Groups),
		ReaderIDs:       v.ReaderIDs,
	}
}

func toGroupResponses(groups []model.GroupView) []groupResponse {
	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		metrics := make([]metricResponse, 0, len(g.Metrics))
		for _, m := range g.Metrics {
			metrics = append(metrics, metricResponse{
				ID:          m.Metric.ID,
				GroupID:     m.Metric.GroupID,
				Name:        m.Metric.Name,
				Description: m.Metric.Description,
				Kind:        m.Data.Kind,
				Schema:      m.Data.Schema,
				Value:       m.Data.Value,
			})
		}
		out = append(out, groupResponse{
			ID:          g.Group.ID,
			Name:        g.Group.Name,
			Description: g.Group.Description,
			SortOrder:   g.Group.SortOrder,
			Metrics:     metrics,
		})
	}
	return out
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		JournalID: p.JournalID,
		Date:      p.Date,
		Body:      p.Body,
		Summary:   p.Summary,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostRef(p *domain.Post) *postRef {
	if p == nil {
		return nil
	}
	return &postRef{ID: p.ID, Date: p.Date}
}

func toPostDetail(v *journal.PostView) postDetailResponse {
	return postDetailResponse{
		postResponse: toPostResponse(v.Post),
		CanWrite:     v.CanWrite,
		Prev:         toPostRef(v.Prev),
		Next:         toPostRef(v.Next),
		Groups:       toGroupResponses(v.Groups),
	}
}

func toEditPostResponse(res *journal.EditPostResult) editPostResponse {
	values := make([]valueResultResponse, 0, len(res.Values))
	for _, v := range res.Values {
		values = append(values, toValueResult(v))
	}
	return editPostResponse{Post: toPostResponse(res.Post), Values: values}
}

func toValueResult(r reconcile.Result) valueResultResponse {
	return valueResultResponse{
		MetricID: r.MetricID,
		Value:    r.Value,
		Deleted:  r.Deleted,
		Summary:  r.Summary,
	}
}

func toHistoryResponse(h *model.History) historyResponse {
	return historyResponse{
		MetricID: h.Metric.ID,
		Name:     h.Metric.Name,
		Kind:     h.Series.Kind,
		Schema:   h.Series.Schema,
		Dates:    h.Dates,
		PostIDs:  h.PostIDs,
		Values:   h.Series.Values,
	}
}
