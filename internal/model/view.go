package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
)

// MetricView is a metric definition with its parsed schema and one value.
type MetricView struct {
	Metric domain.Metric
	Data   metric.SchemaAndValue
}

// GroupView is an active metric group with its active metrics in order.
type GroupView struct {
	Group   domain.MetricGroup
	Metrics []MetricView
}

// History is the series of values a metric took across a journal's posts,
// oldest first.
type History struct {
	Metric  domain.Metric
	Dates   []domain.Date
	PostIDs []uuid.UUID
	Series  metric.SchemaAndValues
}

// validateStored checks a stored schema and value against the metric kind.
// Failures mean the database holds data the kind no longer accepts.
func validateStored(m domain.Metric, value json.RawMessage) (metric.SchemaAndValue, error) {
	payload, err := json.Marshal(struct {
		Kind   string          `json:"kind"`
		Schema json.RawMessage `json:"schema"`
		Value  json.RawMessage `json:"value"`
	}{Kind: m.Kind, Schema: m.Schema, Value: value})
	if err != nil {
		return metric.SchemaAndValue{}, fmt.Errorf("encode stored metric: %w", err)
	}
	sv, err := metric.ValidateSchemaAndValue(payload)
	if err != nil {
		return metric.SchemaAndValue{}, &domain.IntegrityError{MetricID: m.ID, Reason: "stored data invalid", Err: err}
	}
	return sv, nil
}

func validateStoredSeries(m domain.Metric, values []json.RawMessage) (metric.SchemaAndValues, error) {
	if values == nil {
		values = []json.RawMessage{}
	}
	payload, err := json.Marshal(struct {
		Kind   string            `json:"kind"`
		Schema json.RawMessage   `json:"schema"`
		Values []json.RawMessage `json:"values"`
	}{Kind: m.Kind, Schema: m.Schema, Values: values})
	if err != nil {
		return metric.SchemaAndValues{}, fmt.Errorf("encode stored metric: %w", err)
	}
	sv, err := metric.ValidateSchemaAndValues(payload)
	if err != nil {
		return metric.SchemaAndValues{}, &domain.IntegrityError{MetricID: m.ID, Reason: "stored data invalid", Err: err}
	}
	return sv, nil
}

// buildGroups arranges metrics under their groups, attaching the value
// found for each metric in values.
func buildGroups(groups []domain.MetricGroup, metrics []domain.Metric, values map[uuid.UUID]json.RawMessage) ([]GroupView, error) {
	byGroup := make(map[uuid.UUID][]MetricView, len(groups))
	for _, m := range metrics {
		sv, err := validateStored(m, values[m.ID])
		if err != nil {
			return nil, err
		}
		byGroup[m.GroupID] = append(byGroup[m.GroupID], MetricView{Metric: m, Data: sv})
	}

	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupView{Group: g, Metrics: byGroup[g.ID]})
	}
	return out, nil
}
