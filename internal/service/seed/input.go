package seed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/metric"
)

const (
	maxGroups      = 50
	maxMetrics     = 100
	maxDays        = 3660
	maxNameLen     = 100
	maxDescription = 500
)

// SeedInput describes the full metric layout of a journal and the values
// recorded for it, one value per day starting at StartDate.
type SeedInput struct {
	JournalID uuid.UUID
	StartDate domain.Date
	Groups    []GroupSeed
}

// GroupSeed is one metric group in display order.
type GroupSeed struct {
	Name        string
	Description *string
	Metrics     []MetricSeed
}

// MetricSeed is one metric in display order. Values[i] is the value on
// StartDate+i; a null entry clears the value for that day.
type MetricSeed struct {
	Name        string
	Description *string
	Kind        string
	Schema      json.RawMessage
	Values      []json.RawMessage
}

// validated is a metric seed whose schema and values passed the kind
// validator.
type validated struct {
	seed MetricSeed
	data metric.SchemaAndValues
}

// Validate checks the layout and every metric's schema and values. It
// returns the validated metrics in group order.
func (i SeedInput) Validate() ([][]validated, error) {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if len(i.Groups) > maxGroups {
		errs = append(errs, domain.FieldError{Field: "groups", Message: fmt.Sprintf("max %d groups", maxGroups)})
	}

	out := make([][]validated, len(i.Groups))
	groupNames := make(map[string]struct{}, len(i.Groups))
	for gi, g := range i.Groups {
		gPath := fmt.Sprintf("groups[%d]", gi)
		errs = append(errs, checkName(gPath, g.Name, groupNames)...)
		if g.Description != nil && len(*g.Description) > maxDescription {
			errs = append(errs, domain.FieldError{Field: gPath + ".description", Message: "max 500 characters"})
		}
		if len(g.Metrics) > maxMetrics {
			errs = append(errs, domain.FieldError{Field: gPath + ".metrics", Message: fmt.Sprintf("max %d metrics", maxMetrics)})
		}

		metricNames := make(map[string]struct{}, len(g.Metrics))
		out[gi] = make([]validated, 0, len(g.Metrics))
		for mi, m := range g.Metrics {
			mPath := fmt.Sprintf("%s.metrics[%d]", gPath, mi)
			errs = append(errs, checkName(mPath, m.Name, metricNames)...)
			if len(m.Values) > maxDays {
				errs = append(errs, domain.FieldError{Field: mPath + ".values", Message: fmt.Sprintf("max %d values", maxDays)})
				continue
			}

			data, err := validateMetric(m)
			if err != nil {
				errs = append(errs, prefixErrors(err, mPath)...)
				continue
			}
			out[gi] = append(out[gi], validated{seed: m, data: data})
		}
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}

func checkName(path, name string, seen map[string]struct{}) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: path + ".name", Message: "required"}}
	case len(name) > maxNameLen:
		return []domain.FieldError{{Field: path + ".name", Message: "max 100 characters"}}
	}
	if _, dup := seen[name]; dup {
		return []domain.FieldError{{Field: path + ".name", Message: fmt.Sprintf("duplicate name %q", name)}}
	}
	seen[name] = struct{}{}
	return nil
}

// validateMetric runs the tagged schema-and-values validator over m.
func validateMetric(m MetricSeed) (metric.SchemaAndValues, error) {
	schema := m.Schema
	if len(schema) == 0 {
		schema = json.RawMessage(`{}`)
	}
	values := m.Values
	if values == nil {
		values = []json.RawMessage{}
	}
	for i, v := range values {
		if len(v) == 0 {
			values[i] = json.RawMessage(`null`)
		}
	}
	raw, err := json.Marshal(struct {
		Kind   string            `json:"kind"`
		Schema json.RawMessage   `json:"schema"`
		Values []json.RawMessage `json:"values"`
	}{Kind: m.Kind, Schema: schema, Values: values})
	if err != nil {
		return metric.SchemaAndValues{}, domain.NewValidationError("", "not valid JSON")
	}
	return metric.ValidateSchemaAndValues(raw)
}

func prefixErrors(err error, prefix string) []domain.FieldError {
	if ve, ok := err.(*domain.ValidationError); ok {
		return ve.WithPrefix(prefix).Errors
	}
	return []domain.FieldError{{Field: prefix, Message: err.Error()}}
}
