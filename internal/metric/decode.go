package metric

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strings"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// objectFields decodes raw as a JSON object whose keys must be in allowed.
func objectFields(raw json.RawMessage, path string, allowed ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil || fields == nil {
		return nil, domain.NewValidationError(path, "must be an object")
	}
	var errs []domain.FieldError
	for key := range fields {
		if !slices.Contains(allowed, key) {
			errs = append(errs, domain.FieldError{Field: domain.JoinPath(path, key), Message: "unknown field"})
		}
	}
	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b domain.FieldError) int {
			return strings.Compare(a.Field, b.Field)
		})
		return nil, domain.NewValidationErrors(errs)
	}
	return fields, nil
}

func parseBool(raw json.RawMessage, path string) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, domain.NewValidationError(path, "must be a boolean")
}

func parseNumber(raw json.RawMessage, path string) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, domain.NewValidationError(path, "must be a number")
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return 0, domain.NewValidationError(path, "must be a finite number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.NewValidationError(path, "must be a finite number")
	}
	return f, nil
}

func parseString(raw json.RawMessage, path string) (string, error) {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", domain.NewValidationError(path, "must be a string")
	}
	return s, nil
}

// scalarChange returns the payload of a scalar change, accepting both a bare
// scalar and the {"value": x} envelope.
func scalarChange(raw json.RawMessage) (json.RawMessage, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		fields, err := objectFields(trimmed, "", "value")
		if err != nil {
			return nil, "", err
		}
		v, ok := fields["value"]
		if !ok || isNull(v) {
			return nil, "", domain.NewValidationError("value", "required")
		}
		return v, "value", nil
	}
	if isNull(trimmed) {
		return nil, "", domain.NewValidationError("", "required")
	}
	return trimmed, "", nil
}

// scalarValue returns the payload of a stored {"value": x} object.
func scalarValue(raw json.RawMessage) (json.RawMessage, error) {
	fields, err := objectFields(raw, "", "value")
	if err != nil {
		return nil, err
	}
	v, ok := fields["value"]
	if !ok || isNull(v) {
		return nil, domain.NewValidationError("value", "required")
	}
	return v, nil
}
