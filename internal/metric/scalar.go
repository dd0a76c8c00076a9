package metric

import (
	"encoding/json"
	"math"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

const maxZeroToTenLabels = 11

// ---------------------------------------------------------------------------
// checkbox
// ---------------------------------------------------------------------------

type CheckboxSchema struct{}

func (CheckboxSchema) Kind() Kind { return KindCheckbox }
func (CheckboxSchema) isSchema()  {}

func (CheckboxSchema) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

type CheckboxValue struct {
	Value bool `json:"value"`
}

func (CheckboxValue) Kind() Kind { return KindCheckbox }
func (CheckboxValue) isValue()   {}

// CheckboxChange replaces the stored checkbox value.
type CheckboxChange struct {
	Value bool
}

func (CheckboxChange) Kind() Kind { return KindCheckbox }
func (CheckboxChange) isChange()  {}

func (c CheckboxChange) MarshalJSON() ([]byte, error) { return json.Marshal(c.Value) }

type checkboxSpec struct{}

func (checkboxSpec) Kind() Kind { return KindCheckbox }

func (checkboxSpec) ParseSchema(raw json.RawMessage) (Schema, error) {
	if _, err := objectFields(raw, ""); err != nil {
		return nil, err
	}
	return CheckboxSchema{}, nil
}

func (checkboxSpec) ParseValue(raw json.RawMessage) (Value, error) {
	v, err := scalarValue(raw)
	if err != nil {
		return nil, err
	}
	b, err := parseBool(v, "value")
	if err != nil {
		return nil, err
	}
	return CheckboxValue{Value: b}, nil
}

func (checkboxSpec) ParseChange(raw json.RawMessage) (Change, error) {
	v, path, err := scalarChange(raw)
	if err != nil {
		return nil, err
	}
	b, err := parseBool(v, path)
	if err != nil {
		return nil, err
	}
	return CheckboxChange{Value: b}, nil
}

func (checkboxSpec) Apply(_ Value, change Change) (Value, error) {
	c, ok := change.(CheckboxChange)
	if !ok {
		return nil, changeKindMismatch(KindCheckbox, change)
	}
	return CheckboxValue{Value: c.Value}, nil
}

// ---------------------------------------------------------------------------
// zeroToTen
// ---------------------------------------------------------------------------

// ZeroToTenSchema carries optional labels for the eleven points of the scale.
type ZeroToTenSchema struct {
	Labels []*string `json:"labels"`
}

func (ZeroToTenSchema) Kind() Kind { return KindZeroToTen }
func (ZeroToTenSchema) isSchema()  {}

// Label returns the label for n, or "" when none is set.
func (s ZeroToTenSchema) Label(n int) string {
	if n < 0 || n >= len(s.Labels) || s.Labels[n] == nil {
		return ""
	}
	return *s.Labels[n]
}

func (s ZeroToTenSchema) MarshalJSON() ([]byte, error) {
	labels := s.Labels
	if labels == nil {
		labels = []*string{}
	}
	return json.Marshal(struct {
		Labels []*string `json:"labels"`
	}{Labels: labels})
}

type ZeroToTenValue struct {
	Value int `json:"value"`
}

func (ZeroToTenValue) Kind() Kind { return KindZeroToTen }
func (ZeroToTenValue) isValue()   {}

type ZeroToTenChange struct {
	Value int
}

func (ZeroToTenChange) Kind() Kind { return KindZeroToTen }
func (ZeroToTenChange) isChange()  {}

func (c ZeroToTenChange) MarshalJSON() ([]byte, error) { return json.Marshal(c.Value) }

type zeroToTenSpec struct{}

func (zeroToTenSpec) Kind() Kind { return KindZeroToTen }

func (zeroToTenSpec) ParseSchema(raw json.RawMessage) (Schema, error) {
	fields, err := objectFields(raw, "", "labels")
	if err != nil {
		return nil, err
	}
	rawLabels, ok := fields["labels"]
	if !ok {
		return nil, domain.NewValidationError("labels", "required")
	}
	var items []json.RawMessage
	if isNull(rawLabels) || json.Unmarshal(rawLabels, &items) != nil {
		return nil, domain.NewValidationError("labels", "must be an array")
	}
	if len(items) > maxZeroToTenLabels {
		return nil, domain.NewValidationError("labels", "must have at most 11 entries")
	}

	labels := make([]*string, len(items))
	var errs []domain.FieldError
	for i, item := range items {
		if isNull(item) {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			errs = append(errs, domain.FieldError{Field: indexPath("labels", i), Message: "must be a string or null"})
			continue
		}
		labels[i] = &s
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return ZeroToTenSchema{Labels: labels}, nil
}

func (zeroToTenSpec) ParseValue(raw json.RawMessage) (Value, error) {
	v, err := scalarValue(raw)
	if err != nil {
		return nil, err
	}
	n, err := parseZeroToTen(v, "value")
	if err != nil {
		return nil, err
	}
	return ZeroToTenValue{Value: n}, nil
}

func (zeroToTenSpec) ParseChange(raw json.RawMessage) (Change, error) {
	v, path, err := scalarChange(raw)
	if err != nil {
		return nil, err
	}
	n, err := parseZeroToTen(v, path)
	if err != nil {
		return nil, err
	}
	return ZeroToTenChange{Value: n}, nil
}

func (zeroToTenSpec) Apply(_ Value, change Change) (Value, error) {
	c, ok := change.(ZeroToTenChange)
	if !ok {
		return nil, changeKindMismatch(KindZeroToTen, change)
	}
	return ZeroToTenValue{Value: c.Value}, nil
}

func parseZeroToTen(raw json.RawMessage, path string) (int, error) {
	f, err := parseNumber(raw, path)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, domain.NewValidationError(path, "must be an integer")
	}
	if f < 0 || f > 10 {
		return 0, domain.NewValidationError(path, "must be between 0 and 10")
	}
	return int(f), nil
}

// ---------------------------------------------------------------------------
// numeric
// ---------------------------------------------------------------------------

type NumericSchema struct {
	Units string `json:"units"`
}

func (NumericSchema) Kind() Kind { return KindNumeric }
func (NumericSchema) isSchema()  {}

type NumericValue struct {
	Value float64 `json:"value"`
}

func (NumericValue) Kind() Kind { return KindNumeric }
func (NumericValue) isValue()   {}

type NumericChange struct {
	Value float64
}

func (NumericChange) Kind() Kind { return KindNumeric }
func (NumericChange) isChange()  {}

func (c NumericChange) MarshalJSON() ([]byte, error) { return json.Marshal(c.Value) }

type numericSpec struct{}

func (numericSpec) Kind() Kind { return KindNumeric }

func (numericSpec) ParseSchema(raw json.RawMessage) (Schema, error) {
	fields, err := objectFields(raw, "", "units")
	if err != nil {
		return nil, err
	}
	rawUnits, ok := fields["units"]
	if !ok {
		return nil, domain.NewValidationError("units", "required")
	}
	units, err := parseString(rawUnits, "units")
	if err != nil {
		return nil, err
	}
	return NumericSchema{Units: units}, nil
}

func (numericSpec) ParseValue(raw json.RawMessage) (Value, error) {
	v, err := scalarValue(raw)
	if err != nil {
		return nil, err
	}
	f, err := parseNumber(v, "value")
	if err != nil {
		return nil, err
	}
	return NumericValue{Value: f}, nil
}

func (numericSpec) ParseChange(raw json.RawMessage) (Change, error) {
	v, path, err := scalarChange(raw)
	if err != nil {
		return nil, err
	}
	f, err := parseNumber(v, path)
	if err != nil {
		return nil, err
	}
	return NumericChange{Value: f}, nil
}

func (numericSpec) Apply(_ Value, change Change) (Value, error) {
	c, ok := change.(NumericChange)
	if !ok {
		return nil, changeKindMismatch(KindNumeric, change)
	}
	return NumericValue{Value: c.Value}, nil
}
