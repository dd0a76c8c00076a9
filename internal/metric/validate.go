package metric

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// SchemaAndValue is a metric schema together with one optional value.
type SchemaAndValue struct {
	Kind   Kind   `json:"kind"`
	Schema Schema `json:"schema"`
	Value  Value  `json:"value"`
}

// SchemaAndValues is a metric schema together with a series of optional
// values, e.g. one per post.
type SchemaAndValues struct {
	Kind   Kind    `json:"kind"`
	Schema Schema  `json:"schema"`
	Values []Value `json:"values"`
}

// ValidateSchema parses raw as a schema of kind.
func ValidateSchema(kind Kind, raw json.RawMessage) (Schema, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return spec.ParseSchema(raw)
}

// ValidateValue parses raw as a value of kind. A null or empty raw yields a
// nil Value and no error.
func ValidateValue(kind Kind, raw json.RawMessage) (Value, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	return spec.ParseValue(raw)
}

// ValidateChange parses raw as a change of kind. Errors are reported under
// the "change" field.
func ValidateChange(kind Kind, raw json.RawMessage) (Change, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, domain.NewValidationError("change", "required")
	}
	c, err := spec.ParseChange(raw)
	if err != nil {
		return nil, prefixed(err, "change")
	}
	return c, nil
}

// ValidateTaggedSchema parses {"kind": ..., <schema fields>}.
func ValidateTaggedSchema(raw json.RawMessage) (Schema, error) {
	kind, fields, err := taggedObject(raw)
	if err != nil {
		return nil, err
	}
	delete(fields, "kind")
	rest, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("metric.ValidateTaggedSchema: %w", err)
	}
	return ValidateSchema(kind, rest)
}

// ValidateTaggedValue parses {"kind": ..., "value": ...}.
func ValidateTaggedValue(raw json.RawMessage) (Value, error) {
	kind, fields, err := taggedObject(raw, "value")
	if err != nil {
		return nil, err
	}
	v, err := ValidateValue(kind, fields["value"])
	if err != nil {
		return nil, prefixed(err, "value")
	}
	return v, nil
}

// ValidateTaggedChange parses {"kind": ..., "change": ...}.
func ValidateTaggedChange(raw json.RawMessage) (Change, error) {
	kind, fields, err := taggedObject(raw, "change")
	if err != nil {
		return nil, err
	}
	return ValidateChange(kind, fields["change"])
}

// ValidateSchemaAndValue parses {"kind", "schema", "value"}; value may be
// null or absent.
func ValidateSchemaAndValue(raw json.RawMessage) (SchemaAndValue, error) {
	kind, fields, err := taggedObject(raw, "schema", "value")
	if err != nil {
		return SchemaAndValue{}, err
	}
	schema, err := ValidateSchema(kind, fields["schema"])
	if err != nil {
		return SchemaAndValue{}, prefixed(err, "schema")
	}
	value, err := ValidateValue(kind, fields["value"])
	if err != nil {
		return SchemaAndValue{}, prefixed(err, "value")
	}
	return SchemaAndValue{Kind: kind, Schema: schema, Value: value}, nil
}

// ValidateSchemaAndValues parses {"kind", "schema", "values": [...]}; each
// element may be null.
func ValidateSchemaAndValues(raw json.RawMessage) (SchemaAndValues, error) {
	kind, fields, err := taggedObject(raw, "schema", "values")
	if err != nil {
		return SchemaAndValues{}, err
	}
	schema, err := ValidateSchema(kind, fields["schema"])
	if err != nil {
		return SchemaAndValues{}, prefixed(err, "schema")
	}

	var items []json.RawMessage
	rawValues, ok := fields["values"]
	if !ok || isNull(rawValues) || json.Unmarshal(rawValues, &items) != nil {
		return SchemaAndValues{}, domain.NewValidationError("values", "must be an array")
	}

	values := make([]Value, len(items))
	var errs []domain.FieldError
	for i, item := range items {
		v, err := ValidateValue(kind, item)
		if err != nil {
			errs = append(errs, fieldErrors(err, indexPath("values", i))...)
			continue
		}
		values[i] = v
	}
	if len(errs) > 0 {
		return SchemaAndValues{}, domain.NewValidationErrors(errs)
	}
	return SchemaAndValues{Kind: kind, Schema: schema, Values: values}, nil
}

// Apply merges change into old for kind. A stored value of another kind is
// an integrity error; a change of another kind is a validation error.
func Apply(kind Kind, old Value, change Change) (Value, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if old != nil && old.Kind() != kind {
		return nil, &domain.IntegrityError{Reason: fmt.Sprintf("stored value is %s, want %s", old.Kind(), kind)}
	}
	if change == nil || change.Kind() != kind {
		return nil, changeKindMismatch(kind, change)
	}
	v, err := spec.Apply(old, change)
	if err != nil {
		return nil, prefixed(err, "change")
	}
	return v, nil
}

// Encode serializes a value for storage. A nil value encodes as nil.
func Encode(v Value) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("metric.Encode: %w", err)
	}
	return b, nil
}

func taggedObject(raw json.RawMessage, allowed ...string) (Kind, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil || fields == nil {
		return "", nil, domain.NewValidationError("", "must be an object")
	}
	rawKind, ok := fields["kind"]
	if !ok {
		return "", nil, domain.NewValidationError("kind", "required")
	}
	name, err := parseString(rawKind, "kind")
	if err != nil {
		return "", nil, err
	}
	kind, err := ParseKind(name)
	if err != nil {
		return "", nil, err
	}
	if len(allowed) > 0 {
		if _, err := objectFields(raw, "", append(allowed, "kind")...); err != nil {
			return "", nil, err
		}
	}
	return kind, fields, nil
}

func changeKindMismatch(kind Kind, change Change) error {
	got := "null"
	if change != nil {
		got = string(change.Kind())
	}
	return domain.NewValidationError("change", fmt.Sprintf("change is %s, want %s", got, kind))
}

func prefixed(err error, prefix string) error {
	if ve, ok := err.(*domain.ValidationError); ok {
		return ve.WithPrefix(prefix)
	}
	return err
}

func fieldErrors(err error, prefix string) []domain.FieldError {
	if ve, ok := err.(*domain.ValidationError); ok {
		return ve.WithPrefix(prefix).Errors
	}
	return []domain.FieldError{{Field: prefix, Message: err.Error()}}
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
