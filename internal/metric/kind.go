// Package metric defines the closed set of metric kinds and, for each kind,
// how its schema, stored value and incoming change are parsed, and how a
// change is applied to a stored value.
package metric

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Kind identifies a metric kind.
type Kind string

const (
	KindCheckbox  Kind = "checkbox"
	KindZeroToTen Kind = "zeroToTen"
	KindNumeric   Kind = "numeric"
	KindRichText  Kind = "richText"
)

// AllKinds returns every supported kind.
func AllKinds() []Kind {
	return []Kind{KindCheckbox, KindZeroToTen, KindNumeric, KindRichText}
}

func (k Kind) String() string { return string(k) }

// IsValid reports whether k is registered.
func (k Kind) IsValid() bool {
	_, ok := registry[k]
	return ok
}

// ParseKind converts s to a Kind, rejecting unknown names.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", domain.NewValidationError("kind", fmt.Sprintf("unknown metric kind %q", s))
	}
	return k, nil
}

// Schema is the per-metric configuration of a kind.
type Schema interface {
	Kind() Kind
	isSchema()
}

// Value is a stored metric value of a kind. A nil Value means no value.
type Value interface {
	Kind() Kind
	isValue()
}

// Change is an edit to a metric value of a kind.
type Change interface {
	Kind() Kind
	isChange()
}

// KindSpec describes one metric kind.
type KindSpec interface {
	Kind() Kind
	ParseSchema(raw json.RawMessage) (Schema, error)
	// ParseValue parses a non-null stored value.
	ParseValue(raw json.RawMessage) (Value, error)
	ParseChange(raw json.RawMessage) (Change, error)
	// Apply merges change into old. old may be nil.
	Apply(old Value, change Change) (Value, error)
}

var registry = map[Kind]KindSpec{
	KindCheckbox:  checkboxSpec{},
	KindZeroToTen: zeroToTenSpec{},
	KindNumeric:   numericSpec{},
	KindRichText:  richTextSpec{},
}

// Lookup returns the registered KindSpec for kind.
func Lookup(kind Kind) (KindSpec, error) {
	spec, ok := registry[kind]
	if !ok {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown metric kind %q", kind))
	}
	return spec, nil
}

// MustLookup is Lookup for kinds known to be registered; it panics otherwise.
func MustLookup(kind Kind) KindSpec {
	spec, err := Lookup(kind)
	if err != nil {
		panic("metric kind not registered: " + string(kind))
	}
	return spec
}
