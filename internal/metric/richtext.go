package metric

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// RichTextSchema marks at most one rich-text metric per journal as the
// headline whose first line becomes the post summary.
type RichTextSchema struct {
	Headline bool
}

func (RichTextSchema) Kind() Kind { return KindRichText }
func (RichTextSchema) isSchema()  {}

func (s RichTextSchema) MarshalJSON() ([]byte, error) {
	if s.Headline {
		return []byte(`{"headline":true}`), nil
	}
	return []byte("{}"), nil
}

// RichTextValue is a stored document made only of inserts.
type RichTextValue struct {
	Doc delta.Delta
}

func (RichTextValue) Kind() Kind { return KindRichText }
func (RichTextValue) isValue()   {}

func (v RichTextValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.Doc) }

// RichTextChange is a changeset composed onto the stored document.
type RichTextChange struct {
	Changeset delta.Delta
}

func (RichTextChange) Kind() Kind { return KindRichText }
func (RichTextChange) isChange()  {}

func (c RichTextChange) MarshalJSON() ([]byte, error) {
	ops := c.Changeset.Ops
	if ops == nil {
		ops = []delta.Op{}
	}
	return json.Marshal(struct {
		Changeset []delta.Op `json:"changeset"`
	}{Changeset: ops})
}

type richTextSpec struct{}

func (richTextSpec) Kind() Kind { return KindRichText }

func (richTextSpec) ParseSchema(raw json.RawMessage) (Schema, error) {
	fields, err := objectFields(raw, "", "headline")
	if err != nil {
		return nil, err
	}
	h, ok := fields["headline"]
	if !ok {
		return RichTextSchema{}, nil
	}
	b, err := parseBool(h, "headline")
	if err != nil || !b {
		return nil, domain.NewValidationError("headline", "must be true when present")
	}
	return RichTextSchema{Headline: true}, nil
}

func (richTextSpec) ParseValue(raw json.RawMessage) (Value, error) {
	fields, err := objectFields(raw, "", "ops")
	if err != nil {
		return nil, err
	}
	var doc delta.Delta
	if rawOps, ok := fields["ops"]; ok && !isNull(rawOps) {
		ops, err := parseOps(rawOps, "ops")
		if err != nil {
			return nil, err
		}
		doc.Ops = ops
	}
	for i, op := range doc.Ops {
		if op.Type() != delta.OpInsert {
			return nil, domain.NewValidationError(indexPath("ops", i), "documents may only contain inserts")
		}
	}
	return RichTextValue{Doc: doc}, nil
}

func (richTextSpec) ParseChange(raw json.RawMessage) (Change, error) {
	fields, err := objectFields(raw, "", "changeset")
	if err != nil {
		return nil, err
	}
	rawOps, ok := fields["changeset"]
	if !ok || isNull(rawOps) {
		return nil, domain.NewValidationError("changeset", "required")
	}
	ops, err := parseOps(rawOps, "changeset")
	if err != nil {
		return nil, err
	}
	return RichTextChange{Changeset: delta.Delta{Ops: ops}}, nil
}

func (richTextSpec) Apply(old Value, change Change) (Value, error) {
	c, ok := change.(RichTextChange)
	if !ok {
		return nil, changeKindMismatch(KindRichText, change)
	}
	var doc delta.Delta
	if old != nil {
		v, ok := old.(RichTextValue)
		if !ok {
			return nil, &domain.IntegrityError{Reason: fmt.Sprintf("stored value is %s, want %s", old.Kind(), KindRichText)}
		}
		doc = v.Doc
	}
	next, err := delta.Apply(doc, c.Changeset)
	if err != nil {
		if errors.Is(err, delta.ErrOutOfBounds) || errors.Is(err, delta.ErrSplitsCharacter) {
			return nil, domain.NewValidationError("changeset", err.Error())
		}
		return nil, &domain.IntegrityError{Reason: "stored document is invalid", Err: err}
	}
	return RichTextValue{Doc: next}, nil
}

// parseOps decodes an op array and reports errors under path.
func parseOps(raw json.RawMessage, path string) ([]delta.Op, error) {
	ops, err := delta.ParseOps(raw)
	if err != nil {
		var opErr *delta.OpError
		if errors.As(err, &opErr) {
			if opErr.Index < 0 {
				return nil, domain.NewValidationError(path, opErr.Message)
			}
			return nil, domain.NewValidationError(path+opErr.Path(), opErr.Message)
		}
		return nil, domain.NewValidationError(path, err.Error())
	}
	if len(ops) == 0 {
		return nil, nil
	}
	return ops, nil
}

// Headline reports whether schema marks a headline rich-text metric.
func Headline(schema Schema) bool {
	s, ok := schema.(RichTextSchema)
	return ok && s.Headline
}

// Summary returns the first line of a rich-text value, or "" for any other
// value.
func Summary(v Value) string {
	rt, ok := v.(RichTextValue)
	if !ok {
		return ""
	}
	return delta.FirstLine(rt.Doc)
}
