// Package delta implements the Quill delta format: rich-text documents and
// changesets expressed as insert, retain and delete operations, together with
// the composition rules used to apply a changeset to a stored document.
//
// Lengths are measured in UTF-16 code units so that offsets agree with the
// browser editor producing the changesets. An embed counts as one unit.
package delta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf16"
)

// OpType discriminates the three operation kinds.
type OpType int

const (
	OpInsert OpType = iota + 1
	OpRetain
	OpDelete
)

func (t OpType) String() string {
	switch t {
	case OpInsert:
		return "insert"
	case OpRetain:
		return "retain"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Attributes holds formatting attributes. A nil value on a retain removes
// the attribute from the retained content.
type Attributes map[string]any

// Op is a single delta operation. Exactly one of Insert/Embed, Retain or
// Delete is meaningful, as reported by Type.
type Op struct {
	Insert     string
	Embed      map[string]any
	Retain     int
	Delete     int
	Attributes Attributes
}

// Type reports which operation o represents.
func (o Op) Type() OpType {
	switch {
	case o.Delete > 0:
		return OpDelete
	case o.Retain > 0:
		return OpRetain
	default:
		return OpInsert
	}
}

// Len returns the number of units o covers.
func (o Op) Len() int {
	switch o.Type() {
	case OpDelete:
		return o.Delete
	case OpRetain:
		return o.Retain
	}
	if o.Embed != nil {
		return 1
	}
	return utf16Len(o.Insert)
}

// IsTextInsert reports whether o inserts plain string content.
func (o Op) IsTextInsert() bool {
	return o.Type() == OpInsert && o.Embed == nil
}

// OpError describes a malformed operation inside an op array.
type OpError struct {
	Index   int
	Field   string
	Message string
}

func (e *OpError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("op %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("op %d: %s: %s", e.Index, e.Field, e.Message)
}

// Path returns the location of the error relative to the op array,
// e.g. "[2].retain".
func (e *OpError) Path() string {
	if e.Field == "" {
		return fmt.Sprintf("[%d]", e.Index)
	}
	return fmt.Sprintf("[%d].%s", e.Index, e.Field)
}

type opWire struct {
	Insert     json.RawMessage `json:"insert,omitempty"`
	Retain     json.RawMessage `json:"retain,omitempty"`
	Delete     json.RawMessage `json:"delete,omitempty"`
	Attributes Attributes      `json:"attributes,omitempty"`
}

// MarshalJSON encodes o in the Quill wire form.
func (o Op) MarshalJSON() ([]byte, error) {
	out := struct {
		Insert     any        `json:"insert,omitempty"`
		Retain     int        `json:"retain,omitempty"`
		Delete     int        `json:"delete,omitempty"`
		Attributes Attributes `json:"attributes,omitempty"`
	}{
		Retain:     o.Retain,
		Delete:     o.Delete,
		Attributes: o.Attributes,
	}
	if o.Type() == OpInsert {
		if o.Embed != nil {
			out.Insert = o.Embed
		} else {
			out.Insert = o.Insert
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a single operation, rejecting unknown fields,
// ambiguous operations and non-positive counts. Retaining an embed is not
// supported.
func (o *Op) UnmarshalJSON(data []byte) error {
	op, err := decodeOp(data)
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// ParseOps decodes a JSON array of operations. Errors are *OpError values
// carrying the index of the offending op.
func ParseOps(data []byte) ([]Op, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &OpError{Index: -1, Message: "must be an array of operations"}
	}
	ops := make([]Op, 0, len(raw))
	for i, r := range raw {
		op, err := decodeOp(r)
		if err != nil {
			if oe, ok := err.(*OpError); ok {
				oe.Index = i
				return nil, oe
			}
			return nil, &OpError{Index: i, Message: err.Error()}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func decodeOp(data []byte) (Op, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w opWire
	if err := dec.Decode(&w); err != nil {
		return Op{}, &OpError{Message: "invalid operation: " + err.Error()}
	}

	present := 0
	for _, f := range []json.RawMessage{w.Insert, w.Retain, w.Delete} {
		if len(f) > 0 && !bytes.Equal(f, []byte("null")) {
			present++
		}
	}
	if present != 1 {
		return Op{}, &OpError{Message: "exactly one of insert, retain, delete is required"}
	}

	var op Op
	switch {
	case len(w.Insert) > 0 && !bytes.Equal(w.Insert, []byte("null")):
		switch w.Insert[0] {
		case '"':
			if err := json.Unmarshal(w.Insert, &op.Insert); err != nil {
				return Op{}, &OpError{Field: "insert", Message: "invalid string"}
			}
			if op.Insert == "" {
				return Op{}, &OpError{Field: "insert", Message: "must not be empty"}
			}
		case '{':
			if err := json.Unmarshal(w.Insert, &op.Embed); err != nil {
				return Op{}, &OpError{Field: "insert", Message: "invalid embed"}
			}
			if len(op.Embed) == 0 {
				return Op{}, &OpError{Field: "insert", Message: "embed must not be empty"}
			}
		default:
			return Op{}, &OpError{Field: "insert", Message: "must be a string or an object"}
		}
	case len(w.Retain) > 0 && !bytes.Equal(w.Retain, []byte("null")):
		if w.Retain[0] == '{' {
			return Op{}, &OpError{Field: "retain", Message: "retaining an embed is not supported"}
		}
		n, err := positiveCount(w.Retain)
		if err != nil {
			return Op{}, &OpError{Field: "retain", Message: err.Error()}
		}
		op.Retain = n
	default:
		n, err := positiveCount(w.Delete)
		if err != nil {
			return Op{}, &OpError{Field: "delete", Message: err.Error()}
		}
		if w.Attributes != nil {
			return Op{}, &OpError{Field: "attributes", Message: "not allowed on delete"}
		}
		op.Delete = n
	}

	op.Attributes = w.Attributes
	return op, nil
}

func positiveCount(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, fmt.Errorf("must be a positive integer")
	}
	return int(f), nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// splitPoints returns the offsets of doc that fall between the two halves
// of a surrogate pair.
func splitPoints(doc []Op) map[int]bool {
	var points map[int]bool
	pos := 0
	for _, op := range doc {
		if !op.IsTextInsert() {
			pos += op.Len()
			continue
		}
		for _, r := range op.Insert {
			if r >= 0x10000 {
				if points == nil {
					points = make(map[int]bool)
				}
				points[pos+1] = true
				pos += 2
				continue
			}
			pos++
		}
	}
	return points
}

func substrUTF16(s string, offset, length int) string {
	if offset == 0 && length >= utf16Len(s) {
		return s
	}
	units := utf16.Encode([]rune(s))
	end := offset + length
	if end > len(units) || end < offset {
		end = len(units)
	}
	return string(utf16.Decode(units[offset:end]))
}

func attributesEqual(a, b Attributes) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// composeAttributes merges b over a. When keepNull is false nil-valued keys
// are dropped from the result.
func composeAttributes(a, b Attributes, keepNull bool) Attributes {
	out := make(Attributes, len(a)+len(b))
	for k, v := range b {
		if v == nil && !keepNull {
			continue
		}
		out[k] = v
	}
	for k, v := range a {
		if _, ok := b[k]; ok {
			continue
		}
		// A nil in a is a pending removal; it survives only onto a retain.
		if v == nil && !keepNull {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
