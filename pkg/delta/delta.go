package delta

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrOutOfBounds is returned by Apply when a changeset retains or deletes
	// past the end of the document.
	ErrOutOfBounds = errors.New("changeset exceeds document length")

	// ErrNotDocument is returned by Apply when the base contains retain or
	// delete operations.
	ErrNotDocument = errors.New("delta is not a document")

	// ErrSplitsCharacter is returned by Apply when a retain or delete ends
	// between the two UTF-16 units of a single character.
	ErrSplitsCharacter = errors.New("changeset splits a character")
)

// Delta is an ordered sequence of operations. A delta made only of inserts is
// a document; any other delta is a changeset.
type Delta struct {
	Ops []Op
}

// New returns a delta holding a copy of ops, without normalization. Later
// pushes never write into the caller's slice.
func New(ops ...Op) Delta {
	if len(ops) == 0 {
		return Delta{}
	}
	return Delta{Ops: append([]Op(nil), ops...)}
}

// Insert appends a text insert.
func (d *Delta) Insert(text string, attrs Attributes) *Delta {
	if text == "" {
		return d
	}
	return d.Push(Op{Insert: text, Attributes: attrs})
}

// InsertEmbed appends an embed insert such as an image.
func (d *Delta) InsertEmbed(embed map[string]any, attrs Attributes) *Delta {
	if len(embed) == 0 {
		return d
	}
	return d.Push(Op{Embed: embed, Attributes: attrs})
}

// Retain appends a retain of n units.
func (d *Delta) Retain(n int, attrs Attributes) *Delta {
	if n <= 0 {
		return d
	}
	return d.Push(Op{Retain: n, Attributes: attrs})
}

// Delete appends a delete of n units.
func (d *Delta) Delete(n int) *Delta {
	if n <= 0 {
		return d
	}
	return d.Push(Op{Delete: n})
}

// Push appends op, merging it with the last operation where possible. An
// insert following a delete is placed before the delete so that equivalent
// deltas share one canonical form.
func (d *Delta) Push(op Op) *Delta {
	idx := len(d.Ops)
	if idx > 0 {
		last := d.Ops[idx-1]
		if op.Type() == OpDelete && last.Type() == OpDelete {
			d.Ops[idx-1].Delete += op.Delete
			return d
		}
		if last.Type() == OpDelete && op.Type() == OpInsert {
			idx--
			if idx == 0 {
				d.Ops = append([]Op{op}, d.Ops...)
				return d
			}
			last = d.Ops[idx-1]
		}
		if attributesEqual(op.Attributes, last.Attributes) {
			switch {
			case op.IsTextInsert() && last.IsTextInsert():
				d.Ops[idx-1].Insert = last.Insert + op.Insert
				return d
			case op.Type() == OpRetain && last.Type() == OpRetain:
				d.Ops[idx-1].Retain += op.Retain
				return d
			}
		}
	}
	if idx == len(d.Ops) {
		d.Ops = append(d.Ops, op)
		return d
	}
	d.Ops = append(d.Ops, Op{})
	copy(d.Ops[idx+1:], d.Ops[idx:])
	d.Ops[idx] = op
	return d
}

func (d Delta) chop() Delta {
	if n := len(d.Ops); n > 0 {
		last := d.Ops[n-1]
		if last.Type() == OpRetain && len(last.Attributes) == 0 {
			d.Ops = d.Ops[:n-1]
		}
	}
	return d
}

// IsDocument reports whether d contains only inserts.
func (d Delta) IsDocument() bool {
	for _, op := range d.Ops {
		if op.Type() != OpInsert {
			return false
		}
	}
	return true
}

// Length returns the total length of all operations.
func (d Delta) Length() int {
	n := 0
	for _, op := range d.Ops {
		n += op.Len()
	}
	return n
}

// BaseLength returns the number of document units a changeset consumes,
// i.e. the sum of its retains and deletes.
func (d Delta) BaseLength() int {
	n := 0
	for _, op := range d.Ops {
		switch op.Type() {
		case OpRetain:
			n += op.Retain
		case OpDelete:
			n += op.Delete
		}
	}
	return n
}

// Compose returns a delta equivalent to applying d and then other. Past the
// end of d the base is treated as an unbounded retain.
func (d Delta) Compose(other Delta) Delta {
	a := newIterator(d.Ops)
	b := newIterator(other.Ops)
	var out Delta

	for a.hasNext() || b.hasNext() {
		switch {
		case b.peekType() == OpInsert:
			out.Push(b.next(math.MaxInt))
		case a.peekType() == OpDelete:
			out.Push(a.next(math.MaxInt))
		default:
			length := min(a.peekLength(), b.peekLength())
			aOp := a.next(length)
			bOp := b.next(length)
			switch {
			case bOp.Type() == OpRetain:
				var op Op
				switch {
				case aOp.Type() == OpRetain:
					op.Retain = length
				case aOp.Embed != nil:
					op.Embed = aOp.Embed
				default:
					op.Insert = aOp.Insert
				}
				op.Attributes = composeAttributes(aOp.Attributes, bOp.Attributes, aOp.Type() == OpRetain)
				out.Push(op)
			case bOp.Type() == OpDelete && aOp.Type() == OpRetain:
				out.Push(bOp)
			}
			// delete over insert cancels out
		}
	}
	return out.chop()
}

// Apply composes change onto the document doc. It fails when doc is not a
// document, when change reaches past its end, or when one of its retains or
// deletes ends inside a surrogate pair.
func Apply(doc, change Delta) (Delta, error) {
	if !doc.IsDocument() {
		return Delta{}, ErrNotDocument
	}
	if need, have := change.BaseLength(), doc.Length(); need > have {
		return Delta{}, fmt.Errorf("%w: changeset spans %d units, document has %d", ErrOutOfBounds, need, have)
	}
	if points := splitPoints(doc.Ops); points != nil {
		pos := 0
		for _, op := range change.Ops {
			if op.Type() == OpInsert {
				continue
			}
			pos += op.Len()
			if points[pos] {
				return Delta{}, fmt.Errorf("%w: boundary at unit %d", ErrSplitsCharacter, pos)
			}
		}
	}
	return doc.Compose(change), nil
}

// FirstLine returns the text of doc up to the first newline. Text after the
// first embed is ignored.
func FirstLine(doc Delta) string {
	var b strings.Builder
	for _, op := range doc.Ops {
		if !op.IsTextInsert() {
			break
		}
		if i := strings.IndexByte(op.Insert, '\n'); i >= 0 {
			b.WriteString(op.Insert[:i])
			break
		}
		b.WriteString(op.Insert)
	}
	return b.String()
}

// PlainText concatenates the text inserts of doc.
func PlainText(doc Delta) string {
	var b strings.Builder
	for _, op := range doc.Ops {
		if op.IsTextInsert() {
			b.WriteString(op.Insert)
		}
	}
	return b.String()
}

// MarshalJSON encodes d as {"ops": [...]}.
func (d Delta) MarshalJSON() ([]byte, error) {
	ops := d.Ops
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(struct {
		Ops []Op `json:"ops"`
	}{Ops: ops})
}

// UnmarshalJSON decodes {"ops": [...]}. A missing ops array is an empty
// delta.
func (d *Delta) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var w struct {
		Ops json.RawMessage `json:"ops"`
	}
	if err := dec.Decode(&w); err != nil {
		return fmt.Errorf("invalid delta: %w", err)
	}
	if len(w.Ops) == 0 || bytes.Equal(w.Ops, []byte("null")) {
		d.Ops = nil
		return nil
	}
	ops, err := ParseOps(w.Ops)
	if err != nil {
		return err
	}
	d.Ops = ops
	return nil
}

type iterator struct {
	ops    []Op
	index  int
	offset int
}

func newIterator(ops []Op) *iterator {
	return &iterator{ops: ops}
}

func (it *iterator) hasNext() bool {
	return it.index < len(it.ops)
}

func (it *iterator) peekLength() int {
	if it.index < len(it.ops) {
		return it.ops[it.index].Len() - it.offset
	}
	return math.MaxInt
}

func (it *iterator) peekType() OpType {
	if it.index < len(it.ops) {
		return it.ops[it.index].Type()
	}
	return OpRetain
}

// next consumes up to length units of the current operation.
func (it *iterator) next(length int) Op {
	if it.index >= len(it.ops) {
		return Op{Retain: length}
	}
	op := it.ops[it.index]
	offset := it.offset
	remaining := op.Len() - offset
	if length >= remaining {
		length = remaining
		it.index++
		it.offset = 0
	} else {
		it.offset += length
	}

	switch op.Type() {
	case OpDelete:
		return Op{Delete: length}
	case OpRetain:
		return Op{Retain: length, Attributes: op.Attributes}
	}
	if op.Embed != nil {
		return Op{Embed: op.Embed, Attributes: op.Attributes}
	}
	return Op{Insert: substrUTF16(op.Insert, offset, length), Attributes: op.Attributes}
}
