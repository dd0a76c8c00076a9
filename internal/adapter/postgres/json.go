package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/daybook-backend/pkg/delta"
)

// DeltaToJSONB encodes a rich-text document for a JSONB column. Nil stays
// SQL NULL.
func DeltaToJSONB(d *delta.Delta) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode delta: %w", err)
	}
	return b, nil
}

// DeltaFromJSONB decodes a JSONB column holding a rich-text document.
func DeltaFromJSONB(raw []byte) (*delta.Delta, error) {
	if raw == nil {
		return nil, nil
	}
	var d delta.Delta
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode delta: %w", err)
	}
	return &d, nil
}
