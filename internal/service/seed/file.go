package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// fileSeed is the YAML layout of a seed file:
//
//	journal_id: 9b0c...        # optional, the CLI flag wins
//	start_date: "2024-01-01"
//	groups:
//	  - name: Health
//	    metrics:
//	      - name: Mood
//	        kind: zeroToTen
//	        schema: {labels: [awful, null, null, null, null, ok]}
//	        values: [5, 6, null, {value: 7}]
//
// A scalar value is shorthand for {value: <scalar>}.
type fileSeed struct {
	JournalID string      `yaml:"journal_id"`
	StartDate string      `yaml:"start_date"`
	Groups    []fileGroup `yaml:"groups"`
}

type fileGroup struct {
	Name        string       `yaml:"name"`
	Description *string      `yaml:"description"`
	Metrics     []fileMetric `yaml:"metrics"`
}

type fileMetric struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Kind        string  `yaml:"kind"`
	Schema      any     `yaml:"schema"`
	Values      []any   `yaml:"values"`
}

// LoadFile reads a YAML seed file.
func LoadFile(path string) (SeedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedInput{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML seed document. Only the document shape is checked
// here; SeedInput.Validate checks the content.
func Parse(data []byte) (SeedInput, error) {
	var f fileSeed
	if err := yaml.Unmarshal(data, &f); err != nil {
		return SeedInput{}, fmt.Errorf("parse seed file: %w", err)
	}

	var in SeedInput
	if f.JournalID != "" {
		id, err := uuid.Parse(f.JournalID)
		if err != nil {
			return SeedInput{}, domain.NewValidationError("journal_id", "invalid uuid")
		}
		in.JournalID = id
	}
	if f.StartDate != "" {
		d, err := domain.ParseDate(f.StartDate)
		if err != nil {
			return SeedInput{}, domain.NewValidationError("start_date", "must be YYYY-MM-DD")
		}
		in.StartDate = d
	}

	in.Groups = make([]GroupSeed, len(f.Groups))
	for gi, g := range f.Groups {
		group := GroupSeed{Name: g.Name, Description: g.Description, Metrics: make([]MetricSeed, len(g.Metrics))}
		for mi, m := range g.Metrics {
			ms := MetricSeed{Name: m.Name, Description: m.Description, Kind: m.Kind}
			if m.Schema != nil {
				raw, err := json.Marshal(m.Schema)
				if err != nil {
					return SeedInput{}, domain.NewValidationError(fmt.Sprintf("groups[%d].metrics[%d].schema", gi, mi), "not representable as JSON")
				}
				ms.Schema = raw
			}
			ms.Values = make([]json.RawMessage, len(m.Values))
			for vi, v := range m.Values {
				raw, err := json.Marshal(shorthand(v))
				if err != nil {
					return SeedInput{}, domain.NewValidationError(fmt.Sprintf("groups[%d].metrics[%d].values[%d]", gi, mi, vi), "not representable as JSON")
				}
				ms.Values[vi] = raw
			}
			group.Metrics[mi] = ms
		}
		in.Groups[gi] = group
	}
	return in, nil
}

func shorthand(v any) any {
	switch v.(type) {
	case nil, map[string]any, []any:
		return v
	default:
		return map[string]any{"value": v}
	}
}
