// Package profile loads user-supplied pattern overlays: extra or replacement
// schedule header patterns layered onto a built-in jurisdiction profile.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/jurisdiction"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Overlay adds header patterns to one jurisdiction's profile. Prepended
// patterns outrank the built-ins; appended ones are tried after them.
type Overlay struct {
	Jurisdiction string           `json:"jurisdiction"`
	Patterns     []OverlayPattern `json:"patterns"`
}

type OverlayPattern struct {
	ScheduleID string `json:"schedule_id"`
	Pattern    string `json:"pattern"`
	Prepend    bool   `json:"prepend,omitempty"`
}

// buildOverlaySchema returns the JSON-Schema the overlay file must satisfy.
func buildOverlaySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"jurisdiction", "patterns"},
		"properties": map[string]any{
			"jurisdiction": map[string]any{"type": "string", "minLength": 1},
			"patterns": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"schedule_id", "pattern"},
					"properties": map[string]any{
						"schedule_id": map[string]any{"type": "string", "minLength": 1},
						"pattern":     map[string]any{"type": "string", "minLength": 1},
						"prepend":     map[string]any{"type": "boolean"},
					},
				},
			},
		},
	}
}

// Load reads and validates an overlay file.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	return Parse(data)
}

// Parse validates overlay JSON against the schema and compiles it.
func Parse(data []byte) (*Overlay, error) {
	if err := validate(data); err != nil {
		return nil, common.NewAppError("OVERLAY_SCHEMA", err.Error(), common.ErrInvalidInput)
	}
	var o Overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("unmarshal overlay: %w", err)
	}
	for _, p := range o.Patterns {
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return nil, common.NewAppError("OVERLAY_PATTERN",
				fmt.Sprintf("schedule %s: %v", p.ScheduleID, err), common.ErrInvalidInput)
		}
	}
	return &o, nil
}

func validate(data []byte) error {
	b, err := json.Marshal(buildOverlaySchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("overlay.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("overlay.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal overlay: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("overlay does not match schema: %w", err)
	}
	return nil
}

// Apply layers the overlay onto its jurisdiction's profile and returns the
// modified copy. Every pattern must target a schedule the profile knows.
func (o *Overlay) Apply(p *jurisdiction.Profile) (*jurisdiction.Profile, error) {
	if p.ID != o.Jurisdiction {
		return nil, common.NewAppError("OVERLAY_JURISDICTION",
			fmt.Sprintf("overlay targets %s, profile is %s", o.Jurisdiction, p.ID),
			common.ErrInvalidInput)
	}
	var before, after []segment.HeaderPattern
	for _, op := range o.Patterns {
		if _, ok := p.Schemas[op.ScheduleID]; !ok {
			return nil, common.NewAppError("OVERLAY_SCHEDULE",
				fmt.Sprintf("unknown schedule %q for %s", op.ScheduleID, p.ID),
				common.ErrInvalidInput)
		}
		hp := segment.HeaderPattern{ScheduleID: op.ScheduleID, Pattern: regexp.MustCompile(op.Pattern)}
		if op.Prepend {
			before = append(before, hp)
		} else {
			after = append(after, hp)
		}
	}

	modified := *p
	modified.Patterns = make([]segment.HeaderPattern, 0, len(before)+len(p.Patterns)+len(after))
	modified.Patterns = append(modified.Patterns, before...)
	modified.Patterns = append(modified.Patterns, p.Patterns...)
	modified.Patterns = append(modified.Patterns, after...)
	return &modified, nil
}
