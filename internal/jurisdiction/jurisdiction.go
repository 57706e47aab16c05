// Package jurisdiction holds one Profile per supported filing workflow.
// A Profile bundles the header patterns, row parsers, and table schemas
// that the conversion engine dispatches on; the parsing machinery itself
// lives in the segment and rowparse packages.
package jurisdiction

import (
	"sort"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/rowparse"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Profile is one jurisdiction's pipeline configuration.
type Profile struct {
	ID     string
	Name   string
	Format filing.Format

	// Patterns in priority order; when a line matches several, the first
	// listed pattern wins.
	Patterns []segment.HeaderPattern
	// Parsers and Schemas are keyed by schedule ID.
	Parsers map[string]rowparse.RowParser
	Schemas map[string]filing.Schema
	// Order fixes the workbook sheet order. Every schedule listed here gets
	// a table even when the document never mentions it.
	Order []string

	// MetadataParser runs over the document preamble (the reserved header
	// schedule); nil when the jurisdiction exposes no filer-level fields.
	MetadataParser rowparse.RowParser
	MetadataSchema filing.Schema
	// MetadataColumns lists filer-level fields copied onto every schedule
	// record, so each row carries its filing context. The listed columns must
	// lead each schedule schema; values come from the parsed metadata plus
	// the reserved "Source File" field (the document name).
	MetadataColumns []string

	// Assemble overrides the segment/parse pipeline entirely. Used by the
	// Pennsylvania TXT workflow, whose output is a single dynamic-width
	// table rather than fixed schedule schemas.
	Assemble func(lines []filing.Line) (*filing.Workbook, error)
}

// Registry resolves jurisdiction IDs to profiles.
type Registry struct {
	profiles map[string]*Profile
}

func NewRegistry(profiles ...*Profile) *Registry {
	r := &Registry{profiles: make(map[string]*Profile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

// DefaultRegistry returns all built-in jurisdiction profiles.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Michigan(),
		Arizona(),
		AlaskaPOFD(),
		Disclosure(),
		Pennsylvania(),
	)
}

func (r *Registry) Get(id string) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, common.NewAppError("JURISDICTION", id, common.ErrUnknownJurisdiction)
	}
	return p, nil
}

// IDs returns the registered jurisdiction IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Replace swaps in a modified profile (pattern overlays).
func (r *Registry) Replace(p *Profile) {
	r.profiles[p.ID] = p
}
