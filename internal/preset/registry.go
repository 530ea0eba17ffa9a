// Package preset holds the prebuilt section templates a document can be
// seeded from. Templates are immutable; consuming one always deep-builds
// fresh blocks so no two documents ever share ids or mutable state.
package preset

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

//go:embed presets/*.json
var presetFS embed.FS

// Preset is a named, fully-formed section template: block descriptors plus
// optional document-level settings for full-page layouts.
type Preset struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Description  string         `json:"description,omitempty"`
	Blocks       []block.Spec   `json:"blocks"`
	PageSettings map[string]any `json:"pageSettings,omitempty"`
}

// Registry is the loaded preset catalog.
type Registry struct {
	presets map[string]Preset
}

// NewRegistry decodes every embedded preset file. A malformed file is a
// build defect, so decoding errors are returned rather than skipped.
func NewRegistry() (*Registry, error) {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil, fmt.Errorf("reading embedded presets: %w", err)
	}

	r := &Registry{presets: map[string]Preset{}}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := presetFS.ReadFile("presets/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading preset %s: %w", entry.Name(), err)
		}
		var p Preset
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decoding preset %s: %w", entry.Name(), err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("preset %s: missing id", entry.Name())
		}
		if _, dup := r.presets[p.ID]; dup {
			return nil, fmt.Errorf("preset %s: duplicate id %q", entry.Name(), p.ID)
		}
		r.presets[p.ID] = p
	}
	return r, nil
}

// List returns every preset sorted by category, then name.
func (r *Registry) List() []Preset {
	out := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Get returns the preset with the given id.
func (r *Registry) Get(id string) (Preset, bool) {
	p, ok := r.presets[id]
	return p, ok
}

// Instantiate builds fresh blocks from the preset's descriptors. Every call
// mints new ids throughout the tree.
func (r *Registry) Instantiate(id string) ([]*domain.Block, error) {
	p, ok := r.presets[id]
	if !ok {
		return nil, fmt.Errorf("preset %q not found", id)
	}
	blocks := make([]*domain.Block, 0, len(p.Blocks))
	for _, spec := range p.Blocks {
		b, err := block.FromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("instantiating preset %q: %w", id, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// NewDocument seeds a full document from the preset: instantiated blocks
// plus the preset's page settings merged over the defaults.
func (r *Registry) NewDocument(id, name string) (*domain.Document, error) {
	p, ok := r.presets[id]
	if !ok {
		return nil, fmt.Errorf("preset %q not found", id)
	}
	blocks, err := r.Instantiate(id)
	if err != nil {
		return nil, err
	}
	settings := merge.Merge(block.DefaultPageSettings(), p.PageSettings)
	return &domain.Document{
		ID:           block.NewID(),
		Name:         name,
		Blocks:       blocks,
		PageSettings: settings,
		Language:     "en",
	}, nil
}
