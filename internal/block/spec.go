package block

import (
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

// Spec is a partial block description supplied by an external actor (an
// assistant action payload or a preset template). Whatever id the caller
// includes is ignored; construction always mints fresh ones.
type Spec struct {
	Type     domain.BlockType `json:"type"`
	Name     string           `json:"name,omitempty"`
	Settings map[string]any   `json:"settings,omitempty"`
	Styles   map[string]any   `json:"styles,omitempty"`
	Children []Spec           `json:"children,omitempty"`
}

// FromSpec builds a block from a partial description: type defaults first,
// the spec's settings/styles deep-merged on top, children built recursively.
// Children supplied for a leaf type are dropped to keep the children
// invariant intact.
func FromSpec(s Spec) (*domain.Block, error) {
	settings, err := DefaultSettings(s.Type)
	if err != nil {
		return nil, err
	}
	styles, err := DefaultStyles(s.Type)
	if err != nil {
		return nil, err
	}

	name := s.Name
	if name == "" {
		name = TypeLabel(s.Type)
	}

	b := &domain.Block{
		ID:       NewID(),
		Type:     s.Type,
		Name:     name,
		Settings: merge.Merge(settings, s.Settings),
		Styles:   merge.Merge(styles, s.Styles),
	}
	if !domain.CanHaveChildren(s.Type) {
		return b, nil
	}

	b.Children = make([]*domain.Block, 0, len(s.Children))
	for _, cs := range s.Children {
		child, err := FromSpec(cs)
		if err != nil {
			return nil, err
		}
		b.Children = append(b.Children, child)
	}
	return b, nil
}
