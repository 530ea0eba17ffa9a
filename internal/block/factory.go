// Package block constructs, merges, and duplicates page tree nodes. It owns
// the per-type default tables and is the only place block ids are minted.
package block

import (
	"github.com/google/uuid"

	"github.com/mselnes/forma/internal/domain"
)

// NewID mints a fresh block identifier. Collision resistance comes from the
// underlying random UUID; no document-level registry is consulted.
func NewID() string {
	return uuid.NewString()
}

// NewSection builds a fully-defaulted block of the given type: fresh id,
// label from the type table, defaults from the constructor tables, and a
// children slice present exactly when the type is child-bearing. Some types
// come with structural children (header/footer regions, the button text, the
// slider arrows and first slide).
func NewSection(t domain.BlockType) (*domain.Block, error) {
	settings, err := DefaultSettings(t)
	if err != nil {
		return nil, err
	}
	styles, err := DefaultStyles(t)
	if err != nil {
		return nil, err
	}

	b := &domain.Block{
		ID:       NewID(),
		Type:     t,
		Name:     TypeLabel(t),
		Settings: settings,
		Styles:   styles,
	}
	if domain.CanHaveChildren(t) {
		b.Children = []*domain.Block{}
	}

	switch t {
	case domain.TypeHeader, domain.TypeFooter:
		if err := addRegionStacks(b); err != nil {
			return nil, err
		}
	case domain.TypeButton:
		if err := addButtonText(b); err != nil {
			return nil, err
		}
	case domain.TypeSlider:
		if err := addSliderChildren(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// addRegionStacks gives headers and footers their start/middle/end stacks.
func addRegionStacks(parent *domain.Block) error {
	for _, region := range []string{"start", "middle", "end"} {
		stack, err := NewSection(domain.TypeStack)
		if err != nil {
			return err
		}
		stack.Name = regionLabel(region)
		stack.Settings["direction"] = "row"
		stack.Settings["region"] = region
		parent.Children = append(parent.Children, stack)
	}
	return nil
}

func regionLabel(region string) string {
	switch region {
	case "start":
		return "Start"
	case "middle":
		return "Middle"
	default:
		return "End"
	}
}

func addButtonText(parent *domain.Block) error {
	text, err := NewSection(domain.TypeText)
	if err != nil {
		return err
	}
	text.Name = "Label"
	text.Settings["content"] = parent.Settings["label"]
	parent.Children = append(parent.Children, text)
	return nil
}

// addSliderChildren builds the two arrow icons and the first slide, and
// records which child plays which role in the slider's settings.
func addSliderChildren(parent *domain.Block) error {
	prev, err := NewSection(domain.TypeIcon)
	if err != nil {
		return err
	}
	prev.Name = "Previous Arrow"
	prev.Settings["icon"] = "chevron-left"

	next, err := NewSection(domain.TypeIcon)
	if err != nil {
		return err
	}
	next.Name = "Next Arrow"
	next.Settings["icon"] = "chevron-right"

	slide, err := NewSection(domain.TypeStack)
	if err != nil {
		return err
	}
	slide.Name = "Slide 1"

	parent.Children = append(parent.Children, prev, next, slide)
	parent.Settings["roles"] = map[string]any{
		"prevArrow": prev.ID,
		"nextArrow": next.ID,
		"slide":     slide.ID,
	}
	return nil
}
