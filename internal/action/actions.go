// Package action interprets the closed vocabulary of assistant-issued
// document mutations against a store.DocumentStore.
package action

import (
	"github.com/mselnes/forma/internal/block"
)

// Action type discriminators.
const (
	TypeCreateSection      = "create_section"
	TypeUpdateBlock        = "update_block"
	TypeUpdatePageSettings = "update_page_settings"
	TypeAddAnimation       = "add_animation"
	TypeTranslateBlock     = "translate_block"
	TypeSEOSuggestion      = "seo_suggestion"
	TypeAddChildren        = "add_children"
	TypeDuplicateBlock     = "duplicate_block"
)

// KnownTypes enumerates the vocabulary in display order.
var KnownTypes = []string{
	TypeCreateSection,
	TypeUpdateBlock,
	TypeUpdatePageSettings,
	TypeAddAnimation,
	TypeTranslateBlock,
	TypeSEOSuggestion,
	TypeAddChildren,
	TypeDuplicateBlock,
}

// IsKnownType reports whether t belongs to the action vocabulary.
func IsKnownType(t string) bool {
	for _, k := range KnownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// TargetSelected is the sentinel blockId resolving to the current selection.
const TargetSelected = "selected"

// Action is one structured mutation. Which optional fields are meaningful
// depends on Type; the whole shape is JSON-serializable so an assistant can
// produce it directly.
type Action struct {
	Type string `json:"type"`

	// BlockID targets a block by literal id or the "selected" sentinel.
	BlockID string `json:"blockId,omitempty"`

	// Section describes the new top-level section for create_section.
	Section *Section `json:"section,omitempty"`

	// Settings/Styles patch the target for update_block.
	Settings map[string]any `json:"settings,omitempty"`
	Styles   map[string]any `json:"styles,omitempty"`

	// PageSettings patches document-level settings for update_page_settings.
	PageSettings map[string]any `json:"pageSettings,omitempty"`

	// Children lists block descriptors for add_children.
	Children []block.Spec `json:"children,omitempty"`

	// Animation configures add_animation; zero fields fall back to defaults.
	Animation *AnimationPayload `json:"animation,omitempty"`

	// Language and Translations drive translate_block.
	Language     string            `json:"language,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`

	// Suggestions carries seo_suggestion display content.
	Suggestions []Suggestion `json:"suggestions,omitempty"`

	// Count and the per-copy update maps drive duplicate_block. Both maps
	// are keyed by the decimal copy index ("0".."9").
	Count        int                            `json:"count,omitempty"`
	RootUpdates  map[string]map[string]any      `json:"rootUpdates,omitempty"`
	ChildUpdates map[string][]block.ChildUpdate `json:"childUpdates,omitempty"`
}

// Section is the create_section payload: a container wrapper plus child
// descriptors.
type Section struct {
	Name      string           `json:"name,omitempty"`
	Container ContainerPayload `json:"container"`
	Children  []block.Spec     `json:"children,omitempty"`
}

// ContainerPayload carries the section container's settings and styles.
type ContainerPayload struct {
	Settings map[string]any `json:"settings,omitempty"`
	Styles   map[string]any `json:"styles,omitempty"`
}

// AnimationPayload mirrors style.Animation on the wire.
type AnimationPayload struct {
	Type     string  `json:"type,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Delay    float64 `json:"delay,omitempty"`
	Easing   string  `json:"easing,omitempty"`
}

// Suggestion is one SEO issue/fix pair.
type Suggestion struct {
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
	Priority string `json:"priority"`
}

// Result is the uniform outcome record every action yields. Message is
// short, human-readable, and suitable for direct display in an assistant
// transcript.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BlockID string `json:"blockId,omitempty"`
}

// Describe returns a short human label for UI history and logging.
func Describe(a Action) string {
	switch a.Type {
	case TypeCreateSection:
		return "Create section"
	case TypeUpdateBlock:
		return "Update block"
	case TypeUpdatePageSettings:
		return "Update page settings"
	case TypeAddAnimation:
		return "Add animation"
	case TypeTranslateBlock:
		return "Translate block"
	case TypeSEOSuggestion:
		return "SEO suggestions"
	case TypeAddChildren:
		return "Add child blocks"
	case TypeDuplicateBlock:
		return "Duplicate block"
	default:
		return "Unknown action"
	}
}

// IsDisplayOnly reports whether the action produces no document mutation.
// UI layers use this to skip change indicators.
func IsDisplayOnly(a Action) bool {
	return a.Type == TypeSEOSuggestion
}
