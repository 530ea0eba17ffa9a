package block

import (
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

// MaxDuplicates caps how many copies a single duplication request may
// produce.
const MaxDuplicates = 10

// identifiedListFields are the settings keys whose array items carry their
// own "id" fields. Duplication regenerates those item ids so copies never
// alias list-item identities with the source block.
var identifiedListFields = []string{
	"links",
	"navLinks",
	"footerLinks",
	"socialLinks",
	"fields",
	"options",
	"slides",
}

// Duplicate deep-clones the subtree rooted at b with value semantics: the
// clone shares no mutable state with the original, and every node plus every
// identified settings list item gets a fresh id. The sharedStyleId reference
// is carried over unchanged, so duplicates stay visually in sync with the
// original until explicitly detached.
func Duplicate(b *domain.Block) *domain.Block {
	if b == nil {
		return nil
	}
	dup := &domain.Block{
		ID:            NewID(),
		Type:          b.Type,
		Name:          b.Name,
		Settings:      merge.Clone(b.Settings),
		Styles:        merge.Clone(b.Styles),
		SharedStyleID: b.SharedStyleID,
	}
	regenerateListItemIDs(dup.Settings)
	if b.Children != nil {
		dup.Children = make([]*domain.Block, 0, len(b.Children))
		for _, c := range b.Children {
			dup.Children = append(dup.Children, Duplicate(c))
		}
	}
	return dup
}

func regenerateListItemIDs(settings map[string]any) {
	for _, field := range identifiedListFields {
		list, ok := settings[field].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if _, hasID := entry["id"]; hasID {
				entry["id"] = NewID()
			}
		}
	}
}

// ChildUpdate is a settings patch addressed to a descendant of a duplicated
// copy by child-index path.
type ChildUpdate struct {
	Path     []int          `json:"path"`
	Settings map[string]any `json:"settings"`
}

// ApplyChildUpdates merges each patch into the settings of the descendant its
// path resolves to. Paths that miss are skipped silently: one stale path must
// not abort the rest of a batch duplication.
func ApplyChildUpdates(root *domain.Block, updates []ChildUpdate) {
	for _, u := range updates {
		target, ok := domain.ByPath(root, u.Path)
		if !ok {
			continue
		}
		target.Settings = merge.Merge(target.Settings, u.Settings)
	}
}
