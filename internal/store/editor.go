package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

// Editor is the in-memory DocumentStore implementation used by the CLI and
// tests. It owns selection state, the per-language translation table, and
// the shared-style registry's lifecycle.
type Editor struct {
	doc        *domain.Document
	selectedID string

	// translations[language][blockID][field] = value
	translations map[string]map[string]map[string]string

	sharedStyles map[string]*domain.SharedStyle

	// previewFn receives animation preview triggers; nil means ignore.
	previewFn func(blockID string)

	now func() time.Time
}

// NewEditor wraps an existing document. A nil document starts an empty one
// with default page settings and language "en".
func NewEditor(doc *domain.Document) *Editor {
	if doc == nil {
		doc = &domain.Document{
			ID:           uuid.NewString(),
			Name:         "Untitled",
			Blocks:       []*domain.Block{},
			PageSettings: block.DefaultPageSettings(),
			Language:     "en",
		}
	}
	if doc.PageSettings == nil {
		doc.PageSettings = block.DefaultPageSettings()
	}
	if doc.Language == "" {
		doc.Language = "en"
	}
	for _, b := range doc.Blocks {
		domain.Normalize(b)
	}
	return &Editor{
		doc:          doc,
		translations: map[string]map[string]map[string]string{},
		sharedStyles: map[string]*domain.SharedStyle{},
		now:          time.Now,
	}
}

// OnAnimationPreview registers the preview callback.
func (e *Editor) OnAnimationPreview(fn func(blockID string)) {
	e.previewFn = fn
}

// Document returns the live document aggregate for persistence.
func (e *Editor) Document() *domain.Document {
	return e.doc
}

// Blocks returns the root block list.
func (e *Editor) Blocks() []*domain.Block {
	return e.doc.Blocks
}

func (e *Editor) FindBlock(id string) *domain.Block {
	return domain.FindByID(e.doc.Blocks, id)
}

func (e *Editor) SelectedBlockID() string { return e.selectedID }

func (e *Editor) SetSelectedBlockID(id string) { e.selectedID = id }

func (e *Editor) AddBlock(parentID string, b *domain.Block) error {
	if b == nil {
		return fmt.Errorf("adding block: nil block")
	}
	if parentID == "" {
		e.doc.Blocks = append(e.doc.Blocks, b)
		return nil
	}
	parent := e.FindBlock(parentID)
	if parent == nil {
		return fmt.Errorf("adding block under %q: %w", parentID, ErrBlockNotFound)
	}
	if !domain.CanHaveChildren(parent.Type) {
		return fmt.Errorf("adding block under %q (%s): %w", parentID, parent.Type, ErrCannotHaveChildren)
	}
	parent.Children = append(parent.Children, b)
	return nil
}

func (e *Editor) UpdateBlockSettings(id string, patch map[string]any) error {
	b := e.FindBlock(id)
	if b == nil {
		return fmt.Errorf("updating settings of %q: %w", id, ErrBlockNotFound)
	}
	b.Settings = merge.Merge(b.Settings, patch)
	e.propagateSharedSettings(b, patch)
	return nil
}

func (e *Editor) UpdateBlockStyles(id string, patch map[string]any) error {
	b := e.FindBlock(id)
	if b == nil {
		return fmt.Errorf("updating styles of %q: %w", id, ErrBlockNotFound)
	}
	b.Styles = merge.Merge(b.Styles, patch)
	e.propagateSharedStyles(b, patch)
	return nil
}

func (e *Editor) DuplicateBlock(id string) (*domain.Block, error) {
	orig := e.FindBlock(id)
	if orig == nil {
		return nil, fmt.Errorf("duplicating %q: %w", id, ErrBlockNotFound)
	}
	dup := block.Duplicate(orig)

	parent, idx := e.findParent(id)
	if parent == nil {
		rootIdx := e.rootIndex(id)
		e.doc.Blocks = insertBlock(e.doc.Blocks, rootIdx+1, dup)
		return dup, nil
	}
	parent.Children = insertBlock(parent.Children, idx+1, dup)
	return dup, nil
}

func (e *Editor) Language() string { return e.doc.Language }

func (e *Editor) SetLanguage(code string) { e.doc.Language = code }

func (e *Editor) SetTranslation(blockID, field, value string) error {
	if e.FindBlock(blockID) == nil {
		return fmt.Errorf("translating %q: %w", blockID, ErrBlockNotFound)
	}
	lang := e.doc.Language
	if e.translations[lang] == nil {
		e.translations[lang] = map[string]map[string]string{}
	}
	if e.translations[lang][blockID] == nil {
		e.translations[lang][blockID] = map[string]string{}
	}
	e.translations[lang][blockID][field] = value
	return nil
}

// Translation looks up a translated field value for the given language.
func (e *Editor) Translation(language, blockID, field string) (string, bool) {
	v, ok := e.translations[language][blockID][field]
	return v, ok
}

func (e *Editor) UpdatePageSettings(patch map[string]any) {
	e.doc.PageSettings = merge.Merge(e.doc.PageSettings, patch)
}

// PageSettings returns the document-level settings.
func (e *Editor) PageSettings() map[string]any {
	return e.doc.PageSettings
}

func (e *Editor) TriggerAnimationPreview(id string) {
	if e.previewFn != nil {
		e.previewFn(id)
	}
}

// findParent returns the parent of the block with the given id and the
// block's index within the parent's children, or (nil, -1) for roots and
// unknown ids.
func (e *Editor) findParent(id string) (*domain.Block, int) {
	for _, r := range e.doc.Blocks {
		if p, idx := findParentIn(r, id); p != nil {
			return p, idx
		}
	}
	return nil, -1
}

func findParentIn(b *domain.Block, id string) (*domain.Block, int) {
	for i, c := range b.Children {
		if c.ID == id {
			return b, i
		}
		if p, idx := findParentIn(c, id); p != nil {
			return p, idx
		}
	}
	return nil, -1
}

func (e *Editor) rootIndex(id string) int {
	for i, r := range e.doc.Blocks {
		if r.ID == id {
			return i
		}
	}
	return len(e.doc.Blocks) - 1
}

func insertBlock(list []*domain.Block, at int, b *domain.Block) []*domain.Block {
	if at < 0 || at > len(list) {
		return append(list, b)
	}
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = b
	return list
}
