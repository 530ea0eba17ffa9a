package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

// PromoteSharedStyle creates a SharedStyle from the block's style-syncable
// payload and links the block to it.
func (e *Editor) PromoteSharedStyle(blockID, name string) (*domain.SharedStyle, error) {
	b := e.FindBlock(blockID)
	if b == nil {
		return nil, fmt.Errorf("promoting %q: %w", blockID, ErrBlockNotFound)
	}
	now := e.now()
	s := &domain.SharedStyle{
		ID:        uuid.NewString(),
		Name:      name,
		BlockType: b.Type,
		Settings:  merge.Clone(domain.StyleSyncableSettings(b.Type, b.Settings)),
		Styles:    merge.Clone(b.Styles),
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.sharedStyles[s.ID] = s
	b.SharedStyleID = s.ID
	return s, nil
}

// AttachSharedStyle links a block to an existing shared style and applies
// the bundle's style-syncable payload to it. Content fields are untouched.
func (e *Editor) AttachSharedStyle(blockID, styleID string) error {
	b := e.FindBlock(blockID)
	if b == nil {
		return fmt.Errorf("attaching shared style to %q: %w", blockID, ErrBlockNotFound)
	}
	s, ok := e.sharedStyles[styleID]
	if !ok {
		return fmt.Errorf("attaching shared style %q: not found", styleID)
	}
	if s.BlockType != b.Type {
		return fmt.Errorf("attaching shared style %q: type %s does not match block type %s", styleID, s.BlockType, b.Type)
	}
	b.SharedStyleID = s.ID
	b.Settings = merge.Merge(b.Settings, s.Settings)
	b.Styles = merge.Merge(b.Styles, s.Styles)
	return nil
}

// DetachSharedStyle unlinks the block. The record itself is removed once no
// block references it.
func (e *Editor) DetachSharedStyle(blockID string) {
	b := e.FindBlock(blockID)
	if b == nil || b.SharedStyleID == "" {
		return
	}
	styleID := b.SharedStyleID
	b.SharedStyleID = ""
	if !e.sharedStyleReferenced(styleID) {
		delete(e.sharedStyles, styleID)
	}
}

// SharedStyle returns the registry record by id.
func (e *Editor) SharedStyle(id string) (*domain.SharedStyle, bool) {
	s, ok := e.sharedStyles[id]
	return s, ok
}

func (e *Editor) sharedStyleReferenced(styleID string) bool {
	for _, f := range domain.Flatten(e.doc.Blocks) {
		if f.Block.SharedStyleID == styleID {
			return true
		}
	}
	return false
}

// propagateSharedSettings pushes the style-syncable part of a settings patch
// to the shared-style record and every other linked block. Content fields
// never propagate.
func (e *Editor) propagateSharedSettings(b *domain.Block, patch map[string]any) {
	if b.SharedStyleID == "" {
		return
	}
	s, ok := e.sharedStyles[b.SharedStyleID]
	if !ok {
		return
	}
	syncable := domain.StyleSyncableSettings(b.Type, patch)
	if len(syncable) == 0 {
		return
	}
	s.Settings = merge.Merge(s.Settings, syncable)
	s.UpdatedAt = e.now()
	for _, f := range domain.Flatten(e.doc.Blocks) {
		other := f.Block
		if other.ID == b.ID || other.SharedStyleID != s.ID {
			continue
		}
		other.Settings = merge.Merge(other.Settings, syncable)
	}
}

// propagateSharedStyles pushes a styles patch to the record and all linked
// blocks. Styles carry no content fields, so the whole patch is syncable.
func (e *Editor) propagateSharedStyles(b *domain.Block, patch map[string]any) {
	if b.SharedStyleID == "" {
		return
	}
	s, ok := e.sharedStyles[b.SharedStyleID]
	if !ok {
		return
	}
	s.Styles = merge.Merge(s.Styles, patch)
	s.UpdatedAt = e.now()
	for _, f := range domain.Flatten(e.doc.Blocks) {
		other := f.Block
		if other.ID == b.ID || other.SharedStyleID != s.ID {
			continue
		}
		other.Styles = merge.Merge(other.Styles, patch)
	}
}
