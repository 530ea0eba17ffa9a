// Package store defines the document-store capability surface the action
// executor mutates the page through, plus the in-memory editor store that
// implements it.
package store

import (
	"errors"

	"github.com/mselnes/forma/internal/domain"
)

// ErrBlockNotFound signals that an id did not resolve to a block in the
// document.
var ErrBlockNotFound = errors.New("block not found")

// ErrCannotHaveChildren signals an add targeting a leaf-type parent.
var ErrCannotHaveChildren = errors.New("block type cannot have children")

// DocumentStore is the capability interface the action executor calls
// outward through. Every mutation is synchronous and immediately visible to
// subsequent calls.
type DocumentStore interface {
	// FindBlock returns the block with the given id, or nil.
	FindBlock(id string) *domain.Block

	// SelectedBlockID returns the current selection, or "" when nothing is
	// selected.
	SelectedBlockID() string
	SetSelectedBlockID(id string)

	// AddBlock appends b under the parent with the given id, or at the top
	// level when parentID is empty.
	AddBlock(parentID string, b *domain.Block) error

	UpdateBlockSettings(id string, patch map[string]any) error
	UpdateBlockStyles(id string, patch map[string]any) error

	// DuplicateBlock clones the block and inserts the copy right after the
	// original under the same parent.
	DuplicateBlock(id string) (*domain.Block, error)

	Language() string
	SetLanguage(code string)

	// SetTranslation records a per-field translated value for the block in
	// the currently active language.
	SetTranslation(blockID, field, value string) error

	UpdatePageSettings(patch map[string]any)

	// TriggerAnimationPreview fires a presentational preview; it mutates
	// nothing in the persisted document.
	TriggerAnimationPreview(id string)
}
