package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/mselnes/forma/internal/domain"
)

// Document options
type DocumentOption func(*domain.Document)

func WithLanguage(code string) DocumentOption {
	return func(d *domain.Document) {
		d.Language = code
	}
}

func WithBlocks(blocks ...*domain.Block) DocumentOption {
	return func(d *domain.Document) {
		d.Blocks = blocks
	}
}

func WithCreatedAt(t time.Time) DocumentOption {
	return func(d *domain.Document) {
		d.CreatedAt = t
		d.UpdatedAt = t
	}
}

// NewTestDocument builds a document with sane defaults for tests.
func NewTestDocument(name string, opts ...DocumentOption) *domain.Document {
	d := &domain.Document{
		ID:           uuid.NewString(),
		Name:         name,
		Blocks:       []*domain.Block{},
		PageSettings: map[string]any{},
		Language:     "en",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Block options
type BlockOption func(*domain.Block)

func WithSettings(settings map[string]any) BlockOption {
	return func(b *domain.Block) {
		b.Settings = settings
	}
}

func WithStyles(styles map[string]any) BlockOption {
	return func(b *domain.Block) {
		b.Styles = styles
	}
}

func WithChildren(children ...*domain.Block) BlockOption {
	return func(b *domain.Block) {
		b.Children = children
	}
}

// NewTestBlock builds a normalized block of the given type for tests.
func NewTestBlock(t domain.BlockType, name string, opts ...BlockOption) *domain.Block {
	b := &domain.Block{
		ID:   uuid.NewString(),
		Type: t,
		Name: name,
	}
	for _, opt := range opts {
		opt(b)
	}
	domain.Normalize(b)
	return b
}
