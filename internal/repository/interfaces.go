package repository

import (
	"context"

	"github.com/mselnes/forma/internal/domain"
)

// DocumentRepo persists document aggregates: the block tree, page settings
// and active language.
type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	Delete(ctx context.Context, id string) error
}

// SharedStyleRepo persists the shared-style registry.
type SharedStyleRepo interface {
	Create(ctx context.Context, s *domain.SharedStyle) error
	GetByID(ctx context.Context, id string) (*domain.SharedStyle, error)
	ListByBlockType(ctx context.Context, t domain.BlockType) ([]*domain.SharedStyle, error)
	Update(ctx context.Context, s *domain.SharedStyle) error
	Delete(ctx context.Context, id string) error
}
