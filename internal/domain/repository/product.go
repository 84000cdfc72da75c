package repository

import (
	"context"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, query string, limit int) ([]model.Product, error)
	Delete(ctx context.Context, id string) error
}
