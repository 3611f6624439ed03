package product

import (
	"context"

	"github.com/nvasilev/product-catalog-service/internal/model"
)

type Repository interface {
	// Create inserts the product. Returns ErrDuplicateID when the id is
	// already taken, so callers can retry with a new one.
	Create(ctx context.Context, p *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	// FindByID returns nil without error when no row matches.
	FindByID(ctx context.Context, id int) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int) error

	// AdjustStock applies delta to stock_available in a single conditional
	// update that refuses to take the stock negative. Returns ErrNotFound or
	// ErrInsufficientStock when nothing was updated.
	AdjustStock(ctx context.Context, id, delta int) error
}
