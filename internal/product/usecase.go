package product

import (
	"context"

	"github.com/nvasilev/product-catalog-service/internal/model"
	"github.com/nvasilev/product-catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int) (*model.Product, error)

	DecrementStock(ctx context.Context, id, quantity int) (*model.Product, error)
	AddToStock(ctx context.Context, id, quantity int) (*model.Product, error)
}
