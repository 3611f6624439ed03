package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/nvasilev/product-catalog-service/internal/model"
	"github.com/nvasilev/product-catalog-service/internal/product"
	"github.com/nvasilev/product-catalog-service/internal/product/dto"
)

// maxIDAttempts bounds the retry loop when a generated product id collides
// with an existing row. The id space has 900k slots, so hitting this limit
// means the table is effectively full.
const maxIDAttempts = 5

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	now := time.Now().UTC()
	p := &model.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		StockAvailable: input.StockAvailable,
		Category:       input.Category,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Uniqueness is enforced by the primary key; we only retry the draw when
	// the insert reports a collision.
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		p.ProductID = randomProductID()
		err := uc.repo.Create(ctx, p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, product.ErrDuplicateID) {
			return nil, err
		}
		uc.logger.Warn("product id collision, retrying",
			zap.Int("product_id", p.ProductID),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("could not allocate a unique product id after %d attempts", maxIDAttempts)
}

func randomProductID() int {
	return model.ProductIDMin + rand.IntN(model.ProductIDMax-model.ProductIDMin+1)
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	p.Name = input.Name
	p.Description = input.Description
	p.Price = input.Price
	p.StockAvailable = input.StockAvailable
	p.Category = input.Category
	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	// Echo the removed entity to the caller.
	return p, nil
}

func (uc *productUseCase) DecrementStock(ctx context.Context, id, quantity int) (*model.Product, error) {
	return uc.adjustStock(ctx, id, quantity, -1)
}

func (uc *productUseCase) AddToStock(ctx context.Context, id, quantity int) (*model.Product, error) {
	return uc.adjustStock(ctx, id, quantity, 1)
}

func (uc *productUseCase) adjustStock(ctx context.Context, id, quantity, sign int) (*model.Product, error) {
	if quantity <= 0 {
		return nil, product.ErrInvalidQuantity
	}

	if err := uc.repo.AdjustStock(ctx, id, sign*quantity); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored state after the adjustment.
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}
