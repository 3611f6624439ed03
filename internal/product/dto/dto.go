package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvasilev/product-catalog-service/internal/model"
)

// ProductDTO is the transport shape of a product, distinct from the
// persisted entity.
type ProductDTO struct {
	ProductID      int             `json:"productId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stockAvailable"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromModel(p *model.Product) ProductDTO {
	return ProductDTO{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		StockAvailable: p.StockAvailable,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromModels(products []model.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i := range products {
		dtos[i] = FromModel(&products[i])
	}
	return dtos
}
