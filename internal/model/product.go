package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ID space for generated product identifiers.
const (
	ProductIDMin = 100000
	ProductIDMax = 999999
)

type Product struct {
	ProductID      int             `db:"product_id" json:"productId"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description"`
	Price          decimal.Decimal `db:"price" json:"price"`
	StockAvailable int             `db:"stock_available" json:"stockAvailable"`
	Category       string          `db:"category" json:"category"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}
