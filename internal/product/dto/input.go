package dto

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	maxNameLen        = 50
	maxDescriptionLen = 100
	maxCategoryLen    = 50
)

type AddProductInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stockAvailable"`
	Category       string          `json:"category"`
}

func (in *AddProductInput) Validate() error {
	return validateFields(in.Name, in.Description, in.Price, in.StockAvailable, in.Category)
}

type UpdateProductInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stockAvailable"`
	Category       string          `json:"category"`
}

func (in *UpdateProductInput) Validate() error {
	return validateFields(in.Name, in.Description, in.Price, in.StockAvailable, in.Category)
}

func validateFields(name, description string, price decimal.Decimal, stock int, category string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("name has to be a maximum of 50 characters")
	}
	if description == "" {
		return errors.New("description is required")
	}
	if len(description) > maxDescriptionLen {
		return errors.New("description has to be a maximum of 100 characters")
	}
	if !price.IsPositive() {
		return errors.New("price must be greater than zero")
	}
	if stock < 0 {
		return errors.New("stockAvailable must be zero or greater")
	}
	if category == "" {
		return errors.New("category is required")
	}
	if len(category) > maxCategoryLen {
		return errors.New("category has to be a maximum of 50 characters")
	}
	return nil
}
