package dto

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func valid() AddProductInput {
	return AddProductInput{
		Name:           "Widget",
		Description:    "A useful widget",
		Price:          decimal.NewFromFloat(9.99),
		StockAvailable: 10,
		Category:       "Tools",
	}
}

func TestAddProductInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AddProductInput)
		wantErr string
	}{
		{"valid", func(in *AddProductInput) {}, ""},
		{"missing name", func(in *AddProductInput) { in.Name = "" }, "name is required"},
		{"name too long", func(in *AddProductInput) { in.Name = strings.Repeat("a", 51) }, "maximum of 50"},
		{"missing description", func(in *AddProductInput) { in.Description = "" }, "description is required"},
		{"description too long", func(in *AddProductInput) { in.Description = strings.Repeat("a", 101) }, "maximum of 100"},
		{"zero price", func(in *AddProductInput) { in.Price = decimal.Zero }, "price must be greater than zero"},
		{"negative price", func(in *AddProductInput) { in.Price = decimal.NewFromInt(-1) }, "price must be greater than zero"},
		{"negative stock", func(in *AddProductInput) { in.StockAvailable = -1 }, "stockAvailable must be zero or greater"},
		{"missing category", func(in *AddProductInput) { in.Category = "" }, "category is required"},
		{"category too long", func(in *AddProductInput) { in.Category = strings.Repeat("a", 51) }, "maximum of 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestUpdateProductInput_Validate(t *testing.T) {
	in := UpdateProductInput{
		Name:           "Widget",
		Description:    "d",
		Price:          decimal.NewFromFloat(1.50),
		StockAvailable: 0,
		Category:       "Tools",
	}
	require.NoError(t, in.Validate())

	in.Price = decimal.Zero
	require.Error(t, in.Validate())
}
