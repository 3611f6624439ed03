package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nvasilev/product-catalog-service/internal/model"
	"github.com/nvasilev/product-catalog-service/internal/product"
	"github.com/nvasilev/product-catalog-service/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return h.internalError(c, "failed to list products", err)
	}
	return c.JSON(dto.FromModels(products))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	p, err := h.uc.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return h.internalError(c, "failed to get product", err)
	}
	return c.JSON(dto.FromModel(p))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input dto.AddProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p, err := h.uc.CreateProduct(c.Context(), &input)
	if err != nil {
		return h.internalError(c, "failed to create product", err)
	}

	c.Location(fmt.Sprintf("/api/Product/%d", p.ProductID))
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(p))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var input dto.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p, err := h.uc.UpdateProduct(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return h.internalError(c, "failed to update product", err)
	}
	return c.JSON(dto.FromModel(p))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	p, err := h.uc.DeleteProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return h.internalError(c, "failed to delete product", err)
	}
	return c.JSON(dto.FromModel(p))
}

func (h *ProductHandler) DecrementStock(c *fiber.Ctx) error {
	return h.adjustStock(c, h.uc.DecrementStock, "Stock decremented successfully.")
}

func (h *ProductHandler) AddToStock(c *fiber.Ctx) error {
	return h.adjustStock(c, h.uc.AddToStock, "Stock added successfully.")
}

func (h *ProductHandler) adjustStock(
	c *fiber.Ctx,
	adjust func(ctx context.Context, id, quantity int) (*model.Product, error),
	message string,
) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	quantity, err := c.ParamsInt("quantity")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid quantity"})
	}

	if _, err := adjust(c.Context(), id, quantity); err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return c.SendStatus(fiber.StatusNotFound)
		case errors.Is(err, product.ErrInvalidQuantity), errors.Is(err, product.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return h.internalError(c, "failed to adjust stock", err)
		}
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *ProductHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err))
	// The underlying cause stays in the logs only.
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
