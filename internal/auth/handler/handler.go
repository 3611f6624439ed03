package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nvasilev/product-catalog-service/internal/auth"
	"github.com/nvasilev/product-catalog-service/internal/auth/dto"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger *zap.Logger
}

func NewAuthHandler(uc auth.UseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User was not added"})
	}
	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User was not added"})
	}

	if err := h.uc.Register(c.Context(), &input); err != nil {
		// One generic failure regardless of cause.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User was not added"})
	}
	return c.JSON(fiber.Map{"message": "User was Registered"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "UserName or Password incorrect"})
	}
	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "UserName or Password incorrect"})
	}

	tokenString, err := h.uc.Login(c.Context(), &input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "UserName or Password incorrect"})
	}
	return c.JSON(fiber.Map{"jwtToken": tokenString})
}
