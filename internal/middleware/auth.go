package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nvasilev/product-catalog-service/internal/auth/token"
	"github.com/nvasilev/product-catalog-service/internal/model"
)

const claimsLocalKey = "claims"

type AuthMiddleware struct {
	issuer *token.Issuer
	logger *zap.Logger
}

func NewAuthMiddleware(issuer *token.Issuer, log *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		issuer: issuer,
		logger: log,
	}
}

// Authenticate validates the bearer token and stores the claims for
// downstream handlers. Missing or invalid tokens stop the request with 401.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token format is invalid"})
		}

		claims, err := m.issuer.Parse(tokenString)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token is invalid"})
		}

		c.Locals(claimsLocalKey, claims)
		return c.Next()
	}
}

// RequireRoles lets the request through when the token carries any of the
// given roles. Authenticated requests without a matching role get 403.
func (m *AuthMiddleware) RequireRoles(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		for _, want := range roles {
			for _, have := range claims.Roles {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
	}
}

// ClaimsFromCtx returns the claims stored by Authenticate, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(claimsLocalKey).(*token.Claims)
	return claims
}
