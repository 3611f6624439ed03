package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	authH "github.com/nvasilev/product-catalog-service/internal/auth/handler"
	"github.com/nvasilev/product-catalog-service/internal/middleware"
	"github.com/nvasilev/product-catalog-service/internal/model"
	productH "github.com/nvasilev/product-catalog-service/internal/product/handler"
)

// NewApp assembles the fiber application: global middleware, health check
// and the versioned API routes.
func NewApp(
	authHandler *authH.AuthHandler,
	productHandler *productH.ProductHandler,
	authMW *middleware.AuthMiddleware,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Product Catalog Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authGroup := api.Group("/Auth")
	authGroup.Post("/Register", authHandler.Register)
	authGroup.Post("/Login", authHandler.Login)

	// The original authorization policy accepts either role on mutating
	// endpoints; that behavior is preserved.
	readers := authMW.RequireRoles(model.RoleReader)
	writers := authMW.RequireRoles(model.RoleWriter, model.RoleReader)

	products := api.Group("/Product", authMW.Authenticate())
	products.Get("/", readers, productHandler.GetAll)
	products.Post("/", writers, productHandler.Create)
	// Stock routes must be registered before the catch-all :id routes.
	products.Put("/decrement-stock/:id/:quantity", writers, productHandler.DecrementStock)
	products.Put("/add-to-stock/:id/:quantity", writers, productHandler.AddToStock)
	products.Get("/:id", readers, productHandler.GetByID)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", writers, productHandler.Delete)

	return app
}
