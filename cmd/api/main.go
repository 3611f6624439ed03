package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nvasilev/product-catalog-service/config"
	authH "github.com/nvasilev/product-catalog-service/internal/auth/handler"
	authRepoPkg "github.com/nvasilev/product-catalog-service/internal/auth/repository"
	"github.com/nvasilev/product-catalog-service/internal/auth/token"
	authUCPkg "github.com/nvasilev/product-catalog-service/internal/auth/usecase"
	"github.com/nvasilev/product-catalog-service/internal/middleware"
	prodH "github.com/nvasilev/product-catalog-service/internal/product/handler"
	prodRepoPkg "github.com/nvasilev/product-catalog-service/internal/product/repository"
	prodUCPkg "github.com/nvasilev/product-catalog-service/internal/product/usecase"
	"github.com/nvasilev/product-catalog-service/internal/server"
	"github.com/nvasilev/product-catalog-service/pkg/database/postgres"
	"github.com/nvasilev/product-catalog-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// Prices serialize as JSON numbers, matching the transport contract.
	decimal.MarshalJSONWithoutQuotes = true

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Apply Schema and Role Seed
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelMigrate()
	if err := postgres.Migrate(migrateCtx, db); err != nil {
		appLogger.Fatal("Could not apply database schema", zap.Error(err))
	}

	// 5. Initialize Repositories
	authRepo := authRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)

	// 6. Initialize Token Issuer
	issuer := token.NewIssuer(cfg.JWT.SecretKey, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)

	// 7. Initialize UseCases
	authUC := authUCPkg.NewAuthUseCase(authRepo, issuer, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)

	// 8. Initialize Handlers and Middleware
	authHandler := authH.NewAuthHandler(authUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	authMW := middleware.NewAuthMiddleware(issuer, appLogger)

	// 9. Start HTTP Server
	app := server.NewApp(authHandler, prodHandler, authMW)

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := app.Listen(cfg.Server.HTTPPort); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
