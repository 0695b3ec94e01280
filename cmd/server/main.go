package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"budgetbuddy/internal/auth"
	"budgetbuddy/internal/cache"
	"budgetbuddy/internal/config"
	"budgetbuddy/internal/db"
	"budgetbuddy/internal/handler"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
	"budgetbuddy/internal/router"
	"budgetbuddy/internal/service"
)

// @title BudgetBuddy API
// @version 1.0
// @description Personal finance tracker API with transactions, categories, reports, and currency conversion.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Transaction{},
	); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.AdminRegKey)
	userService := service.NewUserService(userRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo)
	currencyService := service.NewCurrencyService()
	reportService := service.NewReportService(transactionRepo, service.NewSystemClock())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		categoryHandler,
		transactionHandler,
		currencyHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server start: %v", err)
	}
}
