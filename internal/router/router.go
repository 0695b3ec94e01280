package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"budgetbuddy/internal/auth"
	"budgetbuddy/internal/config"
	"budgetbuddy/internal/handler"
	"budgetbuddy/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	transactionHandler *handler.TransactionHandler,
	currencyHandler *handler.CurrencyHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication). Tokens are parsed by our
	// own JWT service so handlers get typed claims from the context.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	secured.POST("/auth/refresh", authHandler.Refresh)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)

	// User routes
	adminOnly := handler.RequireRole(model.RoleAdmin)
	secured.GET("/users", userHandler.ListUsers, adminOnly)
	secured.PUT("/users/update", userHandler.UpdateProfile)
	secured.DELETE("/users/delete", userHandler.DeleteUser)
	secured.DELETE("/users/delete/:id", userHandler.DeleteUser)
	secured.POST("/users/:id/mute", userHandler.MuteUser, adminOnly)
	secured.POST("/users/:id/ban", userHandler.BanUser, adminOnly)
	secured.POST("/users/:id/activate", userHandler.ActivateUser, adminOnly)

	// Category routes
	secured.GET("/categories", categoryHandler.ListCategories)
	secured.POST("/categories", categoryHandler.CreateCategory)
	secured.GET("/categories/:id", categoryHandler.GetCategory)
	secured.PUT("/categories/:id", categoryHandler.UpdateCategory)
	secured.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	secured.GET("/transactions", transactionHandler.ListTransactions)
	secured.POST("/transactions", transactionHandler.CreateTransaction)
	secured.GET("/transactions/:id", transactionHandler.GetTransaction)
	secured.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	secured.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	// Report routes; month, year, and limit segments are optional
	secured.GET("/reports/monthly-summary", reportHandler.MonthlySummary)
	secured.GET("/reports/monthly-summary/:month", reportHandler.MonthlySummary)
	secured.GET("/reports/monthly-summary/:month/:year", reportHandler.MonthlySummary)
	secured.GET("/reports/category-breakdown", reportHandler.CategoryBreakdown)
	secured.GET("/reports/category-breakdown/:month", reportHandler.CategoryBreakdown)
	secured.GET("/reports/category-breakdown/:month/:year", reportHandler.CategoryBreakdown)
	secured.GET("/reports/recent", reportHandler.RecentTransactions)
	secured.GET("/reports/recent/:limit", reportHandler.RecentTransactions)

	// Currency routes
	secured.POST("/currency/convert", currencyHandler.Convert)
	secured.GET("/currency/list", currencyHandler.ListCurrencies)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
