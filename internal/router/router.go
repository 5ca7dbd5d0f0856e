package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tooldocker/internal/auth"
	"tooldocker/internal/config"
	"tooldocker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
	adminGuard echo.MiddlewareFunc,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded product images are public objects.
	e.Static("/storage", cfg.StorageDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/catalog/products", catalogHandler.ListProducts)
	api.GET("/catalog/products/:slug", catalogHandler.GetProduct)
	api.GET("/catalog/categories", catalogHandler.ListCategories)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me/approval", dashboardHandler.MyApproval)

	// Seller dashboard; every operation re-checks the approval gate inside
	// the service so revocation is effective immediately.
	secured.GET("/dashboard/products", dashboardHandler.ListProducts)
	secured.POST("/dashboard/products", dashboardHandler.CreateProduct)
	secured.PUT("/dashboard/products/:id", dashboardHandler.UpdateProduct)
	secured.DELETE("/dashboard/products/:id", dashboardHandler.DeleteProduct)

	// Admin console; role is re-verified against the database per request.
	admin := secured.Group("/admin", adminGuard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/products", adminHandler.ListProducts)
	admin.PUT("/users/:id/approval", adminHandler.SetApproval)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
