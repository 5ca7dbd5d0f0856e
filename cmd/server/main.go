package main

import (
	"log"
	"net/http"
	"os"

	_ "tooldocker/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tooldocker/internal/auth"
	"tooldocker/internal/cache"
	"tooldocker/internal/config"
	"tooldocker/internal/db"
	"tooldocker/internal/handler"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
	"tooldocker/internal/router"
	"tooldocker/internal/service"
	"tooldocker/internal/storage"
)

// @title Tooldocker Storefront API
// @version 1.0
// @description Storefront backend with a public catalog, approval-gated seller dashboard, and admin console.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Product{},
			&model.UserApproval{},
			&model.Profile{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.UserApproval{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store, err := storage.NewDiskStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	approvalRepo := repository.NewApprovalRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(profileRepo, jwtService, tokenStore)
	approvalService := service.NewApprovalService(approvalRepo, cacheClient)
	catalogService := service.NewCatalogService(productRepo, profileRepo, cacheClient)
	dashboardService := service.NewDashboardService(productRepo, profileRepo, approvalService, store, cacheClient)
	adminService := service.NewAdminService(productRepo, profileRepo, approvalRepo, approvalService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, approvalService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		catalogHandler,
		dashboardHandler,
		adminHandler,
		router.RequireAdmin(profileRepo),
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.PublicBaseURL)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
