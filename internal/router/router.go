// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/config"
	"github.com/selltrack/selltrack-backend/internal/handlers"
	"github.com/selltrack/selltrack-backend/internal/middleware"
	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	platformService := services.NewPlatformService(db)
	salesService := services.NewSalesService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, analyticsService)
	platformHandler := handlers.NewPlatformHandler(platformService, analyticsService)
	salesHandler := handlers.NewSalesHandler(salesService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.GET("/:id/listings", productHandler.GetProductListings)
			products.GET("/:id/totals", productHandler.GetProductTotals)
		}

		// Listing-scoped sales routes
		listings := v1.Group("/listings")
		listings.Use(middleware.AuthRequired())
		{
			listings.GET("/:id/sales", salesHandler.GetSalesRecords)
			listings.POST("/:id/sales", salesHandler.CreateSalesRecord)
		}

		// Sales record routes
		sales := v1.Group("/sales")
		sales.Use(middleware.AuthRequired())
		{
			sales.GET("/:id", salesHandler.GetSalesRecord)
			sales.PUT("/:id", salesHandler.UpdateSalesRecord)
			sales.DELETE("/:id", salesHandler.DeleteSalesRecord)
		}

		// Platform routes. The catalog itself holds nothing tenant-specific,
		// so reads are public; per-caller stats and mutations stay behind
		// auth.
		platforms := v1.Group("/platforms")
		{
			platforms.GET("", middleware.OptionalAuth(), platformHandler.GetPlatforms)
			platforms.GET("/:id", middleware.OptionalAuth(), platformHandler.GetPlatform)
			platforms.GET("/stats", middleware.AuthRequired(), platformHandler.GetPlatformStats)

			// Platform catalog mutations are admin-only
			adminOnly := platforms.Group("")
			adminOnly.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminOnly.POST("", platformHandler.CreatePlatform)
				adminOnly.PUT("/:id", platformHandler.UpdatePlatform)
				adminOnly.DELETE("/:id", platformHandler.DeletePlatform)
			}
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/stats", analyticsHandler.GetDashboardStats)
		}

		// Tracker asset routes
		tracker := v1.Group("/tracker")
		tracker.Use(middleware.AuthRequired())
		{
			handlers.RegisterAssetRoutes[models.Domain](tracker, "domains", db)
			handlers.RegisterAssetRoutes[models.HostingAccount](tracker, "hosting", db)
			handlers.RegisterAssetRoutes[models.ServerInstance](tracker, "servers", db)
			handlers.RegisterAssetRoutes[models.SoftwareLicense](tracker, "licenses", db)
			handlers.RegisterAssetRoutes[models.Integration](tracker, "integrations", db)
			handlers.RegisterAssetRoutes[models.Project](tracker, "projects", db)
			handlers.RegisterAssetRoutes[models.CalendarEvent](tracker, "events", db)
		}
	}

	return r
}
