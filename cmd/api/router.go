package main

import (
	"context"
	"net/http"
	"time"

	"lumina-storefront/internal/shared/middleware"
	"lumina-storefront/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	// Only send the session cookie over TLS outside development
	sessionConfig := middleware.DefaultSessionConfig(c.Config.App.Environment == "production")

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupSessionRoutes(v1, c, sessionConfig)
		setupCatalogRoutes(v1, c)
		setupCartRoutes(v1, c, sessionConfig)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// SESSION ROUTES
// ========================================
func setupSessionRoutes(v1 *gin.RouterGroup, c *container.Container, sessionConfig middleware.SessionConfig) {
	public := v1.Group("")
	public.Use(
		middleware.Session(sessionConfig),
		middleware.OptionalAdminAuth(c.JWTManager),
	)
	{
		public.GET("/bootstrap", c.SessionHandler.Bootstrap)
		public.GET("/view", c.SessionHandler.View)
	}
}

// ========================================
// CATALOG ROUTES (public)
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Home)
		catalog.GET("/books/:id", c.CatalogHandler.Detail)
	}
}

// ========================================
// CART ROUTES (session cookie)
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container, sessionConfig middleware.SessionConfig) {
	cart := v1.Group("/cart")
	cart.Use(middleware.Session(sessionConfig))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.DELETE("/items/:book_id", c.CartHandler.RemoveItem)
		cart.POST("/checkout", c.CartHandler.Checkout)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/admin/login", c.AdminHandler.Login)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(c.JWTManager))
	{
		admin.GET("/stats", c.AdminHandler.Stats)
		admin.POST("/uploads/image", c.AdminHandler.UploadImage)

		books := admin.Group("/books")
		{
			books.GET("", c.BookHandler.ListBooks)
			books.POST("", c.BookHandler.CreateBook)
			books.PUT("/:id", c.BookHandler.UpdateBook)
			books.DELETE("/:id", c.BookHandler.DeleteBook)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("", c.SettingsHandler.GetSettings)
			settings.PUT("", c.SettingsHandler.UpdateSettings)
			settings.POST("/categories", c.SettingsHandler.AddCategory)
			settings.DELETE("/categories/:name", c.SettingsHandler.RemoveCategory)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", c.OrderHandler.ListOrders)
			orders.GET("/export", c.OrderHandler.ExportOrders)
			orders.PATCH("/:id/status", c.OrderHandler.UpdateOrderStatus)
		}

		reviews := admin.Group("/reviews")
		{
			reviews.GET("", c.ReviewHandler.ListReviews)
			reviews.POST("", c.ReviewHandler.CreateReview)
			reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
		}
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Database is required
		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		// Carts fall back to memory, so a Redis outage only degrades
		cacheStatus := "ok"
		if appCtx.Redis == nil {
			cacheStatus = "memory"
		} else if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
		}

		objectStatus := "inline"
		if appCtx.Storage != nil {
			objectStatus = "minio"
		}

		services := gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"images":   objectStatus,
		}
		if stats, err := appCtx.DB.Stats(); err == nil {
			services["pool"] = stats
		}
		health["services"] = services

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
