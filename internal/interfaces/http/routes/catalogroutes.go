package routes

import (
	"github.com/gin-gonic/gin"

	"toolvault/internal/infrastructure/ratelimit"
	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the public catalog routes.
type CatalogRouteConfig struct {
	ToolHandler     *handlers.ToolHandler
	CategoryHandler *handlers.CategoryHandler
	ReviewHandler   *handlers.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimitMiddleware
}

// SetupCatalogRoutes configures tool, category, and review routes. The
// static segments (featured, compare) are registered alongside the slug
// parameter; gin resolves them before the wildcard.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	submissionLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 5,
		RequestsPerDay:    50,
	}

	tools := api.Group("/tools")
	{
		tools.GET("", cfg.ToolHandler.ListTools)
		tools.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.RateLimiter.Limit(submissionLimit), cfg.ToolHandler.CreateTool)
		tools.GET("/featured", cfg.ToolHandler.GetFeaturedTools)
		tools.POST("/compare", cfg.AuthMiddleware.OptionalAuth(), cfg.ToolHandler.CompareTools)
		tools.GET("/:slug", cfg.ToolHandler.GetTool)

		tools.GET("/:slug/reviews", cfg.ReviewHandler.ListToolReviews)
		tools.POST("/:slug/reviews", cfg.AuthMiddleware.RequireAuth(), cfg.RateLimiter.Limit(submissionLimit), cfg.ReviewHandler.CreateReview)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.ListCategories)
		categories.GET("/:slug", cfg.CategoryHandler.GetCategory)
	}

	api.GET("/user/tools", cfg.AuthMiddleware.RequireAuth(), cfg.ToolHandler.ListMyTools)
}
