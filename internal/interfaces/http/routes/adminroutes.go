package routes

import (
	"github.com/gin-gonic/gin"

	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for moderation routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the moderation routes. Every route requires
// authentication plus the matching RBAC permission.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin", cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/tools/pending", cfg.Permission.Require("tool", "read_pending"), cfg.AdminHandler.ListPendingTools)
		admin.POST("/tools/:id/approve", cfg.Permission.Require("tool", "approve"), cfg.AdminHandler.ApproveTool)
		admin.POST("/tools/:id/reject", cfg.Permission.Require("tool", "reject"), cfg.AdminHandler.RejectTool)
		admin.POST("/tools/:id/feature", cfg.Permission.Require("tool", "feature"), cfg.AdminHandler.FeatureTool)

		admin.GET("/reviews/pending", cfg.Permission.Require("review", "read_pending"), cfg.AdminHandler.ListPendingReviews)
		admin.POST("/reviews/:id/approve", cfg.Permission.Require("review", "approve"), cfg.AdminHandler.ApproveReview)

		admin.POST("/categories", cfg.Permission.Require("category", "create"), cfg.AdminHandler.CreateCategory)
	}
}
