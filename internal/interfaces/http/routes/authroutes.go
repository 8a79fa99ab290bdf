package routes

import (
	"github.com/gin-gonic/gin"

	"toolvault/internal/infrastructure/ratelimit"
	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures authentication routes. Credential endpoints are
// rate limited per client IP.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	credentialLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(credentialLimit), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(credentialLimit), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.RateLimiter.Limit(credentialLimit), cfg.AuthHandler.RefreshToken)

		auth.GET("/oauth/google", cfg.AuthHandler.InitiateOAuth)
		auth.GET("/oauth/google/callback", cfg.AuthHandler.HandleOAuthCallback)

		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
	}
}
