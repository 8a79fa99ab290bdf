package routes

import (
	"github.com/gin-gonic/gin"

	"toolvault/internal/infrastructure/ratelimit"
	"toolvault/internal/interfaces/http/handlers"
	"toolvault/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for billing routes.
type BillingRouteConfig struct {
	BillingHandler *handlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimitMiddleware
}

// SetupBillingRoutes configures the premium upgrade routes.
func SetupBillingRoutes(api *gin.RouterGroup, cfg *BillingRouteConfig) {
	billingLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
	}

	billing := api.Group("/billing", cfg.AuthMiddleware.RequireAuth(), cfg.RateLimiter.Limit(billingLimit))
	{
		billing.POST("/payment-intent", cfg.BillingHandler.CreatePaymentIntent)
		billing.POST("/subscription", cfg.BillingHandler.GetOrCreateSubscription)
		billing.POST("/confirm", cfg.BillingHandler.ConfirmUpgrade)
	}
}
