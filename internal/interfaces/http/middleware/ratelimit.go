package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/infrastructure/ratelimit"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

// RateLimitMiddleware enforces per-IP request allowances on sensitive routes.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit(config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := m.limiter.Allow(c.ClientIP(), config)
		if err != nil {
			// A limiter outage must not take the API down with it.
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
