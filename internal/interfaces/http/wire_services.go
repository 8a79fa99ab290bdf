package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"toolvault/internal/infrastructure/auth"
	"toolvault/internal/infrastructure/cache"
	"toolvault/internal/infrastructure/config"
	"toolvault/internal/infrastructure/email"
	"toolvault/internal/infrastructure/payment"
	"toolvault/internal/infrastructure/permission"
	"toolvault/internal/infrastructure/ratelimit"
	"toolvault/internal/shared/db"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/services/markdown"
)

// services groups the infrastructure adapters behind the use case ports.
type services struct {
	hasher        *auth.BcryptPasswordHasher
	jwtService    *auth.JWTService
	oauthClient   *auth.GoogleOAuthClient
	stateStore    *cache.RedisOAuthStateStore
	featuredCache *cache.RedisFeaturedCache
	mailer        *email.SMTPEmailService
	gateway       *payment.StripeGateway
	markdown      markdown.Service
	txManager     *db.TransactionManager
	enforcer      *permission.Enforcer
	rateLimiter   ratelimit.RateLimiter
}

func buildServices(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*services, error) {
	enforcer, err := permission.NewEnforcer(gormDB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}
	if err := permission.InitCatalogPermissions(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed permissions: %w", err)
	}

	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	featuredTTL := time.Duration(cfg.Catalog.FeaturedCacheTTLSeconds) * time.Second

	return &services{
		hasher:        auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwtService:    auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays),
		oauthClient:   auth.NewGoogleOAuthClient(cfg.OAuth.Google),
		stateStore:    cache.NewRedisOAuthStateStore(redisClient, "oauth:state", 10*time.Minute),
		featuredCache: cache.NewRedisFeaturedCache(redisClient, featuredTTL),
		mailer:        mailer,
		gateway:       payment.NewStripeGateway(cfg.Billing.StripeSecretKey, log),
		markdown:      markdown.NewService(),
		txManager:     db.NewTransactionManager(gormDB),
		enforcer:      enforcer,
		rateLimiter:   ratelimit.NewRedisRateLimiter(redisClient),
	}, nil
}
